package plan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perft-bench/internal/dataset"
	"perft-bench/internal/diagnostic"
	"perft-bench/internal/ident"
)

func position(id string) dataset.PositionCase {
	return dataset.PositionCase{ID: id, FEN: "8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1", Depth: "6", Expected: "1440467"}
}

func backend(display string, included bool) dataset.BackendDescriptor {
	return dataset.BackendDescriptor{Function: display + "Perft", Display: display, Included: included}
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}

	return out
}

func TestExpand_BackendMajorOrder(t *testing.T) {
	p, err := Expand(
		[]dataset.PositionCase{position("01"), position("02"), position("kiwipete")}, 2,
		[]dataset.BackendDescriptor{backend("acme", true), backend("zeta", false)},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"perft_01_acme",
		"perft_02_acme",
		"perft_kiwipete_acme",
		"perft_01_zeta",
		"perft_02_zeta",
		"perft_kiwipete_zeta",
	}, names(p.Entries))
}

func TestExpand_CrossProductSizeAndUniqueness(t *testing.T) {
	for _, n := range []int{1, 9, 10, 27, 101} {
		for _, m := range []int{0, 1, 3} {
			t.Run(fmt.Sprintf("%dx%d", n, m), func(t *testing.T) {
				var cases []dataset.PositionCase
				for i := 1; i <= n; i++ {
					cases = append(cases, position(fmt.Sprint(i)))
				}

				var backends []dataset.BackendDescriptor
				for j := range m {
					backends = append(backends, backend(fmt.Sprintf("b%d", j), j%2 == 0))
				}

				normalized, width, err := ident.Normalize(cases)
				require.NoError(t, err)

				p, err := Expand(normalized, width, backends)
				require.NoError(t, err)
				assert.Equal(t, len(fmt.Sprint(n)), p.Width)
				require.Len(t, p.Entries, n*m)

				seen := map[string]struct{}{}
				for _, e := range p.Entries {
					seen[e.Name] = struct{}{}
				}

				assert.Len(t, seen, n*m)
				assert.Len(t, p.Aggregate, n*p.IncludedBackends())
			})
		}
	}
}

func TestExpand_CarriesLiterals(t *testing.T) {
	p, err := Expand(
		[]dataset.PositionCase{position("03")}, 2,
		[]dataset.BackendDescriptor{backend("acme", true)},
	)
	require.NoError(t, err)
	require.Len(t, p.Entries, 1)

	assert.Equal(t, 2, p.Width)

	e := p.Entries[0]
	assert.Equal(t, "perft_03_acme", e.Name)
	assert.Equal(t, "8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1", e.Position.FEN)
	assert.Equal(t, "6", e.Position.Depth)
	assert.Equal(t, "1440467", e.Position.Expected)
	assert.Equal(t, "acmePerft", e.Backend.Function)
}

func TestExpand_DuplicateAfterPadding(t *testing.T) {
	cases := []dataset.PositionCase{position("1"), position("01")}
	cases[0].Line = 2
	cases[1].Line = 6

	normalized, width, err := ident.Normalize(cases)
	require.NoError(t, err)

	_, err = Expand(normalized, width, []dataset.BackendDescriptor{backend("acme", true)})
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.DuplicateGeneratedName)
	assert.Contains(t, err.Error(), "perft_01_acme")
	assert.Contains(t, err.Error(), "(line 2)")
	assert.Contains(t, err.Error(), "(line 6)")
}

func TestExpand_DuplicateAcrossBackends(t *testing.T) {
	// "x" + "1_a" and "x_1" + "a" spell the same name.
	_, err := Expand(
		[]dataset.PositionCase{position("x"), position("x_1")}, 0,
		[]dataset.BackendDescriptor{backend("a", true), backend("1_a", true)},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.DuplicateGeneratedName)
	assert.Contains(t, err.Error(), "perft_x_1_a")
}

func TestExpand_DuplicateBackendDisplayName(t *testing.T) {
	_, err := Expand(
		[]dataset.PositionCase{position("01")}, 2,
		[]dataset.BackendDescriptor{backend("acme", true), backend("acme", false)},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.DuplicateGeneratedName)
}

func TestIncluded_ExcludedBackendKeepsEntries(t *testing.T) {
	p, err := Expand(
		[]dataset.PositionCase{position("01"), position("02")}, 2,
		[]dataset.BackendDescriptor{backend("acme", true), backend("slow", false), backend("zeta", true)},
	)
	require.NoError(t, err)

	assert.Contains(t, names(p.Entries), "perft_01_slow")
	assert.Contains(t, names(p.Entries), "perft_02_slow")

	assert.Equal(t, []string{
		"perft_01_acme",
		"perft_02_acme",
		"perft_01_zeta",
		"perft_02_zeta",
	}, names(p.Aggregate))

	for _, e := range p.Aggregate {
		assert.True(t, e.Backend.Included, e.Name)
	}
}

func TestIncluded_PreservesOrder(t *testing.T) {
	entries := []Entry{
		{Name: "c", Backend: backend("c", true)},
		{Name: "a", Backend: backend("a", false)},
		{Name: "b", Backend: backend("b", true)},
	}

	assert.Equal(t, []string{"c", "b"}, names(Included(entries)))
	assert.Empty(t, Included(nil))
}
