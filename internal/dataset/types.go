package dataset

// PositionCase is one test position of the perft suite.
type PositionCase struct {
	// ID is unique among all cases; either numeric ("3", "03") or symbolic ("kiwipete").
	ID string `yaml:"id"`
	// FEN is the board position. Never parsed by the generator.
	FEN string `yaml:"fen"`
	// Depth is the perft search depth, as a decimal string.
	Depth string `yaml:"depth"`
	// Expected is the node count the backend must reproduce at Depth.
	Expected string `yaml:"expected"`
	// Line is the source line of the record, 0 when built in memory.
	Line int `yaml:"-"`
}

// BackendDescriptor describes one move-generation library under benchmark.
type BackendDescriptor struct {
	// Function is the Go function the generated entry delegates to.
	Function string `yaml:"perft_func"`
	// Display is the suffix of generated entry names.
	Display string `yaml:"perft_name"`
	// Included marks the backend as part of the default aggregate run. The
	// key is required so that a forgotten one cannot drop a backend silently.
	Included bool `yaml:"bench"`
	// Line is the source line of the record, 0 when built in memory.
	Line int `yaml:"-"`
}

// recordFields lists the keys a record may carry. Keys in required must be
// present even when their zero value would decode cleanly.
type recordFields struct {
	allowed  []string
	required []string
}

var (
	positionFields = recordFields{
		allowed: []string{"id", "fen", "depth", "expected"},
	}
	backendFields = recordFields{
		allowed:  []string{"perft_func", "perft_name", "bench"},
		required: []string{"bench"},
	}
)
