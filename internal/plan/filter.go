package plan

// Included returns the entries whose backend takes part in the default run,
// preserving their order.
func Included(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))

	for _, e := range entries {
		if e.Backend.Included {
			out = append(out, e)
		}
	}

	return out
}

// IncludedBackends returns the number of backends marked for the default run.
func (p *Plan) IncludedBackends() int {
	n := 0

	for _, b := range p.Backends {
		if b.Included {
			n++
		}
	}

	return n
}
