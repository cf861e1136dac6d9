package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total     int
	Current   int
	Resolved  int
	Sequences int // resolved as still sequences
	Padded    int // resolved with letterbox/pillarbox padding
	Failed    int
}

// OK reports whether every discovered file resolved.
func (s *RunStats) OK() bool {
	return s.Failed == 0
}
