package pipeline

import "time"

// RunStats tracks aggregate counters and timing across one batch run.
type RunStats struct {
	Total     int
	Current   int
	Processed int
	Failed    int
	Elapsed   time.Duration
}

// Throughput returns completed items per second, or 0 before any time has
// elapsed.
func (s *RunStats) Throughput() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Processed) / s.Elapsed.Seconds()
}

// Remaining returns the count of items not yet attempted.
func (s *RunStats) Remaining() int {
	return s.Total - s.Processed - s.Failed
}
