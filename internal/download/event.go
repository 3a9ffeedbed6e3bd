package download

// EventKind discriminates the events a job emits.
type EventKind int

const (
	// EventProgress carries a whole-number completion percentage.
	EventProgress EventKind = iota

	// EventRate carries a human-readable transfer rate such as "1.23 MB/s".
	EventRate

	// EventDone is terminal. Exactly one fires per job, after which the
	// event channel is closed.
	EventDone
)

// Event is one update from a running job. Progress and rate events may fire
// zero or more times, always before the single done event.
type Event struct {
	Kind    EventKind
	Percent int    // EventProgress: 0-100, non-decreasing within a job
	Rate    string // EventRate: formatted transfer rate
	Message string // EventDone: success message when Err is nil
	Err     error  // EventDone: failure, message verbatim from the library
}
