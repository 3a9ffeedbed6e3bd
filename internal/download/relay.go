package download

import "fmt"

const (
	maxPercent = 100

	bytesPerMegabyte = 1024 * 1024
)

// relay turns raw callback ticks from the delegated library into the event
// stream a job exposes. It enforces the progress contract: percentages are
// floor(100*downloaded/total), clamped to [0,100], and never decrease within
// a job; ticks with an unknown total emit nothing.
//
// All methods are called from the job goroutine only.
type relay struct {
	events      chan Event
	lastPercent int
}

func newRelay() *relay {
	// Buffered so a slow UI drain cannot stall the library callback.
	return &relay{events: make(chan Event, 64)}
}

// Progress emits a percentage event for one callback tick. Nothing fires
// while the total size is unknown or zero.
func (r *relay) Progress(downloaded, total int) {
	if total <= 0 {
		return
	}

	percent := downloaded * maxPercent / total
	if percent > maxPercent {
		percent = maxPercent
	}
	if percent < r.lastPercent {
		// A new fragment can reset the byte counters; hold the line.
		percent = r.lastPercent
	}
	r.lastPercent = percent

	r.emit(Event{Kind: EventProgress, Percent: percent})
}

// Rate emits a formatted transfer rate for a non-zero instantaneous speed.
func (r *relay) Rate(bytesPerSecond float64) {
	if bytesPerSecond <= 0 {
		return
	}

	r.emit(Event{
		Kind: EventRate,
		Rate: fmt.Sprintf("%.2f MB/s", bytesPerSecond/bytesPerMegabyte),
	})
}

// Done emits the terminal event and closes the channel. Must be called
// exactly once, after the last progress/rate tick. The send blocks until the
// consumer has room; the terminal event is never dropped.
func (r *relay) Done(message string, err error) {
	r.events <- Event{Kind: EventDone, Message: message, Err: err}
	close(r.events)
}

// emit delivers intermediate updates without ever blocking the library
// callback; when the consumer lags, stale ticks are dropped.
func (r *relay) emit(e Event) {
	select {
	case r.events <- e:
	default:
	}
}
