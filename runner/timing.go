package runner

import "time"

// Timing holds the delay attached to each kind of step. Delays are the
// pause that follows a step before the next one is shown.
type Timing struct {
	Scan      time.Duration // array/matrix search, per element
	TextPhase time.Duration // every string step
	EditPhase time.Duration // array/matrix edit, before and after the change
	Link      time.Duration // linked-list insert, new node shown
	Unlink    time.Duration // linked-list delete, victim shown
	Container time.Duration // push, pop, enqueue, dequeue
	TreeProbe time.Duration // tree search/insert, per compared node
	Traverse  time.Duration // tree traversal, per node
	NodeVisit time.Duration // graph walk, per visited node
	EdgeHop   time.Duration // graph walk, per tree edge
	Bucket    time.Duration // hash bucket resolution
	Settle    time.Duration // hash operation result
}

// DefaultTiming reproduces the reference pacing.
func DefaultTiming() Timing {
	return Timing{
		Scan:      800 * time.Millisecond,
		TextPhase: 500 * time.Millisecond,
		EditPhase: 500 * time.Millisecond,
		Link:      1000 * time.Millisecond,
		Unlink:    800 * time.Millisecond,
		Container: 800 * time.Millisecond,
		TreeProbe: 800 * time.Millisecond,
		Traverse:  600 * time.Millisecond,
		NodeVisit: 800 * time.Millisecond,
		EdgeHop:   400 * time.Millisecond,
		Bucket:    800 * time.Millisecond,
		Settle:    500 * time.Millisecond,
	}
}

// Option configures Run.
type Option func(*Options)

// Options holds the knobs of a Run call.
type Options struct {
	Timing Timing
}

// DefaultOptions returns the reference timing.
func DefaultOptions() Options {
	return Options{Timing: DefaultTiming()}
}

// WithTiming replaces the step delays.
func WithTiming(t Timing) Option {
	return func(o *Options) {
		o.Timing = t
	}
}
