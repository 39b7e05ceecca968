package playback

import (
	"errors"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/katalvlaran/stepviz/metrics"
	"github.com/katalvlaran/stepviz/step"
)

var (
	// ErrAlreadyActive is returned by Start while a run is Running or Paused.
	ErrAlreadyActive = errors.New("playback: a run is already active")

	// ErrNotActive is returned when an operation needs a running run.
	ErrNotActive = errors.New("playback: no active run")

	// ErrNilSequence is returned by Start when given no sequence.
	ErrNilSequence = errors.New("playback: sequence is nil")

	// ErrNotPaused is returned by Resume when the run is not paused.
	ErrNotPaused = errors.New("playback: run is not paused")
)

// State is a Controller state.
type State uint8

const (
	Idle State = iota
	Running
	Paused
	Completed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Active reports whether a run is in progress.
func (s State) Active() bool { return s == Running || s == Paused }

// Listener receives each delivered step with its index in the sequence.
type Listener func(index int, s step.Step)

// DelayFunc decides how long to wait after a step is delivered.
type DelayFunc func(s step.Step) time.Duration

// StepDelay waits exactly the delay the step carries.
func StepDelay(s step.Step) time.Duration { return s.Delay }

// Option configures a Controller.
type Option func(*Options)

// Options holds the collaborators of a Controller.
type Options struct {
	Clock   clock.Clock
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// DefaultOptions returns the wall clock, a discarding logger and no metrics.
func DefaultOptions() Options {
	return Options{Clock: clock.New()}
}

// WithClock sets the clock used for step delays and run timing.
func WithClock(c clock.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMetrics records runs and steps on m.
func WithMetrics(m *metrics.Recorder) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
