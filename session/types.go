package session

import (
	"errors"
	"log/slog"

	"github.com/benbjohnson/clock"

	"github.com/katalvlaran/stepviz/metrics"
	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/runner"
	"github.com/katalvlaran/stepviz/structure"
)

var (
	// ErrUnknownKind is returned by New for a kind outside the catalog.
	ErrUnknownKind = errors.New("session: unknown structure kind")

	// ErrOriginMismatch is returned by New when WithOrigin supplies a
	// structure of another kind.
	ErrOriginMismatch = errors.New("session: origin kind mismatch")
)

// Option configures a Session.
type Option func(*Options)

// Options holds the collaborators and knobs of a Session.
type Options struct {
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	Clock   clock.Clock
	Delay   playback.DelayFunc
	Timing  runner.Timing
	Origin  structure.Structure
}

// DefaultOptions uses the reference timing, played back unscaled.
func DefaultOptions() Options {
	return Options{
		Delay:  playback.StepDelay,
		Timing: runner.DefaultTiming(),
	}
}

// WithLogger sets the logger; records carry the session kind.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records runs, steps and rejections on m.
func WithMetrics(m *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithClock sets the playback clock.
func WithClock(c clock.Clock) Option {
	return func(o *Options) { o.Clock = c }
}

// WithDelay overrides how long playback waits after each step, for
// example to scale the reference delays.
func WithDelay(fn playback.DelayFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Delay = fn
		}
	}
}

// WithTiming replaces the step delays the runner attaches.
func WithTiming(t runner.Timing) Option {
	return func(o *Options) { o.Timing = t }
}

// WithOrigin starts the session from s instead of the seed; Reset
// returns to s as well. s is cloned.
func WithOrigin(s structure.Structure) Option {
	return func(o *Options) { o.Origin = s }
}
