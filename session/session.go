package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/stepviz/logger"
	"github.com/katalvlaran/stepviz/metrics"
	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/runner"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
	"github.com/katalvlaran/stepviz/validate"
)

// Session is the engine of one structure instance.
type Session struct {
	kind    structure.Kind
	origin  structure.Structure
	ctrl    *playback.Controller
	log     *slog.Logger
	metrics *metrics.Recorder
	delay   playback.DelayFunc
	timing  runner.Timing

	mu    sync.Mutex
	live  structure.Structure
	token *runToken // identifies the run allowed to mutate live
}

type runToken struct{ id string }

// New returns a session of kind holding its origin state.
func New(kind structure.Kind, opts ...Option) (*Session, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	origin := o.Origin
	if origin == nil {
		origin = structure.Seed(kind)
	} else if origin.Kind() != kind {
		return nil, fmt.Errorf("%w: %s session given %s", ErrOriginMismatch, kind, origin.Kind())
	}
	origin = origin.Clone()

	log := logger.OrDiscard(o.Logger).With(logger.Kind(kind))
	popts := []playback.Option{playback.WithLogger(log), playback.WithMetrics(o.Metrics)}
	if o.Clock != nil {
		popts = append(popts, playback.WithClock(o.Clock))
	}

	return &Session{
		kind:    kind,
		origin:  origin,
		ctrl:    playback.New(popts...),
		log:     log,
		metrics: o.Metrics,
		delay:   o.Delay,
		timing:  o.Timing,
		live:    origin.Clone(),
	}, nil
}

// Kind returns the structure kind.
func (s *Session) Kind() structure.Kind { return s.kind }

// Snapshot returns a copy of the live structure.
func (s *Session) Snapshot() structure.Structure {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.live.Clone()
}

// State returns the playback state.
func (s *Session) State() playback.State { return s.ctrl.State() }

// Done returns a channel closed when the current run ends.
func (s *Session) Done() <-chan struct{} { return s.ctrl.Done() }

// Prepare validates in against the live structure and builds its step
// sequence without starting anything.
func (s *Session) Prepare(in validate.Input) (*step.Sequence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.prepareLocked(in)
}

func (s *Session) prepareLocked(in validate.Input) (*step.Sequence, error) {
	if in.Kind == "" {
		in.Kind = string(s.kind)
	}
	req, err := validate.Request(s.live, in)
	if err != nil {
		s.metrics.Rejected(string(s.kind), reason(err))
		s.log.Info("request rejected", logger.Op(in.Op), logger.Error(err))

		return nil, err
	}
	seq, err := runner.Run(s.live, req, runner.WithTiming(s.timing))
	if err != nil {
		s.log.Error("runner refused validated request", logger.Op(in.Op), logger.Error(err))

		return nil, err
	}

	return seq, nil
}

// Start validates in, builds its sequence and begins playback to l. The
// run is driven by Advance or Run. A request while another run is active
// is refused with playback.ErrAlreadyActive before any validation.
func (s *Session) Start(in validate.Input, l playback.Listener) (*step.Sequence, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st := s.ctrl.State(); st.Active() {
		return nil, "", fmt.Errorf("%w: session is %s", playback.ErrAlreadyActive, st)
	}
	seq, err := s.prepareLocked(in)
	if err != nil {
		return nil, "", err
	}

	tok := &runToken{}
	id, err := s.ctrl.Start(seq, s.delay, s.commit(tok, l))
	if err != nil {
		return nil, "", err
	}
	tok.id = id
	s.token = tok

	return seq, id, nil
}

// commit wraps l so each delivered mutation lands on the live structure
// before the listener sees the step. Steps of a run that has since been
// reset are passed on but not applied.
func (s *Session) commit(tok *runToken, l playback.Listener) playback.Listener {
	return func(i int, st step.Step) {
		if st.Mutation != nil {
			s.mu.Lock()
			if s.token == tok {
				st.Mutation.Apply(s.live)
			}
			s.mu.Unlock()
		}
		if l != nil {
			l(i, st)
		}
	}
}

// Execute starts in and plays it to the end on the session clock.
func (s *Session) Execute(ctx context.Context, in validate.Input, l playback.Listener) (*step.Sequence, error) {
	seq, _, err := s.Start(in, l)
	if err != nil {
		return nil, err
	}

	return seq, s.ctrl.Run(ctx)
}

// Advance delivers one step of the active run.
func (s *Session) Advance() (step.Step, bool, error) { return s.ctrl.Advance() }

// Run plays the active run to its end.
func (s *Session) Run(ctx context.Context) error { return s.ctrl.Run(ctx) }

// Pause holds the active run at the next step boundary.
func (s *Session) Pause() error { return s.ctrl.Pause() }

// Resume continues a paused run.
func (s *Session) Resume() error { return s.ctrl.Resume() }

// Cancel stops the active run. Mutations already delivered stay applied.
func (s *Session) Cancel() error { return s.ctrl.Cancel() }

// Reset discards any run and restores the origin state.
func (s *Session) Reset() {
	s.ctrl.Reset()

	s.mu.Lock()
	s.token = nil
	s.live = s.origin.Clone()
	s.mu.Unlock()

	s.log.Info("session reset")
}

// reasons maps validation failures to metric labels.
var reasons = []struct {
	err   error
	label string
}{
	{validate.ErrNotANumber, "not_a_number"},
	{validate.ErrIndexOutOfRange, "index_out_of_range"},
	{validate.ErrEmptyKey, "empty_key"},
	{validate.ErrEmptyValue, "empty_value"},
	{validate.ErrEmptyStructure, "empty_structure"},
	{validate.ErrUnknownNode, "unknown_node"},
	{validate.ErrUnknownOperation, "unknown_operation"},
	{validate.ErrKindMismatch, "kind_mismatch"},
}

func reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.label
		}
	}

	return "other"
}
