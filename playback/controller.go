package playback

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	uuid "github.com/satori/go.uuid"

	"github.com/katalvlaran/stepviz/logger"
	"github.com/katalvlaran/stepviz/metrics"
	"github.com/katalvlaran/stepviz/step"
)

// Controller plays one sequence at a time. It is safe for concurrent use.
type Controller struct {
	clock   clock.Clock
	log     *slog.Logger
	metrics *metrics.Recorder

	mu    sync.Mutex
	state State
	cur   *run
}

// run is the bookkeeping of one Start call.
type run struct {
	id       string
	seq      *step.Sequence
	delay    DelayFunc
	listener Listener
	next     int
	started  time.Time

	cancel chan struct{} // closed when the run is cancelled or reset
	resume chan struct{} // one pending Resume signal
	done   chan struct{} // closed when the run ends for any reason
}

// New returns an Idle controller.
func New(opts ...Option) *Controller {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Controller{
		clock:   o.Clock,
		log:     logger.OrDiscard(o.Logger),
		metrics: o.Metrics,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Position reports how many steps of the current (or most recent) run
// have been delivered and how many it has in total. Both are zero when
// nothing has been started since the last Reset.
func (c *Controller) Position() (delivered, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cur == nil {
		return 0, 0
	}

	return c.cur.next, c.cur.seq.Len()
}

// Done returns a channel closed when the current (or most recent) run
// ends, or nil when nothing has been started since the last Reset.
func (c *Controller) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cur == nil {
		return nil
	}

	return c.cur.done
}

// Start begins playing seq to l. A nil delay uses StepDelay. It returns
// the id of the new run. An empty sequence completes immediately.
func (c *Controller) Start(seq *step.Sequence, delay DelayFunc, l Listener) (string, error) {
	if seq == nil {
		return "", ErrNilSequence
	}
	if delay == nil {
		delay = StepDelay
	}
	if l == nil {
		l = func(int, step.Step) {}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Active() {
		return "", fmt.Errorf("%w: %s", ErrAlreadyActive, c.cur.id)
	}

	r := &run{
		id:       uuid.NewV4().String(),
		seq:      seq,
		delay:    delay,
		listener: l,
		started:  c.clock.Now(),
		cancel:   make(chan struct{}),
		resume:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	c.cur = r
	c.state = Running
	c.metrics.RunStarted()
	c.log.Debug("run started", logger.RunID(r.id), logger.Op(seq.Op), slog.Int("steps", seq.Len()))

	if seq.Len() == 0 {
		c.finishLocked(r, Completed)
	}

	return r.id, nil
}

// Advance delivers the next step of the running run and reports whether
// more remain. Delivering the last step completes the run.
func (c *Controller) Advance() (step.Step, bool, error) {
	return c.advance(nil)
}

// advance delivers the next step of want, or of whatever run is current
// when want is nil.
func (c *Controller) advance(want *run) (step.Step, bool, error) {
	c.mu.Lock()
	r := c.cur
	if r == nil || c.state != Running || (want != nil && r != want) {
		c.mu.Unlock()
		return step.Step{}, false, ErrNotActive
	}
	i := r.next
	s := r.seq.At(i)
	r.next++
	c.mu.Unlock()

	r.listener(i, s)
	c.metrics.StepEmitted(string(r.seq.Kind))
	c.log.Debug("step emitted", logger.RunID(r.id), logger.StepIndex(i), slog.String("caption", s.Caption))

	c.mu.Lock()
	defer c.mu.Unlock()
	more := r.next < r.seq.Len()
	if !more && c.cur == r && c.state.Active() {
		c.finishLocked(r, Completed)
	}

	return s, more, nil
}

// Run drives the active run to its end, waiting each step's delay on the
// controller clock. It returns nil when the run completes or is cancelled,
// and the context error when ctx ends first (the run is then cancelled).
func (c *Controller) Run(ctx context.Context) error {
	c.mu.Lock()
	r := c.cur
	active := c.state.Active()
	c.mu.Unlock()
	if r == nil || !active {
		return ErrNotActive
	}

	for {
		if err := c.awaitRunning(ctx, r); err != nil {
			return err
		}
		if c.ended(r) {
			return nil
		}

		s, more, err := c.advance(r)
		if err != nil {
			// paused after the check; go back and wait for Resume
			continue
		}
		if !more {
			return nil
		}

		if err := c.wait(ctx, r, r.delay(s)); err != nil {
			return err
		}
	}
}

// wait sleeps d on the controller clock unless the run is cancelled or
// ctx ends first.
func (c *Controller) wait(ctx context.Context, r *run, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := c.clock.Timer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-r.cancel:
		return nil
	case <-ctx.Done():
		c.abort(r)
		return ctx.Err()
	}
}

// awaitRunning blocks while r is paused.
func (c *Controller) awaitRunning(ctx context.Context, r *run) error {
	for {
		c.mu.Lock()
		paused := c.cur == r && c.state == Paused
		c.mu.Unlock()
		if !paused {
			return nil
		}

		select {
		case <-r.resume:
		case <-r.cancel:
			return nil
		case <-ctx.Done():
			c.abort(r)
			return ctx.Err()
		}
	}
}

func (c *Controller) ended(r *run) bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// abort cancels r if it is still the active run.
func (c *Controller) abort(r *run) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cur == r && c.state.Active() {
		c.finishLocked(r, Cancelled)
	}
}

// Pause holds the running run at the next step boundary.
func (c *Controller) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Running {
		return ErrNotActive
	}
	c.state = Paused
	c.log.Debug("run paused", logger.RunID(c.cur.id))

	return nil
}

// Resume continues a paused run.
func (c *Controller) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Paused {
		return ErrNotPaused
	}
	c.state = Running
	select {
	case c.cur.resume <- struct{}{}:
	default:
	}
	c.log.Debug("run resumed", logger.RunID(c.cur.id))

	return nil
}

// Cancel ends the active run, discarding its remaining steps.
func (c *Controller) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.Active() {
		return ErrNotActive
	}
	c.finishLocked(c.cur, Cancelled)

	return nil
}

// Reset cancels any active run and returns the controller to Idle.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Active() {
		c.finishLocked(c.cur, Cancelled)
	}
	c.state = Idle
	c.cur = nil
}

// finishLocked ends r with final state end. c.mu must be held.
func (c *Controller) finishLocked(r *run, end State) {
	c.state = end
	if end == Cancelled {
		close(r.cancel)
	}
	close(r.done)

	result := metrics.ResultCompleted
	if end == Cancelled {
		result = metrics.ResultCancelled
	}
	elapsed := c.clock.Since(r.started)
	c.metrics.RunEnded(string(r.seq.Kind), r.seq.Op, result, elapsed)
	c.log.Info("run "+result,
		logger.RunID(r.id), logger.Op(r.seq.Op),
		slog.Int("delivered", r.next), slog.Int("steps", r.seq.Len()),
		slog.Duration("elapsed", elapsed))
}
