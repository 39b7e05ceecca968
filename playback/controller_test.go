package playback_test

import (
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
)

const stepDelay = 800 * time.Millisecond

// sequence builds an n-step highlight-only sequence with stepDelay each.
func sequence(n int) *step.Sequence {
	b := step.NewBuilder(structure.NewArray(make([]int, n)...))
	for i := 0; i < n; i++ {
		b.Show(step.On(step.Index(i)), stepDelay, "step %d", i)
	}

	return b.Build(structure.KindArray, "search", step.Outcome{})
}

// recorder collects delivered indices and the clock time of each delivery.
type recorder struct {
	mu    sync.Mutex
	clk   clock.Clock
	index []int
	at    []time.Time
}

func (r *recorder) listen(i int, _ step.Step) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = append(r.index, i)
	if r.clk != nil {
		r.at = append(r.at, r.clk.Now())
	}
}

func (r *recorder) delivered() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]int(nil), r.index...)
}

func TestStart_Rejections(t *testing.T) {
	c := playback.New()

	_, err := c.Start(nil, nil, nil)
	assert.ErrorIs(t, err, playback.ErrNilSequence)

	id, err := c.Start(sequence(2), nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = c.Start(sequence(2), nil, nil)
	assert.ErrorIs(t, err, playback.ErrAlreadyActive)

	require.NoError(t, c.Pause())
	_, err = c.Start(sequence(2), nil, nil)
	assert.ErrorIs(t, err, playback.ErrAlreadyActive, "paused still counts as active")
}

func TestAdvance_DeliversInOrderThenCompletes(t *testing.T) {
	c := playback.New()
	rec := &recorder{}
	_, err := c.Start(sequence(3), nil, rec.listen)
	require.NoError(t, err)
	assert.Equal(t, playback.Running, c.State())

	for i := 0; i < 3; i++ {
		s, more, err := c.Advance()
		require.NoError(t, err)
		assert.Equal(t, step.Index(i), s.Highlight.Target)
		assert.Equal(t, i < 2, more)
	}
	assert.Equal(t, []int{0, 1, 2}, rec.delivered())
	assert.Equal(t, playback.Completed, c.State())

	delivered, total := c.Position()
	assert.Equal(t, 3, delivered)
	assert.Equal(t, 3, total)

	select {
	case <-c.Done():
	default:
		t.Fatal("done channel not closed after completion")
	}

	_, _, err = c.Advance()
	assert.ErrorIs(t, err, playback.ErrNotActive)

	// a finished controller accepts a new run
	_, err = c.Start(sequence(1), nil, nil)
	assert.NoError(t, err)
}

func TestStart_EmptySequenceCompletes(t *testing.T) {
	c := playback.New()
	_, err := c.Start(sequence(0), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, playback.Completed, c.State())
}

func TestPauseResume(t *testing.T) {
	c := playback.New()
	assert.ErrorIs(t, c.Pause(), playback.ErrNotActive)
	assert.ErrorIs(t, c.Resume(), playback.ErrNotPaused)

	_, err := c.Start(sequence(2), nil, nil)
	require.NoError(t, err)
	_, _, err = c.Advance()
	require.NoError(t, err)

	require.NoError(t, c.Pause())
	assert.Equal(t, playback.Paused, c.State())
	_, _, err = c.Advance()
	assert.ErrorIs(t, err, playback.ErrNotActive)
	assert.ErrorIs(t, c.Pause(), playback.ErrNotActive)

	require.NoError(t, c.Resume())
	assert.ErrorIs(t, c.Resume(), playback.ErrNotPaused)
	_, more, err := c.Advance()
	require.NoError(t, err)
	assert.False(t, more)
	assert.Equal(t, playback.Completed, c.State())
}

func TestCancel_DiscardsRemaining(t *testing.T) {
	c := playback.New()
	rec := &recorder{}
	_, err := c.Start(sequence(4), nil, rec.listen)
	require.NoError(t, err)
	_, _, err = c.Advance()
	require.NoError(t, err)

	require.NoError(t, c.Cancel())
	assert.Equal(t, playback.Cancelled, c.State())
	_, _, err = c.Advance()
	assert.ErrorIs(t, err, playback.ErrNotActive)
	assert.Equal(t, []int{0}, rec.delivered(), "delivered steps are kept, the rest never arrive")
	assert.ErrorIs(t, c.Cancel(), playback.ErrNotActive)

	// cancel from paused
	_, err = c.Start(sequence(2), nil, nil)
	require.NoError(t, err)
	require.NoError(t, c.Pause())
	require.NoError(t, c.Cancel())
	assert.Equal(t, playback.Cancelled, c.State())
}

func TestReset(t *testing.T) {
	c := playback.New()
	c.Reset()
	assert.Equal(t, playback.Idle, c.State())

	_, err := c.Start(sequence(3), nil, nil)
	require.NoError(t, err)
	done := c.Done()
	c.Reset()

	assert.Equal(t, playback.Idle, c.State())
	assert.Nil(t, c.Done())
	_, total := c.Position()
	assert.Zero(t, total)
	select {
	case <-done:
	default:
		t.Fatal("reset did not end the run")
	}
}

func TestAdvance_ListenerMayCallBack(t *testing.T) {
	c := playback.New()
	_, err := c.Start(sequence(3), nil, func(i int, _ step.Step) {
		if i == 0 {
			require.NoError(t, c.Cancel())
		}
	})
	require.NoError(t, err)

	_, _, err = c.Advance()
	require.NoError(t, err)
	assert.Equal(t, playback.Cancelled, c.State())
}
