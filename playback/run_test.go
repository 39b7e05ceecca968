package playback_test

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/step"
)

const (
	tick    = 100 * time.Millisecond
	waitFor = 5 * time.Second
	poll    = time.Millisecond
)

// runAsync starts Run in a goroutine and returns its result channel.
func runAsync(ctx context.Context, c *playback.Controller) <-chan error {
	errc := make(chan error, 1)
	go func() { errc <- c.Run(ctx) }()

	return errc
}

func TestRun_PacesStepsOnClock(t *testing.T) {
	mock := clock.NewMock()
	c := playback.New(playback.WithClock(mock))
	rec := &recorder{clk: mock}
	_, err := c.Start(sequence(3), nil, rec.listen)
	require.NoError(t, err)

	errc := runAsync(context.Background(), c)
	require.Eventually(t, func() bool {
		mock.Add(tick)
		return c.State() == playback.Completed
	}, waitFor, poll)
	require.NoError(t, <-errc)

	assert.Equal(t, []int{0, 1, 2}, rec.delivered())
	for i := 1; i < len(rec.at); i++ {
		assert.GreaterOrEqual(t, rec.at[i].Sub(rec.at[i-1]), stepDelay)
	}
}

func TestRun_ZeroDelayNeedsNoClock(t *testing.T) {
	mock := clock.NewMock()
	c := playback.New(playback.WithClock(mock))
	rec := &recorder{}
	_, err := c.Start(sequence(5), func(step.Step) time.Duration { return 0 }, rec.listen)
	require.NoError(t, err)

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, playback.Completed, c.State())
	assert.Len(t, rec.delivered(), 5)
}

func TestRun_PauseHoldsAtBoundary(t *testing.T) {
	mock := clock.NewMock()
	c := playback.New(playback.WithClock(mock))
	rec := &recorder{}
	_, err := c.Start(sequence(3), nil, func(i int, s step.Step) {
		rec.listen(i, s)
		if i == 0 {
			assert.NoError(t, c.Pause())
		}
	})
	require.NoError(t, err)

	errc := runAsync(context.Background(), c)
	assert.Never(t, func() bool {
		mock.Add(tick)
		return len(rec.delivered()) > 1
	}, 200*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, playback.Paused, c.State())

	require.NoError(t, c.Resume())
	require.Eventually(t, func() bool {
		mock.Add(tick)
		return c.State() == playback.Completed
	}, waitFor, poll)
	require.NoError(t, <-errc)
	assert.Equal(t, []int{0, 1, 2}, rec.delivered())
}

func TestRun_CancelInterruptsWait(t *testing.T) {
	mock := clock.NewMock()
	c := playback.New(playback.WithClock(mock))
	rec := &recorder{}
	_, err := c.Start(sequence(3), nil, rec.listen)
	require.NoError(t, err)

	errc := runAsync(context.Background(), c)
	require.Eventually(t, func() bool { return len(rec.delivered()) == 1 }, waitFor, poll)

	// no clock movement: the pending wait must end on Cancel alone
	require.NoError(t, c.Cancel())
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("Run did not return after Cancel")
	}
	assert.Equal(t, playback.Cancelled, c.State())
	assert.Equal(t, []int{0}, rec.delivered())
}

func TestRun_ContextCancels(t *testing.T) {
	mock := clock.NewMock()
	c := playback.New(playback.WithClock(mock))
	_, err := c.Start(sequence(3), nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errc := runAsync(ctx, c)
	require.Eventually(t, func() bool {
		delivered, _ := c.Position()
		return delivered == 1
	}, waitFor, poll)
	cancel()

	assert.ErrorIs(t, <-errc, context.Canceled)
	assert.Equal(t, playback.Cancelled, c.State())
}

func TestRun_NothingActive(t *testing.T) {
	c := playback.New()
	assert.ErrorIs(t, c.Run(context.Background()), playback.ErrNotActive)

	_, err := c.Start(sequence(1), nil, nil)
	require.NoError(t, err)
	require.NoError(t, c.Run(context.Background()))
	assert.ErrorIs(t, c.Run(context.Background()), playback.ErrNotActive)
}
