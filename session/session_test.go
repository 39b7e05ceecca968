package session_test

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/logger"
	"github.com/katalvlaran/stepviz/metrics"
	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/runner"
	"github.com/katalvlaran/stepviz/session"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
	"github.com/katalvlaran/stepviz/validate"
)

func newSession(t *testing.T, kind structure.Kind, opts ...session.Option) *session.Session {
	t.Helper()
	opts = append([]session.Option{session.WithTiming(runner.Timing{})}, opts...)
	s, err := session.New(kind, opts...)
	require.NoError(t, err)

	return s
}

func TestNew_Errors(t *testing.T) {
	_, err := session.New("heap")
	assert.ErrorIs(t, err, session.ErrUnknownKind)

	_, err = session.New(structure.KindStack, session.WithOrigin(structure.NewQueue(1)))
	assert.ErrorIs(t, err, session.ErrOriginMismatch)
}

func TestSeedStates(t *testing.T) {
	for _, k := range structure.Kinds() {
		s := newSession(t, k)
		assert.True(t, s.Snapshot().Equal(structure.Seed(k)), k)
		assert.Equal(t, k, s.Kind())
		assert.Equal(t, playback.Idle, s.State())
	}
}

func TestCommitOnEmission(t *testing.T) {
	s := newSession(t, structure.KindArray)
	seq, id, err := s.Start(validate.Input{Op: "insert", Index: "1", Value: "7"}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Equal(t, 3, seq.Len())

	// highlight only: nothing committed yet
	_, _, err = s.Advance()
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2, 8, 1, 9, 3}, s.Snapshot().(*structure.Array).Values())

	// the mutating step lands on the live structure
	_, _, err = s.Advance()
	require.NoError(t, err)
	assert.Equal(t, []int{5, 7, 2, 8, 1, 9, 3}, s.Snapshot().(*structure.Array).Values())

	// cancelling keeps the partial effect
	require.NoError(t, s.Cancel())
	assert.Equal(t, playback.Cancelled, s.State())
	assert.Equal(t, []int{5, 7, 2, 8, 1, 9, 3}, s.Snapshot().(*structure.Array).Values())

	s.Reset()
	assert.Equal(t, playback.Idle, s.State())
	assert.True(t, s.Snapshot().Equal(structure.Seed(structure.KindArray)))
}

func TestExecute_LiveMatchesFinal(t *testing.T) {
	s := newSession(t, structure.KindLinkedList)
	var got []step.Step
	seq, err := s.Execute(context.Background(), validate.Input{Op: "delete", Index: "1"}, func(_ int, st step.Step) {
		got = append(got, st)
	})
	require.NoError(t, err)

	assert.Equal(t, playback.Completed, s.State())
	assert.Len(t, got, seq.Len())
	assert.Equal(t, "10 -> 30 -> null", s.Snapshot().String())
	assert.True(t, s.Snapshot().Equal(seq.Final))
}

func TestExecute_StackRoundTrip(t *testing.T) {
	s := newSession(t, structure.KindStack)
	ctx := context.Background()

	_, err := s.Execute(ctx, validate.Input{Op: "push", Value: "42"}, nil)
	require.NoError(t, err)
	seq, err := s.Execute(ctx, validate.Input{Op: "pop"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "42", seq.Outcome.Value)
	assert.True(t, s.Snapshot().Equal(structure.Seed(structure.KindStack)))
}

func TestExecute_StringOperandUpperCased(t *testing.T) {
	s := newSession(t, structure.KindString)
	ctx := context.Background()

	seq, err := s.Execute(ctx, validate.Input{Op: "search", Value: "l"}, nil)
	require.NoError(t, err)
	assert.True(t, seq.Outcome.Found)
	assert.Equal(t, step.Index(2), seq.Outcome.Target)
	assert.Equal(t, 3, seq.Len())

	_, err = s.Execute(ctx, validate.Input{Op: "insert", Index: "0", Value: "x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "XHELLO", s.Snapshot().String())
}

func TestStart_Rejected(t *testing.T) {
	m := metrics.New()
	var logs bytes.Buffer
	log, err := logger.New(config.Logging{Level: "info", Format: "text"}, &logs)
	require.NoError(t, err)
	s := newSession(t, structure.KindArray, session.WithMetrics(m), session.WithLogger(log))

	_, _, err = s.Start(validate.Input{Op: "delete", Index: "6"}, nil)
	assert.ErrorIs(t, err, validate.ErrIndexOutOfRange)
	assert.Equal(t, playback.Idle, s.State())
	assert.True(t, s.Snapshot().Equal(structure.Seed(structure.KindArray)))

	_, _, err = s.Start(validate.Input{Kind: "stack", Op: "push", Value: "1"}, nil)
	assert.ErrorIs(t, err, validate.ErrKindMismatch)

	n, err := testutil.GatherAndCount(m.Registry(), "stepviz_rejected_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Contains(t, logs.String(), "request rejected")
	assert.Contains(t, logs.String(), "kind=array")
}

func TestStart_OneRunAtATime(t *testing.T) {
	s := newSession(t, structure.KindQueue)
	_, _, err := s.Start(validate.Input{Op: "enqueue", Value: "5"}, nil)
	require.NoError(t, err)

	_, _, err = s.Start(validate.Input{Op: "dequeue"}, nil)
	assert.ErrorIs(t, err, playback.ErrAlreadyActive)

	require.NoError(t, s.Pause())
	_, _, err = s.Start(validate.Input{Op: "dequeue"}, nil)
	assert.ErrorIs(t, err, playback.ErrAlreadyActive)

	require.NoError(t, s.Resume())
	require.NoError(t, s.Run(context.Background()))
	_, _, err = s.Start(validate.Input{Op: "dequeue"}, nil)
	assert.NoError(t, err)
}

func TestReset_MidRun(t *testing.T) {
	s := newSession(t, structure.KindHashTable)
	_, _, err := s.Start(validate.Input{Op: "delete", Key: "apple"}, nil)
	require.NoError(t, err)
	_, _, err = s.Advance()
	require.NoError(t, err)
	done := s.Done()

	s.Reset()
	<-done
	_, _, err = s.Advance()
	assert.ErrorIs(t, err, playback.ErrNotActive)
	assert.True(t, s.Snapshot().Equal(structure.Seed(structure.KindHashTable)))
}

func TestWithOrigin(t *testing.T) {
	origin := structure.NewStack()
	s := newSession(t, structure.KindStack, session.WithOrigin(origin))

	_, _, err := s.Start(validate.Input{Op: "pop"}, nil)
	assert.ErrorIs(t, err, validate.ErrEmptyStructure)

	_, err = s.Execute(context.Background(), validate.Input{Op: "push", Value: "1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, origin.Len(), "origin is cloned")

	s.Reset()
	assert.True(t, s.Snapshot().Equal(structure.NewStack()))
}

// TestSessions_Independent runs every kind at once; no session sees
// another's state.
func TestSessions_Independent(t *testing.T) {
	inputs := map[structure.Kind]validate.Input{
		structure.KindArray:      {Op: "search", Value: "9"},
		structure.KindString:     {Op: "update", Index: "0", Value: "J"},
		structure.KindLinkedList: {Op: "insert-head", Value: "1"},
		structure.KindStack:      {Op: "push", Value: "5"},
		structure.KindQueue:      {Op: "dequeue"},
		structure.KindMatrix:     {Op: "update", Row: "0", Col: "0", Value: "0"},
		structure.KindTree:       {Op: "insert", Value: "65"},
		structure.KindGraph:      {Op: "bfs", Start: "A"},
		structure.KindHashTable:  {Op: "insert", Key: "grape", Entry: "🍇"},
	}

	var wg sync.WaitGroup
	results := make(map[structure.Kind]*step.Sequence)
	var mu sync.Mutex
	sessions := make(map[structure.Kind]*session.Session)
	for k, in := range inputs {
		s := newSession(t, k)
		sessions[k] = s
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := s.Execute(context.Background(), in, nil)
			assert.NoError(t, err, k)
			mu.Lock()
			results[k] = seq
			mu.Unlock()
		}()
	}
	wg.Wait()

	for k, s := range sessions {
		require.NotNil(t, results[k], k)
		assert.True(t, s.Snapshot().Equal(results[k].Final), k)
	}
	assert.Equal(t, "JELLO", sessions[structure.KindString].Snapshot().String())
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, results[structure.KindGraph].Outcome.Order)
}
