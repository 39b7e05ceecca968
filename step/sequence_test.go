package step_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
)

func TestBuilder_ReplayReproducesFinal(t *testing.T) {
	origin := structure.NewArray(1, 2, 3)
	b := step.NewBuilder(origin)
	b.Show(step.On(step.Index(1)), 500*time.Millisecond, "about to insert")
	b.Apply(step.On(step.Index(1)), step.ArrayInsert{Index: 1, Value: 9}, 500*time.Millisecond, "inserted %d", 9)
	b.Show(step.Cleared(), 0, "")
	seq := b.Build(structure.KindArray, "insert", step.Outcome{})

	// origin is untouched
	assert.Equal(t, "[1 2 3]", origin.String())
	assert.Equal(t, "[1 9 2 3]", seq.Final.String())

	replayed := origin.Clone()
	seq.Replay(replayed)
	assert.True(t, replayed.Equal(seq.Final))

	assert.Equal(t, 3, seq.Len())
	assert.Equal(t, 1, seq.Mutations())
	assert.Equal(t, time.Second, seq.Duration())
	assert.Equal(t, "inserted 9", seq.At(1).Caption)
	last, ok := seq.Last()
	require.True(t, ok)
	assert.True(t, last.Highlight.IsCleared())
}

func TestSequence_AllStopsEarly(t *testing.T) {
	b := step.NewBuilder(structure.NewArray(1, 2, 3))
	for i := 0; i < 3; i++ {
		b.Show(step.On(step.Index(i)), 0, "")
	}
	seq := b.Build(structure.KindArray, "search", step.Outcome{})

	var seen []int
	for i, s := range seq.All() {
		seen = append(seen, s.Highlight.Target.Index)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, seen)
}

func TestMutation_WrongKindPanics(t *testing.T) {
	assert.Panics(t, func() { step.StackPop{}.Apply(structure.NewQueue(1)) })
	assert.NotPanics(t, func() { step.QueueDequeue{}.Apply(structure.NewQueue(1)) })
}

func TestHighlight_WithVisitedSnapshots(t *testing.T) {
	visited := []string{"A"}
	h := step.On(step.Node("A")).WithVisited(visited).WithEdge("A", "B")
	visited[0] = "Z"
	assert.Equal(t, []string{"A"}, h.Visited)
	assert.Equal(t, "A->B", h.Edge.String())
	assert.False(t, h.IsCleared())
}

func TestTarget_String(t *testing.T) {
	assert.Equal(t, "none", step.None().String())
	assert.Equal(t, "index 3", step.Index(3).String())
	assert.Equal(t, "cell (1,2)", step.Cell(1, 2).String())
	assert.Equal(t, "node B", step.Node("B").String())
	assert.Equal(t, "bucket 5", step.Bucket(5).String())
}

func TestSequence_MarshalYAML(t *testing.T) {
	b := step.NewBuilder(structure.NewHashTable())
	b.Show(step.On(step.Bucket(5)), 800*time.Millisecond, "hash(apple) = 5")
	b.Apply(step.On(step.Bucket(5)), step.HashPut{Key: "apple", Value: "x"}, 500*time.Millisecond, "")
	seq := b.Build(structure.KindHashTable, "insert", step.Outcome{Target: step.Bucket(5)})

	out, err := yaml.Marshal(seq)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, "hashtable", back["kind"])
	assert.Equal(t, "1.3s", back["duration"])
	steps := back["steps"].([]any)
	require.Len(t, steps, 2)
	second := steps[1].(map[string]any)
	assert.Equal(t, "bucket 5", second["target"])
	assert.Equal(t, `put "apple" -> "x"`, second["mutation"])
	assert.Equal(t, "500ms", second["delay"])
	assert.Equal(t, "bucket 5", back["outcome"].(map[string]any)["target"])
}
