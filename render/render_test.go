package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/render"
	"github.com/katalvlaran/stepviz/runner"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
)

func plain() *render.Renderer { return render.New(render.WithoutColor()) }

func TestStructure_Linear(t *testing.T) {
	r := plain()
	cases := []struct {
		name string
		kind structure.Kind
		h    step.Highlight
		want string
	}{
		{"array", structure.KindArray, step.On(step.Index(2)), "[ 5 | 2 | <8> | 1 | 9 | 3 ]"},
		{"stack", structure.KindStack, step.Cleared(), "[ 1 | 2 | 3 | 4 ] <- top"},
		{"queue", structure.KindQueue, step.On(step.Index(0)), "front -> [ <1> | 2 | 3 | 4 ] <- rear"},
		{"string", structure.KindString, step.On(step.Index(0)), `"<H>ELLO"`},
		{"list", structure.KindLinkedList, step.On(step.Node("2")), "10 -> <20> -> 30 -> null"},
		{"matrix", structure.KindMatrix, step.On(step.Cell(1, 1)), "| 1 2 3 |\n| 4 <5> 6 |\n| 7 8 9 |"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Structure(structure.Seed(tc.kind), tc.h))
		})
	}
}

func TestStructure_TreeSideways(t *testing.T) {
	h := step.On(step.Node("30")).WithVisited([]string{"50"})
	want := strings.Join([]string{
		"        80",
		"    70",
		"        60",
		"(50)",
		"        40",
		"    <30>",
		"        20",
	}, "\n")
	assert.Equal(t, want, plain().Structure(structure.Seed(structure.KindTree), h))
	assert.Equal(t, "(empty)", plain().Structure(structure.NewTree(), step.Cleared()))
}

func TestStructure_GraphEdgeEitherDirection(t *testing.T) {
	g := structure.Seed(structure.KindGraph)
	h := step.On(step.Node("B")).WithVisited([]string{"A"}).WithEdge("A", "B")
	assert.Equal(t, "nodes: (A) <B> C D E\nedges: =A-B= A-D B-C B-E C-E D-E", plain().Structure(g, h))

	h = step.On(step.Node("E")).WithEdge("E", "D")
	assert.Contains(t, plain().Structure(g, h), "=D-E=")
}

func TestStructure_HashBuckets(t *testing.T) {
	want := strings.Join([]string{
		" 0: banana=🍌",
		" 1:",
		" 2:",
		" 3:",
		" 4:",
		">5: apple=🍎",
		" 6: orange=🍊",
	}, "\n")
	assert.Equal(t, want, plain().Structure(structure.Seed(structure.KindHashTable), step.On(step.Bucket(5))))
}

func TestStepTable(t *testing.T) {
	seq, err := runner.Run(structure.Seed(structure.KindArray), runner.Request{
		Kind:   structure.KindArray,
		Op:     runner.OpSearch,
		Params: runner.Params{Value: 9},
	})
	require.NoError(t, err)

	out := render.StepTable(seq)
	assert.Contains(t, out, "compare [4]=9 with 9")
	assert.Contains(t, out, "index 4")
	assert.Contains(t, out, "4s")
	assert.Contains(t, out, "found")
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "order: A B D", render.Outcome(step.Outcome{Order: []string{"A", "B", "D"}}))
	assert.Equal(t, "found 9 at index 4", render.Outcome(step.Outcome{Found: true, Target: step.Index(4), Value: "9"}))
	assert.Equal(t, "4 at index 3", render.Outcome(step.Outcome{Target: step.Index(3), Value: "4"}))
	assert.Equal(t, "not found", render.Outcome(step.Outcome{}))
}

func TestCatalogTable(t *testing.T) {
	out := render.CatalogTable(structure.Catalog(), func(k structure.Kind) []string {
		ops := runner.Operations(k)
		names := make([]string, len(ops))
		for i, op := range ops {
			names[i] = string(op)
		}
		return names
	})
	for _, in := range structure.Catalog() {
		assert.Contains(t, out, in.Name)
	}
	assert.Contains(t, out, "insert-head")
}
