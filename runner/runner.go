package runner

import (
	"fmt"
	"time"

	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
)

// Run builds the step sequence for req against s. s is cloned and left
// untouched; Sequence.Final holds the state after every mutation.
func Run(s structure.Structure, req Request, opts ...Option) (*step.Sequence, error) {
	if s == nil || s.Kind() != req.Kind {
		got := "nil"
		if s != nil {
			got = string(s.Kind())
		}

		return nil, fmt.Errorf("%w: request for %s, got %s", ErrKindMismatch, req.Kind, got)
	}
	if !Supports(req.Kind, req.Op) {
		return nil, fmt.Errorf("%w: %s on %s", ErrUnsupportedOperation, req.Op, req.Kind)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	r := &run{b: step.NewBuilder(s), req: req, t: o.Timing}
	var out step.Outcome
	switch req.Kind {
	case structure.KindArray:
		out = r.array()
	case structure.KindString:
		out = r.text()
	case structure.KindMatrix:
		out = r.matrix()
	case structure.KindLinkedList:
		out = r.linkedList()
	case structure.KindStack:
		out = r.stack()
	case structure.KindQueue:
		out = r.queue()
	case structure.KindTree:
		out = r.tree()
	case structure.KindGraph:
		var err error
		if out, err = r.graph(); err != nil {
			return nil, err
		}
	case structure.KindHashTable:
		out = r.hashTable()
	}

	return r.b.Build(req.Kind, string(req.Op), out), nil
}

// run is the state of one Run call.
type run struct {
	b   *step.Builder
	req Request
	t   Timing
}

func (r *run) p() Params { return r.req.Params }

// edit records the three-phase edit shared by array, string and matrix:
// highlight the target, apply m under the same highlight, clear.
func (r *run) edit(target step.Target, m step.Mutation, phase time.Duration) {
	r.b.Show(step.On(target), phase, "%s: %s", r.req.Op, target)
	r.b.Apply(step.On(target), m, phase, "%s", m)
	r.b.Show(step.Cleared(), 0, "done")
}

// miss ends a search that found nothing.
func (r *run) miss(format string, args ...any) step.Outcome {
	r.b.Show(step.Cleared(), 0, format, args...)

	return step.Outcome{}
}
