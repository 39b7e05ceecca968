package runner

import (
	"strconv"

	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
)

func listNode(id int) step.Target { return step.Node(strconv.Itoa(id)) }

func (r *run) linkedList() step.Outcome {
	l := r.b.Work().(*structure.LinkedList)
	p := r.p()
	switch r.req.Op {
	case OpInsertHead, OpInsertTail:
		id := l.NextID()
		var m step.Mutation = step.ListPushFront{Value: p.Value}
		if r.req.Op == OpInsertTail {
			m = step.ListPushBack{Value: p.Value}
		}
		r.b.Apply(step.On(listNode(id)), m, r.t.Link, "%s (node %d)", m, id)
		r.b.Show(step.Cleared(), 0, "list: %s", l)

		return step.Outcome{Target: listNode(id), Value: strconv.Itoa(p.Value)}
	default: // OpDelete
		victim := l.NodeAt(p.Index)
		r.b.Show(step.On(listNode(victim.ID)), r.t.Unlink, "node %d at %d holds %d", victim.ID, p.Index, victim.Value)
		r.b.Apply(step.Cleared(), step.ListDelete{Index: p.Index}, 0, "unlinked; list: %s", l)

		return step.Outcome{Target: listNode(victim.ID), Value: strconv.Itoa(victim.Value)}
	}
}

func (r *run) stack() step.Outcome {
	s := r.b.Work().(*structure.Stack)
	if r.req.Op == OpPush {
		v := r.p().Value
		top := s.Len()
		r.b.Apply(step.On(step.Index(top)), step.StackPush{Value: v}, r.t.Container, "push %d", v)
		r.b.Show(step.Cleared(), 0, "stack: %s", s)

		return step.Outcome{Target: step.Index(top), Value: strconv.Itoa(v)}
	}

	top := s.Len() - 1
	v, _ := s.Peek()
	r.b.Show(step.On(step.Index(top)), r.t.Container, "top is %d", v)
	r.b.Apply(step.Cleared(), step.StackPop{}, 0, "popped %d", v)

	return step.Outcome{Target: step.Index(top), Value: strconv.Itoa(v)}
}

func (r *run) queue() step.Outcome {
	q := r.b.Work().(*structure.Queue)
	if r.req.Op == OpEnqueue {
		v := r.p().Value
		tail := q.Len()
		r.b.Apply(step.On(step.Index(tail)), step.QueueEnqueue{Value: v}, r.t.Container, "enqueue %d", v)
		r.b.Show(step.Cleared(), 0, "queue: %s", q)

		return step.Outcome{Target: step.Index(tail), Value: strconv.Itoa(v)}
	}

	v, _ := q.Front()
	r.b.Show(step.On(step.Index(0)), r.t.Container, "front is %d", v)
	r.b.Apply(step.Cleared(), step.QueueDequeue{}, 0, "dequeued %d", v)

	return step.Outcome{Target: step.Index(0), Value: strconv.Itoa(v)}
}
