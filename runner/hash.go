package runner

import (
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
)

// hashTable resolves the bucket first, then acts on that bucket alone.
func (r *run) hashTable() step.Outcome {
	h := r.b.Work().(*structure.HashTable)
	p := r.p()
	b := structure.Hash(p.Key)
	at := step.On(step.Bucket(b))
	r.b.Show(at, r.t.Bucket, "hash(%q) = %d", p.Key, b)

	old, present := h.Get(p.Key)
	out := step.Outcome{Found: present, Target: step.Bucket(b)}
	switch r.req.Op {
	case OpInsert:
		if present {
			r.b.Apply(at, step.HashPut{Key: p.Key, Value: p.Entry}, r.t.Settle, "update %q in bucket %d", p.Key, b)
		} else {
			r.b.Apply(at, step.HashPut{Key: p.Key, Value: p.Entry}, r.t.Settle, "chain %q onto bucket %d", p.Key, b)
		}
		out.Value = p.Entry
	case OpSearch:
		if present {
			r.b.Show(at, r.t.Settle, "%q -> %s", p.Key, old)
			out.Value = old
		} else {
			r.b.Show(at, r.t.Settle, "%q not found", p.Key)
		}
	default: // OpDelete
		if present {
			r.b.Apply(at, step.HashDelete{Key: p.Key}, r.t.Settle, "remove %q from bucket %d", p.Key, b)
			out.Value = old
		} else {
			r.b.Show(at, r.t.Settle, "%q not found", p.Key)
		}
	}
	r.b.Show(step.Cleared(), 0, "done")

	return out
}
