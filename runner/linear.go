package runner

import (
	"strconv"

	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
)

func (r *run) array() step.Outcome {
	a := r.b.Work().(*structure.Array)
	p := r.p()
	switch r.req.Op {
	case OpSearch:
		for i := range a.Len() {
			v := a.At(i)
			r.b.Show(step.On(step.Index(i)), r.t.Scan, "compare [%d]=%d with %d", i, v, p.Value)
			if v == p.Value {
				return step.Outcome{Found: true, Target: step.Index(i), Value: strconv.Itoa(v)}
			}
		}

		return r.miss("%d not found", p.Value)
	case OpInsert:
		r.edit(step.Index(p.Index), step.ArrayInsert{Index: p.Index, Value: p.Value}, r.t.EditPhase)

		return step.Outcome{Target: step.Index(p.Index), Value: strconv.Itoa(p.Value)}
	case OpDelete:
		old := a.At(p.Index)
		r.edit(step.Index(p.Index), step.ArrayDelete{Index: p.Index}, r.t.EditPhase)

		return step.Outcome{Target: step.Index(p.Index), Value: strconv.Itoa(old)}
	default: // OpUpdate
		old := a.At(p.Index)
		r.edit(step.Index(p.Index), step.ArraySet{Index: p.Index, Value: p.Value}, r.t.EditPhase)

		return step.Outcome{Target: step.Index(p.Index), Value: strconv.Itoa(old)}
	}
}

func (r *run) text() step.Outcome {
	t := r.b.Work().(*structure.Text)
	p := r.p()
	switch r.req.Op {
	case OpSearch:
		for i := range t.Len() {
			c := t.At(i)
			r.b.Show(step.On(step.Index(i)), r.t.TextPhase, "compare [%d]=%q with %q", i, c, p.Char)
			if c == p.Char {
				return step.Outcome{Found: true, Target: step.Index(i), Value: string(c)}
			}
		}

		return r.miss("%q not found", p.Char)
	case OpInsert:
		r.edit(step.Index(p.Index), step.TextInsert{Index: p.Index, Char: p.Char}, r.t.TextPhase)

		return step.Outcome{Target: step.Index(p.Index), Value: string(p.Char)}
	case OpDelete:
		old := t.At(p.Index)
		r.edit(step.Index(p.Index), step.TextDelete{Index: p.Index}, r.t.TextPhase)

		return step.Outcome{Target: step.Index(p.Index), Value: string(old)}
	default: // OpUpdate replaces one character
		old := t.At(p.Index)
		r.edit(step.Index(p.Index), step.TextReplace{Index: p.Index, Char: p.Char}, r.t.TextPhase)

		return step.Outcome{Target: step.Index(p.Index), Value: string(old)}
	}
}

func (r *run) matrix() step.Outcome {
	m := r.b.Work().(*structure.Matrix)
	p := r.p()
	if r.req.Op == OpUpdate {
		old := m.At(p.Row, p.Col)
		r.edit(step.Cell(p.Row, p.Col), step.CellSet{Row: p.Row, Col: p.Col, Value: p.Value}, r.t.EditPhase)

		return step.Outcome{Target: step.Cell(p.Row, p.Col), Value: strconv.Itoa(old)}
	}

	// row-major scan
	for row := range m.Rows() {
		for col := range m.Cols() {
			v := m.At(row, col)
			r.b.Show(step.On(step.Cell(row, col)), r.t.Scan, "compare (%d,%d)=%d with %d", row, col, v, p.Value)
			if v == p.Value {
				return step.Outcome{Found: true, Target: step.Cell(row, col), Value: strconv.Itoa(v)}
			}
		}
	}

	return r.miss("%d not found", p.Value)
}
