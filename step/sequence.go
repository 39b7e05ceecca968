package step

import (
	"fmt"
	"iter"
	"time"

	"github.com/katalvlaran/stepviz/structure"
)

// Sequence is the ordered, finite list of Steps produced for one request.
type Sequence struct {
	Kind    structure.Kind
	Op      string
	Steps   []Step
	Outcome Outcome

	// Final is the structure state after every Mutation has been applied.
	Final structure.Structure
}

// Len returns the number of steps.
func (q *Sequence) Len() int { return len(q.Steps) }

// At returns step i.
func (q *Sequence) At(i int) Step { return q.Steps[i] }

// Last returns the final step, if any.
func (q *Sequence) Last() (Step, bool) {
	if len(q.Steps) == 0 {
		return Step{}, false
	}

	return q.Steps[len(q.Steps)-1], true
}

// All yields steps with their positions, in order.
func (q *Sequence) All() iter.Seq2[int, Step] {
	return func(yield func(int, Step) bool) {
		for i, s := range q.Steps {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Duration is the sum of every step delay.
func (q *Sequence) Duration() time.Duration {
	var d time.Duration
	for _, s := range q.Steps {
		d += s.Delay
	}

	return d
}

// Mutations counts the steps that carry a Mutation.
func (q *Sequence) Mutations() int {
	n := 0
	for _, s := range q.Steps {
		if s.Mutates() {
			n++
		}
	}

	return n
}

// Replay applies every Mutation, in order, to target.
func (q *Sequence) Replay(target structure.Structure) {
	for _, s := range q.Steps {
		if s.Mutation != nil {
			s.Mutation.Apply(target)
		}
	}
}

// Builder accumulates Steps against a private working copy of a structure.
type Builder struct {
	work  structure.Structure
	steps []Step
}

// NewBuilder clones origin; origin itself is never touched.
func NewBuilder(origin structure.Structure) *Builder {
	return &Builder{work: origin.Clone()}
}

// Work exposes the working copy, reflecting every mutation recorded so far.
func (b *Builder) Work() structure.Structure { return b.work }

// Show records a highlight-only step.
func (b *Builder) Show(h Highlight, delay time.Duration, format string, args ...any) *Builder {
	b.steps = append(b.steps, Step{Highlight: h, Delay: delay, Caption: caption(format, args)})

	return b
}

// Apply applies m to the working copy and records it with highlight h.
func (b *Builder) Apply(h Highlight, m Mutation, delay time.Duration, format string, args ...any) *Builder {
	m.Apply(b.work)
	b.steps = append(b.steps, Step{Highlight: h, Mutation: m, Delay: delay, Caption: caption(format, args)})

	return b
}

// Build finishes the sequence.
func (b *Builder) Build(kind structure.Kind, op string, outcome Outcome) *Sequence {
	return &Sequence{Kind: kind, Op: op, Steps: b.steps, Outcome: outcome, Final: b.work}
}

func caption(format string, args []any) string {
	if len(args) == 0 {
		return format
	}

	return fmt.Sprintf(format, args...)
}
