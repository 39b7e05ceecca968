package structure

import "slices"

// Text is an ordered sequence of characters. Every mutation replaces the
// backing slice with a freshly built one, so a slice previously handed out
// by Runes is never written to again.
type Text struct {
	runes []rune
}

// NewText builds a Text from s.
func NewText(s string) *Text {
	return &Text{runes: []rune(s)}
}

// Kind implements Structure.
func (t *Text) Kind() Kind { return KindString }

// Len returns the number of characters.
func (t *Text) Len() int { return len(t.runes) }

// At returns the character at index i.
func (t *Text) At(i int) rune {
	mustIndex("string", i, len(t.runes))

	return t.runes[i]
}

// Runes returns a copy of the characters.
func (t *Text) Runes() []rune { return slices.Clone(t.runes) }

// Insert places r before index i. i may equal Len.
func (t *Text) Insert(i int, r rune) {
	mustInsertIndex("string", i, len(t.runes))
	next := make([]rune, 0, len(t.runes)+1)
	next = append(next, t.runes[:i]...)
	next = append(next, r)
	next = append(next, t.runes[i:]...)
	t.runes = next
}

// Delete removes and returns the character at index i.
func (t *Text) Delete(i int) rune {
	mustIndex("string", i, len(t.runes))
	r := t.runes[i]
	next := make([]rune, 0, len(t.runes)-1)
	next = append(next, t.runes[:i]...)
	next = append(next, t.runes[i+1:]...)
	t.runes = next

	return r
}

// Replace swaps the character at index i for r and returns the old one.
func (t *Text) Replace(i int, r rune) rune {
	mustIndex("string", i, len(t.runes))
	old := t.runes[i]
	next := slices.Clone(t.runes)
	next[i] = r
	t.runes = next

	return old
}

// Clone implements Structure.
func (t *Text) Clone() Structure { return &Text{runes: slices.Clone(t.runes)} }

// Equal implements Structure.
func (t *Text) Equal(other Structure) bool {
	o, ok := other.(*Text)

	return ok && slices.Equal(t.runes, o.runes)
}

func (t *Text) String() string { return string(t.runes) }
