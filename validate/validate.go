package validate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/stepviz/runner"
	"github.com/katalvlaran/stepviz/structure"
)

// Request checks in against s and returns the typed request.
func Request(s structure.Structure, in Input) (runner.Request, error) {
	kind, err := structure.ParseKind(strings.TrimSpace(in.Kind))
	if err != nil {
		return runner.Request{}, fmt.Errorf("%w: %q", ErrKindMismatch, in.Kind)
	}
	if s == nil || s.Kind() != kind {
		return runner.Request{}, fmt.Errorf("%w: input is for %s", ErrKindMismatch, kind)
	}
	op := runner.Op(strings.ToLower(strings.TrimSpace(in.Op)))
	if !runner.Supports(kind, op) {
		return runner.Request{}, fmt.Errorf("%w: %q on %s", ErrUnknownOperation, in.Op, kind)
	}

	c := &checker{in: in}
	p := c.params(s, op)
	if c.err != nil {
		return runner.Request{}, c.err
	}

	return runner.Request{Kind: kind, Op: op, Params: p}, nil
}

// checker records the first failure; later checks become no-ops.
type checker struct {
	in  Input
	err error
}

func (c *checker) params(s structure.Structure, op runner.Op) runner.Params {
	var p runner.Params
	switch st := s.(type) {
	case *structure.Array:
		switch op {
		case runner.OpSearch:
			p.Value = c.number("value", c.in.Value)
		case runner.OpInsert:
			p.Value = c.number("value", c.in.Value)
			p.Index = c.position("index", c.in.Index, st.Len()+1)
		default:
			c.notEmpty(st.Len())
			p.Index = c.position("index", c.in.Index, st.Len())
			if op == runner.OpUpdate {
				p.Value = c.number("value", c.in.Value)
			}
		}
	case *structure.Text:
		switch op {
		case runner.OpSearch:
			p.Char = c.char(c.in.Value)
		case runner.OpInsert:
			p.Char = c.char(c.in.Value)
			p.Index = c.position("index", c.in.Index, st.Len()+1)
		default:
			c.notEmpty(st.Len())
			p.Index = c.position("index", c.in.Index, st.Len())
			if op == runner.OpUpdate {
				p.Char = c.char(c.in.Value)
			}
		}
	case *structure.Matrix:
		p.Value = c.number("value", c.in.Value)
		if op == runner.OpUpdate {
			p.Row = c.position("row", c.in.Row, st.Rows())
			p.Col = c.position("col", c.in.Col, st.Cols())
		}
	case *structure.LinkedList:
		if op == runner.OpDelete {
			c.notEmpty(st.Len())
			p.Index = c.position("index", c.in.Index, st.Len())
		} else {
			p.Value = c.number("value", c.in.Value)
		}
	case *structure.Stack:
		if op == runner.OpPop {
			c.notEmpty(st.Len())
		} else {
			p.Value = c.number("value", c.in.Value)
		}
	case *structure.Queue:
		if op == runner.OpDequeue {
			c.notEmpty(st.Len())
		} else {
			p.Value = c.number("value", c.in.Value)
		}
	case *structure.Tree:
		if op == runner.OpSearch || op == runner.OpInsert {
			p.Value = c.number("value", c.in.Value)
		}
	case *structure.Graph:
		c.notEmpty(st.NodeCount())
		p.Start = strings.TrimSpace(c.in.Start)
		if c.err == nil && p.Start != "" && !st.HasNode(p.Start) {
			c.err = fmt.Errorf("%w: %q", ErrUnknownNode, p.Start)
		}
		if strings.TrimSpace(c.in.Depth) != "" {
			p.Depth = c.number("depth", c.in.Depth)
			if c.err == nil && p.Depth < 1 {
				c.fail(fmt.Errorf("%w: %d", ErrBadDepth, p.Depth))
			}
		}
	case *structure.HashTable:
		p.Key = strings.ToLower(strings.TrimSpace(c.in.Key))
		if p.Key == "" {
			c.fail(ErrEmptyKey)
		}
		if op == runner.OpInsert {
			p.Entry = strings.TrimSpace(c.in.Entry)
			if p.Entry == "" {
				c.fail(fmt.Errorf("%w: entry", ErrEmptyValue))
			}
		}
	}

	return p
}

func (c *checker) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *checker) number(field, raw string) int {
	if c.err != nil {
		return 0
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		c.fail(fmt.Errorf("%w: %s", ErrEmptyValue, field))
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.fail(fmt.Errorf("%w: %s %q", ErrNotANumber, field, raw))
		return 0
	}

	return n
}

// position parses raw as an index in [0, limit).
func (c *checker) position(field, raw string, limit int) int {
	n := c.number(field, raw)
	if c.err != nil {
		return 0
	}
	if n < 0 || n >= limit {
		c.fail(fmt.Errorf("%w: %s %d not in [0,%d)", ErrIndexOutOfRange, field, n, limit))
		return 0
	}

	return n
}

// char takes the first character of raw, upper-cased to match the
// all-capitals alphabet strings are edited in.
func (c *checker) char(raw string) rune {
	if c.err != nil {
		return 0
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		c.fail(fmt.Errorf("%w: character", ErrEmptyValue))
		return 0
	}
	r, _ := utf8.DecodeRuneInString(raw)

	return unicode.ToUpper(r)
}

func (c *checker) notEmpty(n int) {
	if n == 0 {
		c.fail(ErrEmptyStructure)
	}
}
