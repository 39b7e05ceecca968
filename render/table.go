package render

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
)

// StepTable lists every step of seq with its target, mutation, caption
// and delay, and summarises the outcome in the footer.
func StepTable(seq *step.Sequence) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.SetTitle(fmt.Sprintf("%s %s", seq.Kind, seq.Op))
	tbl.AppendHeader(table.Row{"#", "Target", "Visited", "Mutation", "Caption", "Delay"})

	for i, s := range seq.All() {
		target := s.Highlight.Target.String()
		if s.Highlight.Edge != nil {
			target += " " + s.Highlight.Edge.String()
		}
		mutation := ""
		if s.Mutation != nil {
			mutation = s.Mutation.String()
		}
		tbl.AppendRow(table.Row{i, target, strings.Join(s.Highlight.Visited, " "), mutation, s.Caption, s.Delay})
	}

	tbl.AppendFooter(table.Row{"", "", "", "", Outcome(seq.Outcome), seq.Duration()})

	return tbl.Render()
}

// Outcome describes what a sequence found or produced in one line.
func Outcome(o step.Outcome) string {
	switch {
	case len(o.Order) > 0:
		return "order: " + strings.Join(o.Order, " ")
	case o.Found:
		return fmt.Sprintf("found %s at %s", o.Value, o.Target)
	case o.Value != "":
		return fmt.Sprintf("%s at %s", o.Value, o.Target)
	default:
		return "not found"
	}
}

// CatalogTable lists every kind with its description, complexity and the
// operations ops reports for it.
func CatalogTable(infos []structure.Info, ops func(structure.Kind) []string) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Kind", "Name", "Operations", "Complexity"})
	for _, in := range infos {
		tbl.AppendRow(table.Row{in.Kind, in.Name, strings.Join(ops(in.Kind), ", "), in.Complexity})
	}

	return tbl.Render()
}
