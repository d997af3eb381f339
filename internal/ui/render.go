// Package ui renders loaded signatures as a styled tree for the dump
// command. The plain canonical dump lives in the rootsig package; this is
// the terminal-facing view.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rootsig/internal/rootsig"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	tableStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	clauseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// RenderSignature returns a tree view of the element stream with each
// table's owned clauses indented beneath it. Ordering follows the same
// stack discipline the metadata builder uses, so unowned clauses stay at
// top level in stream position.
func RenderSignature(name string, elements []rootsig.RootElement) string {
	var stack []string
	for _, element := range elements {
		switch e := element.(type) {
		case rootsig.DescriptorTableClause:
			var buf strings.Builder
			e.Dump(&buf)
			stack = append(stack, clauseStyle.Render(buf.String()))
		case rootsig.DescriptorTable:
			k := int(e.NumClauses)
			if k > len(stack) {
				k = len(stack) // tolerate malformed input in a viewer
			}
			owned := stack[len(stack)-k:]
			stack = stack[:len(stack)-k]

			var buf strings.Builder
			e.Dump(&buf)
			block := tableStyle.Render(buf.String())
			for _, line := range owned {
				block += "\n  " + strings.ReplaceAll(line, "\n", "\n  ")
			}
			stack = append(stack, block)
		default:
			panic(fmt.Sprintf("ui: unhandled root element %T", element))
		}
	}

	out := headerStyle.Render(name)
	for _, block := range stack {
		out += "\n" + block
	}
	return out
}
