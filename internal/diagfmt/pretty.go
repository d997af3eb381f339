package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"rootsig/internal/diag"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgBlue)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// Pretty formats diagnostics for humans, one per line:
//
//	<path>[<element>]: <SEV> <CODE>: <message>
//	  note: <path>[<element>]: <message>
//
// Call bag.Sort() first for deterministic order. Color is opt-in.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	for _, d := range bag.Items() {
		sev := d.Severity.String()
		if opts.Color {
			sev = severityColor(d.Severity).Sprint(sev)
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n", d.Primary, sev, d.Code, d.Message)
		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			prefix := "note"
			if opts.Color {
				prefix = noteColor.Sprint(prefix)
			}
			fmt.Fprintf(w, "  %s: %s: %s\n", prefix, note.Loc, note.Msg)
		}
	}
}
