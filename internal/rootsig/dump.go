package rootsig

import (
	"fmt"
	"io"
)

// Dump writes the clause in its canonical one-line form, e.g.
// CBV(b0, numDescriptors = 1, space = 0, offset = DescriptorTableOffsetAppend, flags = None).
func (c DescriptorTableClause) Dump(w io.Writer) {
	fmt.Fprintf(w, "%s(%s, numDescriptors = %d, space = %d, offset = ",
		c.Kind, c.Reg, c.NumDescriptors, c.Space)
	if c.Offset == OffsetAppend {
		io.WriteString(w, "DescriptorTableOffsetAppend")
	} else {
		fmt.Fprintf(w, "%d", c.Offset)
	}
	fmt.Fprintf(w, ", flags = %s)", c.Flags)
}

// Dump writes the table in its canonical one-line form.
func (t DescriptorTable) Dump(w io.Writer) {
	fmt.Fprintf(w, "DescriptorTable(numClauses = %d, visibility = %s)",
		t.NumClauses, t.Visibility)
}

// DumpRootElements writes the whole stream as
// RootElements{ elem, elem, ...}.
func DumpRootElements(w io.Writer, elements []RootElement) {
	io.WriteString(w, "RootElements{")
	for i, element := range elements {
		if i > 0 {
			io.WriteString(w, ",")
		}
		io.WriteString(w, " ")
		switch e := element.(type) {
		case DescriptorTableClause:
			e.Dump(w)
		case DescriptorTable:
			e.Dump(w)
		default:
			panic(fmt.Sprintf("rootsig: unhandled root element %T", element))
		}
	}
	io.WriteString(w, "}")
}
