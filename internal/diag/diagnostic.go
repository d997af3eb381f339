package diag

import "fmt"

// Loc points at a declaration element within a signature file. Element is
// the index in the root-element stream; a negative Element addresses the
// file as a whole.
type Loc struct {
	Path    string
	Element int
}

func (l Loc) String() string {
	if l.Element < 0 {
		return l.Path
	}
	return fmt.Sprintf("%s[%d]", l.Path, l.Element)
}

type Note struct {
	Loc Loc
	Msg string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  Loc
	Notes    []Note
}
