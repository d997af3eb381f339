package diag

import "fmt"

type Code uint16

const (
	// Unknown bucket for anything not yet classified.
	UnknownCode Code = 0

	// Signature-file level (reserved; the loader currently reports plain
	// errors, not diagnostics).
	SigInfo Code = 1000

	// Binding validation.
	ValInfo            Code = 2000
	ValRegisterOverlap Code = 2001
	ValEmptyRange      Code = 2002
	ValRangeOverflow   Code = 2003
)

func (c Code) String() string {
	return fmt.Sprintf("RS%04d", uint16(c))
}
