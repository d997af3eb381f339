package rootsig

import "fmt"

// RegisterKind identifies the register file a binding lives in.
// Overlap checks are scoped per kind (and per space): a b-register never
// collides with a t-register of the same number.
type RegisterKind uint8

const (
	// RegisterBuffer is the constant-buffer register file ("b").
	RegisterBuffer RegisterKind = iota
	// RegisterTexture is the shader-resource register file ("t").
	RegisterTexture
	// RegisterUAV is the unordered-access register file ("u").
	RegisterUAV
	// RegisterSampler is the sampler register file ("s").
	RegisterSampler
)

// String returns the single-character register prefix.
func (k RegisterKind) String() string {
	switch k {
	case RegisterBuffer:
		return "b"
	case RegisterTexture:
		return "t"
	case RegisterUAV:
		return "u"
	case RegisterSampler:
		return "s"
	}
	return "?"
}

// Register is a bind point: a register file plus a number within it.
// Immutable value.
type Register struct {
	Kind   RegisterKind
	Number uint32
}

func (r Register) String() string {
	return fmt.Sprintf("%s%d", r.Kind, r.Number)
}
