package rootsig

// ClauseKind identifies the view type of a descriptor-table clause.
type ClauseKind uint8

const (
	ClauseCBuffer ClauseKind = iota
	ClauseSRV
	ClauseUAV
	ClauseSampler
)

func (k ClauseKind) String() string {
	switch k {
	case ClauseCBuffer:
		return "CBV"
	case ClauseSRV:
		return "SRV"
	case ClauseUAV:
		return "UAV"
	case ClauseSampler:
		return "Sampler"
	}
	return "Unknown"
}

// RegisterKind returns the register file this clause kind binds to.
func (k ClauseKind) RegisterKind() RegisterKind {
	switch k {
	case ClauseCBuffer:
		return RegisterBuffer
	case ClauseSRV:
		return RegisterTexture
	case ClauseUAV:
		return RegisterUAV
	case ClauseSampler:
		return RegisterSampler
	}
	return RegisterBuffer
}

// OffsetAppend is the sentinel offset meaning "place this clause directly
// after the previous one in the table".
const OffsetAppend uint32 = 0xffffffff

// DescriptorTableClause is a single binding entry within a descriptor
// table. Immutable once emitted by the parser.
type DescriptorTableClause struct {
	Kind           ClauseKind
	Reg            Register
	NumDescriptors uint32
	Space          uint32
	Offset         uint32
	Flags          DescriptorRangeFlags
}

// DescriptorTable groups the NumClauses clause elements that immediately
// precede it in the element stream and have not been claimed by an earlier
// table.
type DescriptorTable struct {
	NumClauses uint32
	Visibility ShaderVisibility
}
