package rootsig

import (
	"fmt"
	"math/bits"
	"strings"
)

// DescriptorRangeFlags is a bitmask describing descriptor and data
// volatility of a clause. Bit values match the target runtime's encoding,
// including the gap before DescriptorsStaticKeepingBufferBoundsChecks.
type DescriptorRangeFlags uint32

const (
	DescriptorsVolatile                        DescriptorRangeFlags = 0x1
	DataVolatile                               DescriptorRangeFlags = 0x2
	DataStaticWhileSetAtExecute                DescriptorRangeFlags = 0x4
	DataStatic                                 DescriptorRangeFlags = 0x8
	DescriptorsStaticKeepingBufferBoundsChecks DescriptorRangeFlags = 0x10000
)

func flagName(bit DescriptorRangeFlags) string {
	switch bit {
	case DescriptorsVolatile:
		return "DescriptorsVolatile"
	case DataVolatile:
		return "DataVolatile"
	case DataStaticWhileSetAtExecute:
		return "DataStaticWhileSetAtExecute"
	case DataStatic:
		return "DataStatic"
	case DescriptorsStaticKeepingBufferBoundsChecks:
		return "DescriptorsStaticKeepingBufferBoundsChecks"
	}
	return fmt.Sprintf("invalid: %d", uint32(bit))
}

// String renders set bits lowest-first joined by " | ", or "None" when the
// mask is empty. Unknown bits render as "invalid: N".
func (f DescriptorRangeFlags) String() string {
	if f == 0 {
		return "None"
	}
	var names []string
	remaining := uint32(f)
	for remaining != 0 {
		bit := uint32(1) << bits.TrailingZeros32(remaining)
		names = append(names, flagName(DescriptorRangeFlags(bit)))
		remaining &^= bit
	}
	return strings.Join(names, " | ")
}
