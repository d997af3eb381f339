// Package validate drives binding validation over a root-element stream:
// every clause's register range is inserted into a per-(register kind,
// register space) tracker, and collisions become diagnostics. Detection
// only; accepting or rejecting the signature is the caller's policy.
package validate

import (
	"fmt"
	"math"

	"rootsig/internal/diag"
	"rootsig/internal/rangemap"
	"rootsig/internal/rootsig"
)

type bucketKey struct {
	Kind  rootsig.RegisterKind
	Space uint32
}

// RootElements scans the stream once in declaration order and reports every
// register-range conflict through r. Trackers live only for this call; the
// Info records borrow element indices from the caller's stream.
func RootElements(path string, elements []rootsig.RootElement, r diag.Reporter) {
	// Preallocated so tracker borrows into infos stay stable.
	infos := make([]rangemap.Info, 0, len(elements))
	buckets := make(map[bucketKey]*rangemap.ResourceRange)

	for i, element := range elements {
		switch e := element.(type) {
		case rootsig.DescriptorTableClause:
			loc := diag.Loc{Path: path, Element: i}

			if e.NumDescriptors == 0 {
				r.Report(diag.NewError(diag.ValEmptyRange, loc,
					fmt.Sprintf("%s at %s binds zero descriptors", e.Kind, e.Reg)))
				continue
			}
			lower := e.Reg.Number
			if e.NumDescriptors-1 > math.MaxUint32-lower {
				r.Report(diag.NewError(diag.ValRangeOverflow, loc,
					fmt.Sprintf("%s at %s: %d descriptors exceed the register space",
						e.Kind, e.Reg, e.NumDescriptors)))
				continue
			}
			upper := lower + e.NumDescriptors - 1

			infos = append(infos, rangemap.Info{
				LowerBound: lower,
				UpperBound: upper,
				Element:    i,
			})
			info := &infos[len(infos)-1]

			key := bucketKey{Kind: e.Kind.RegisterKind(), Space: e.Space}
			tracker := buckets[key]
			if tracker == nil {
				tracker = &rangemap.ResourceRange{}
				buckets[key] = tracker
			}

			prev := tracker.Insert(info)
			if prev == nil {
				continue
			}
			prevClause, ok := elements[prev.Element].(rootsig.DescriptorTableClause)
			if !ok {
				panic(fmt.Sprintf("validate: conflicting element %d is not a clause", prev.Element))
			}
			r.Report(diag.NewError(diag.ValRegisterOverlap, loc,
				fmt.Sprintf("register range %s[%d;%d] in space %d overlaps %s[%d;%d]",
					key.Kind, lower, upper, e.Space,
					key.Kind, prev.LowerBound, prev.UpperBound)).
				WithNote(diag.Loc{Path: path, Element: prev.Element},
					fmt.Sprintf("%s at %s bound here", prevClause.Kind, prevClause.Reg)))

		case rootsig.DescriptorTable:
			// Tables carry no registers of their own.

		default:
			panic(fmt.Sprintf("validate: unhandled root element %T", element))
		}
	}
}
