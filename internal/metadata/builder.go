// Package metadata converts the flat root-element stream into a nested
// serialized tree. A table element reclaims exactly the clause nodes built
// immediately before it, so the conversion is a single pass over the stream
// with an explicit node stack: push-clause, pop-k-and-push-table.
package metadata

import (
	"fmt"

	"rootsig/internal/rootsig"
)

// Store is the capability set the builder needs from a serialization
// backend. N is the backend's node handle; the builder never inspects it.
type Store[N any] interface {
	MakeString(text string) N
	MakeInt(value uint32) N
	MakeAggregate(children ...N) N
}

// ClauseUnderflowError reports a table whose clause count exceeds the nodes
// built so far: the parser contract (owned clauses immediately precede
// their table) was broken. The build is aborted.
type ClauseUnderflowError struct {
	Element    int
	NumClauses uint32
	StackDepth int
}

func (e *ClauseUnderflowError) Error() string {
	return fmt.Sprintf("element %d: table claims %d clauses but only %d nodes precede it",
		e.Element, e.NumClauses, e.StackDepth)
}

// Builder accumulates serialized nodes for one root signature. The stack
// starts empty and is fully drained into the returned root; a Builder must
// not be shared across concurrent builds.
type Builder[N any] struct {
	store Store[N]
	stack []N
}

func NewBuilder[N any](store Store[N]) *Builder[N] {
	return &Builder[N]{store: store}
}

// BuildRootSignature walks the stream once, in order, and returns the root
// node aggregating all top-level nodes bottom-to-top. Unowned clauses stay
// at top level, interleaved with their sibling tables.
func (b *Builder[N]) BuildRootSignature(elements []rootsig.RootElement) (N, error) {
	for i, element := range elements {
		switch e := element.(type) {
		case rootsig.DescriptorTableClause:
			b.stack = append(b.stack, b.buildClause(e))
		case rootsig.DescriptorTable:
			node, err := b.buildTable(i, e)
			if err != nil {
				var zero N
				b.stack = nil
				return zero, err
			}
			b.stack = append(b.stack, node)
		default:
			panic(fmt.Sprintf("metadata: unhandled root element %T", element))
		}
	}
	root := b.store.MakeAggregate(b.stack...)
	b.stack = nil
	return root, nil
}

// buildClause encodes a clause as [kind, numDescriptors, register, space,
// offset, flags]. The append sentinel is encoded by value; the decoder on
// the other side shares the constant.
func (b *Builder[N]) buildClause(c rootsig.DescriptorTableClause) N {
	return b.store.MakeAggregate(
		b.store.MakeString(c.Kind.String()),
		b.store.MakeInt(c.NumDescriptors),
		b.store.MakeInt(c.Reg.Number),
		b.store.MakeInt(c.Space),
		b.store.MakeInt(c.Offset),
		b.store.MakeInt(uint32(c.Flags)),
	)
}

// buildTable pops the table's owned clause nodes, preserving their order,
// and wraps them as ["DescriptorTable", visibility, clauses...].
func (b *Builder[N]) buildTable(element int, t rootsig.DescriptorTable) (N, error) {
	k := int(t.NumClauses)
	if k > len(b.stack) {
		var zero N
		return zero, &ClauseUnderflowError{
			Element:    element,
			NumClauses: t.NumClauses,
			StackDepth: len(b.stack),
		}
	}
	children := make([]N, 0, k+2)
	children = append(children,
		b.store.MakeString("DescriptorTable"),
		b.store.MakeInt(uint32(t.Visibility)))
	children = append(children, b.stack[len(b.stack)-k:]...)
	b.stack = b.stack[:len(b.stack)-k]
	return b.store.MakeAggregate(children...), nil
}
