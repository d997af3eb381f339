package metadata

import (
	"fmt"
	"io"
	"strings"
)

// NodeKind discriminates TreeNode payloads.
type NodeKind uint8

const (
	NodeString NodeKind = iota
	NodeInt
	NodeAggregate
)

// TreeNode is the in-memory node of TreeStore. Exactly one payload field is
// meaningful, selected by Kind.
type TreeNode struct {
	Kind     NodeKind
	Text     string
	Value    uint32
	Children []*TreeNode
}

// TreeStore materializes the serialized tree in memory. Used by tests and
// by the text output of the encode command.
type TreeStore struct{}

func (TreeStore) MakeString(text string) *TreeNode {
	return &TreeNode{Kind: NodeString, Text: text}
}

func (TreeStore) MakeInt(value uint32) *TreeNode {
	return &TreeNode{Kind: NodeInt, Value: value}
}

func (TreeStore) MakeAggregate(children ...*TreeNode) *TreeNode {
	return &TreeNode{Kind: NodeAggregate, Children: children}
}

// WriteText renders the tree with two-space indentation, one node per line.
func (n *TreeNode) WriteText(w io.Writer) {
	n.writeText(w, 0)
}

func (n *TreeNode) writeText(w io.Writer, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case NodeString:
		fmt.Fprintf(w, "%s%q\n", indent, n.Text)
	case NodeInt:
		fmt.Fprintf(w, "%s%d\n", indent, n.Value)
	case NodeAggregate:
		fmt.Fprintf(w, "%snode(%d)\n", indent, len(n.Children))
		for _, child := range n.Children {
			child.writeText(w, depth+1)
		}
	default:
		panic(fmt.Sprintf("metadata: unhandled tree node kind %d", n.Kind))
	}
}
