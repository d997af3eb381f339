package metadata

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackStore encodes nodes eagerly to msgpack. A node handle is its
// finished encoding; aggregates are msgpack arrays whose elements are the
// already-encoded children, so the root node is a complete document.
type MsgpackStore struct{}

func (MsgpackStore) MakeString(text string) []byte {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeString(text); err != nil {
		panic(fmt.Errorf("metadata: encode string: %w", err))
	}
	return buf.Bytes()
}

func (MsgpackStore) MakeInt(value uint32) []byte {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeUint32(value); err != nil {
		panic(fmt.Errorf("metadata: encode int: %w", err))
	}
	return buf.Bytes()
}

func (MsgpackStore) MakeAggregate(children ...[]byte) []byte {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeArrayLen(len(children)); err != nil {
		panic(fmt.Errorf("metadata: encode array header: %w", err))
	}
	for _, child := range children {
		buf.Write(child)
	}
	return buf.Bytes()
}
