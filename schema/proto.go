package schema

import "google.golang.org/protobuf/proto"

// Protobuf validates values stored as protobuf messages. Unknown fields are
// tolerated per proto semantics; `validate` tags are not consulted, since
// generated message types carry no rule tags.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *mypb.User { return &mypb.User{} })
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Validate(raw []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(raw, m)
	return m, err
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}
