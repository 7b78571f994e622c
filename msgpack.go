package slist

import (
	"github.com/hashicorp/go-msgpack/codec"

	"github.com/tychoish/slist/ers"
	"github.com/tychoish/slist/irt"
)

// MarshalMsgpack encodes the values of the list, in order, as a
// msgpack array.
func (l *List[T]) MarshalMsgpack() ([]byte, error) {
	var encoded []byte

	enc := codec.NewEncoderBytes(&encoded, new(codec.MsgpackHandle))
	if err := enc.Encode(l.Slice()); err != nil {
		return nil, ers.Wrap(err, "encoding list")
	}

	return encoded, nil
}

// UnmarshalMsgpack decodes a msgpack array and appends its values to
// the end of the list. If the input cannot be decoded, the list is not
// modified and the error is an ErrMalformedInput.
func (l *List[T]) UnmarshalMsgpack(in []byte) error {
	var values []T

	dec := codec.NewDecoderBytes(in, new(codec.MsgpackHandle))
	if err := dec.Decode(&values); err != nil {
		return ers.Join(ErrMalformedInput, err)
	}

	l.Extend(irt.Slice(values))
	return nil
}
