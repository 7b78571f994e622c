package slist

import (
	"encoding/json"

	"github.com/tychoish/slist/ers"
	"github.com/tychoish/slist/internal"
	"github.com/tychoish/slist/irt"
)

// MarshalJSON produces a JSON array representing the values in the
// list. By supporting json.Marshaler and json.Unmarshaler, lists can
// behave as arrays in larger json objects, and can be as the
// output/input of json.Marshal and json.Unmarshal.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	buf := &internal.ArrayBuffer{}
	enc := json.NewEncoder(buf)

	for n := l.Front(); n != nil; n = n.next {
		if err := enc.Encode(n.value); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON array and appends its values to the end
// of the list. Values already in the list are not removed. If the
// input cannot be decoded, the list is not modified and the error is
// an ErrMalformedInput.
func (l *List[T]) UnmarshalJSON(in []byte) error {
	var values []T
	if err := json.Unmarshal(in, &values); err != nil {
		return ers.Join(ErrMalformedInput, err)
	}

	l.Extend(irt.Slice(values))
	return nil
}
