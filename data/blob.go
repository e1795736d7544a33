package data

import (
	"bytes"
	"fmt"

	"github.com/crosspay/ledgercodec/params"
)

// BlobValue is an arbitrary byte string, length-prefixed on the wire.
type BlobValue struct {
	fname
	Value VariableLength
}

// AccountValue is a 20-byte account identifier, carried on the wire as
// a length-prefixed byte string.
type AccountValue struct {
	fname
	Value Account
}

func NewBlobValue(f *Field, v []byte) *BlobValue {
	return &BlobValue{fname{f}, v}
}

func NewAccountValue(f *Field, v Account) *AccountValue {
	return &AccountValue{fname{f}, v}
}

func (v *BlobValue) SType() TypeID {
	return ST_VL
}

func (v *BlobValue) Clone() SerializedType {
	value := make(VariableLength, len(v.Value))
	copy(value, v.Value)
	return &BlobValue{v.fname, value}
}

func (v *BlobValue) Serialize(s *Serializer) error {
	return s.AddVL(v.Value)
}

func (v *BlobValue) Equivalent(other SerializedType) bool {
	o, ok := other.(*BlobValue)
	return ok && bytes.Equal(o.Value, v.Value)
}

func (v *BlobValue) IsDefault() bool {
	return len(v.Value) == 0
}

func (v *BlobValue) Text() string {
	return v.Value.String()
}

func (v *BlobValue) JSON() interface{} {
	return v.Value.String()
}

func deserializeBlob(it *SerializerIterator, f *Field) (*BlobValue, error) {
	b, err := it.ReadVL()
	if err != nil {
		return nil, err
	}
	if max := params.GetConfig().MaxVariableLength; len(b) > max {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, len(b))
	}
	return NewBlobValue(f, b), nil
}

func (v *AccountValue) SType() TypeID {
	return ST_ACCOUNT
}

func (v *AccountValue) Clone() SerializedType {
	clone := *v
	return &clone
}

func (v *AccountValue) Serialize(s *Serializer) error {
	return s.AddVL(v.Value[:])
}

func (v *AccountValue) Equivalent(other SerializedType) bool {
	o, ok := other.(*AccountValue)
	return ok && o.Value == v.Value
}

func (v *AccountValue) IsDefault() bool {
	return v.Value.IsZero()
}

func (v *AccountValue) Text() string {
	return v.Value.String()
}

func (v *AccountValue) JSON() interface{} {
	return v.Value.String()
}

func deserializeAccountID(it *SerializerIterator, f *Field) (*AccountValue, error) {
	b, err := it.ReadVL()
	if err != nil {
		return nil, err
	}
	var a Account
	switch len(b) {
	case 0:
		// absent payload leaves the zero account
	case 20:
		copy(a[:], b)
	default:
		return nil, fmt.Errorf("account: wrong length %d expected: 20", len(b))
	}
	return NewAccountValue(f, a), nil
}
