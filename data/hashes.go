package data

import (
	"sort"
)

type Hash128Value struct {
	fname
	Value Hash128
}

type Hash160Value struct {
	fname
	Value Hash160
}

type Hash256Value struct {
	fname
	Value Hash256
}

// Vector256Value is an ordered sequence of 256-bit hashes. It owns its
// backing slice.
type Vector256Value struct {
	fname
	Values []Hash256
}

func NewHash128Value(f *Field, v Hash128) *Hash128Value {
	return &Hash128Value{fname{f}, v}
}

func NewHash160Value(f *Field, v Hash160) *Hash160Value {
	return &Hash160Value{fname{f}, v}
}

func NewHash256Value(f *Field, v Hash256) *Hash256Value {
	return &Hash256Value{fname{f}, v}
}

func NewVector256Value(f *Field, values []Hash256) *Vector256Value {
	return &Vector256Value{fname{f}, values}
}

func (v *Hash128Value) SType() TypeID {
	return ST_HASH128
}

func (v *Hash128Value) Clone() SerializedType {
	clone := *v
	return &clone
}

func (v *Hash128Value) Serialize(s *Serializer) error {
	s.Add128(v.Value)
	return nil
}

func (v *Hash128Value) Equivalent(other SerializedType) bool {
	o, ok := other.(*Hash128Value)
	return ok && o.Value == v.Value
}

func (v *Hash128Value) IsDefault() bool {
	return v.Value.IsZero()
}

func (v *Hash128Value) Text() string {
	return v.Value.String()
}

func (v *Hash128Value) JSON() interface{} {
	return v.Value.String()
}

func deserializeHash128(it *SerializerIterator, f *Field) (*Hash128Value, error) {
	h, err := it.Read128()
	if err != nil {
		return nil, err
	}
	return NewHash128Value(f, h), nil
}

func (v *Hash160Value) SType() TypeID {
	return ST_HASH160
}

func (v *Hash160Value) Clone() SerializedType {
	clone := *v
	return &clone
}

func (v *Hash160Value) Serialize(s *Serializer) error {
	s.Add160(v.Value)
	return nil
}

func (v *Hash160Value) Equivalent(other SerializedType) bool {
	o, ok := other.(*Hash160Value)
	return ok && o.Value == v.Value
}

func (v *Hash160Value) IsDefault() bool {
	return v.Value.IsZero()
}

func (v *Hash160Value) Text() string {
	return v.Value.String()
}

func (v *Hash160Value) JSON() interface{} {
	return v.Value.String()
}

func deserializeHash160(it *SerializerIterator, f *Field) (*Hash160Value, error) {
	h, err := it.Read160()
	if err != nil {
		return nil, err
	}
	return NewHash160Value(f, h), nil
}

func (v *Hash256Value) SType() TypeID {
	return ST_HASH256
}

func (v *Hash256Value) Clone() SerializedType {
	clone := *v
	return &clone
}

func (v *Hash256Value) Serialize(s *Serializer) error {
	s.Add256(v.Value)
	return nil
}

func (v *Hash256Value) Equivalent(other SerializedType) bool {
	o, ok := other.(*Hash256Value)
	return ok && o.Value == v.Value
}

func (v *Hash256Value) IsDefault() bool {
	return v.Value.IsZero()
}

func (v *Hash256Value) Text() string {
	return v.Value.String()
}

func (v *Hash256Value) JSON() interface{} {
	return v.Value.String()
}

func deserializeHash256(it *SerializerIterator, f *Field) (*Hash256Value, error) {
	h, err := it.Read256()
	if err != nil {
		return nil, err
	}
	return NewHash256Value(f, h), nil
}

func (v *Vector256Value) SType() TypeID {
	return ST_VECTOR256
}

func (v *Vector256Value) Clone() SerializedType {
	values := make([]Hash256, len(v.Values))
	copy(values, v.Values)
	return &Vector256Value{v.fname, values}
}

func (v *Vector256Value) Serialize(s *Serializer) error {
	b := make([]byte, 0, len(v.Values)*32)
	for _, h := range v.Values {
		b = append(b, h[:]...)
	}
	return s.AddVL(b)
}

func (v *Vector256Value) Equivalent(other SerializedType) bool {
	o, ok := other.(*Vector256Value)
	if !ok || len(o.Values) != len(v.Values) {
		return false
	}
	for i := range v.Values {
		if v.Values[i] != o.Values[i] {
			return false
		}
	}
	return true
}

func (v *Vector256Value) IsDefault() bool {
	return len(v.Values) == 0
}

func (v *Vector256Value) Text() string {
	var s string
	for i, h := range v.Values {
		if i > 0 {
			s += ","
		}
		s += h.String()
	}
	return s
}

func (v *Vector256Value) JSON() interface{} {
	out := make([]string, len(v.Values))
	for i, h := range v.Values {
		out[i] = h.String()
	}
	return out
}

// Has reports whether h is an element of the vector.
func (v *Vector256Value) Has(h Hash256) bool {
	for _, e := range v.Values {
		if e == h {
			return true
		}
	}
	return false
}

func (v *Vector256Value) Sort() {
	sort.Slice(v.Values, func(i, j int) bool {
		for k := range v.Values[i] {
			if v.Values[i][k] != v.Values[j][k] {
				return v.Values[i][k] < v.Values[j][k]
			}
		}
		return false
	})
}

func deserializeVector256(it *SerializerIterator, f *Field) (*Vector256Value, error) {
	b, err := it.ReadVL()
	if err != nil {
		return nil, err
	}
	if len(b)%32 != 0 {
		return nil, ErrTruncatedInput
	}
	values := make([]Hash256, len(b)/32)
	for i := range values {
		copy(values[i][:], b[i*32:])
	}
	return NewVector256Value(f, values), nil
}
