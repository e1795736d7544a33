package data

import (
	"strconv"
)

type UInt8Value struct {
	fname
	Value uint8
}

type UInt16Value struct {
	fname
	Value uint16
}

type UInt32Value struct {
	fname
	Value uint32
}

type UInt64Value struct {
	fname
	Value uint64
}

func NewUInt8Value(f *Field, v uint8) *UInt8Value {
	return &UInt8Value{fname{f}, v}
}

func NewUInt16Value(f *Field, v uint16) *UInt16Value {
	return &UInt16Value{fname{f}, v}
}

func NewUInt32Value(f *Field, v uint32) *UInt32Value {
	return &UInt32Value{fname{f}, v}
}

func NewUInt64Value(f *Field, v uint64) *UInt64Value {
	return &UInt64Value{fname{f}, v}
}

func (v *UInt8Value) SType() TypeID {
	return ST_UINT8
}

func (v *UInt8Value) Clone() SerializedType {
	clone := *v
	return &clone
}

func (v *UInt8Value) Serialize(s *Serializer) error {
	s.Add8(v.Value)
	return nil
}

func (v *UInt8Value) Equivalent(other SerializedType) bool {
	o, ok := other.(*UInt8Value)
	return ok && o.Value == v.Value
}

func (v *UInt8Value) IsDefault() bool {
	return v.Value == 0
}

func (v *UInt8Value) Text() string {
	return strconv.FormatUint(uint64(v.Value), 10)
}

func (v *UInt8Value) JSON() interface{} {
	return v.Value
}

func deserializeUInt8(it *SerializerIterator, f *Field) (*UInt8Value, error) {
	u, err := it.Read8()
	if err != nil {
		return nil, err
	}
	return NewUInt8Value(f, u), nil
}

func (v *UInt16Value) SType() TypeID {
	return ST_UINT16
}

func (v *UInt16Value) Clone() SerializedType {
	clone := *v
	return &clone
}

func (v *UInt16Value) Serialize(s *Serializer) error {
	s.Add16(v.Value)
	return nil
}

func (v *UInt16Value) Equivalent(other SerializedType) bool {
	o, ok := other.(*UInt16Value)
	return ok && o.Value == v.Value
}

func (v *UInt16Value) IsDefault() bool {
	return v.Value == 0
}

func (v *UInt16Value) Text() string {
	return strconv.FormatUint(uint64(v.Value), 10)
}

func (v *UInt16Value) JSON() interface{} {
	return v.Value
}

func deserializeUInt16(it *SerializerIterator, f *Field) (*UInt16Value, error) {
	u, err := it.Read16()
	if err != nil {
		return nil, err
	}
	return NewUInt16Value(f, u), nil
}

func (v *UInt32Value) SType() TypeID {
	return ST_UINT32
}

func (v *UInt32Value) Clone() SerializedType {
	clone := *v
	return &clone
}

func (v *UInt32Value) Serialize(s *Serializer) error {
	s.Add32(v.Value)
	return nil
}

func (v *UInt32Value) Equivalent(other SerializedType) bool {
	o, ok := other.(*UInt32Value)
	return ok && o.Value == v.Value
}

func (v *UInt32Value) IsDefault() bool {
	return v.Value == 0
}

func (v *UInt32Value) Text() string {
	return strconv.FormatUint(uint64(v.Value), 10)
}

func (v *UInt32Value) JSON() interface{} {
	return v.Value
}

func deserializeUInt32(it *SerializerIterator, f *Field) (*UInt32Value, error) {
	u, err := it.Read32()
	if err != nil {
		return nil, err
	}
	return NewUInt32Value(f, u), nil
}

func (v *UInt64Value) SType() TypeID {
	return ST_UINT64
}

func (v *UInt64Value) Clone() SerializedType {
	clone := *v
	return &clone
}

func (v *UInt64Value) Serialize(s *Serializer) error {
	s.Add64(v.Value)
	return nil
}

func (v *UInt64Value) Equivalent(other SerializedType) bool {
	o, ok := other.(*UInt64Value)
	return ok && o.Value == v.Value
}

func (v *UInt64Value) IsDefault() bool {
	return v.Value == 0
}

func (v *UInt64Value) Text() string {
	return strconv.FormatUint(v.Value, 10)
}

// Values above 32 bits render as strings so that consumers without
// 64-bit integers keep full precision.
func (v *UInt64Value) JSON() interface{} {
	if v.Value > 0xFFFFFFFF {
		return strconv.FormatUint(v.Value, 10)
	}
	return v.Value
}

func deserializeUInt64(it *SerializerIterator, f *Field) (*UInt64Value, error) {
	u, err := it.Read64()
	if err != nil {
		return nil, err
	}
	return NewUInt64Value(f, u), nil
}
