package data

import (
	"fmt"
)

// SerializedType is the closed set of typed values carried by fields on
// the wire. Every variant owns its payload and references, but never
// owns, its field identity.
type SerializedType interface {
	SType() TypeID
	FName() *Field
	SetFName(*Field)
	Clone() SerializedType
	Serialize(*Serializer) error
	Equivalent(SerializedType) bool
	IsDefault() bool
	Text() string
	JSON() interface{}
}

// fname is embedded by every variant so that ordinary value copies
// preserve the field identity alongside the payload.
type fname struct {
	field *Field
}

func (f fname) FName() *Field {
	if f.field == nil {
		return genericField
	}
	return f.field
}

func (f *fname) SetFName(fld *Field) {
	f.field = fld
}

// AddFieldID appends the wire tag of a value's field.
func AddFieldID(s *Serializer, st SerializedType) {
	id := st.FName().ID
	s.AddFieldID(id.Type, id.Value)
}

// Serialize appends a value's field tag followed by its payload.
func Serialize(s *Serializer, st SerializedType) error {
	AddFieldID(s, st)
	return st.Serialize(s)
}

// NotPresent marks a field as explicitly absent. It serializes to
// nothing.
type NotPresent struct {
	fname
}

func NewNotPresent(f *Field) *NotPresent {
	return &NotPresent{fname{f}}
}

func (n *NotPresent) SType() TypeID {
	return ST_NOTPRESENT
}

func (n *NotPresent) Clone() SerializedType {
	clone := *n
	return &clone
}

func (n *NotPresent) Serialize(s *Serializer) error {
	return nil
}

func (n *NotPresent) Equivalent(other SerializedType) bool {
	return other.SType() == ST_NOTPRESENT
}

func (n *NotPresent) IsDefault() bool {
	return true
}

func (n *NotPresent) Text() string {
	return ""
}

func (n *NotPresent) JSON() interface{} {
	return nil
}

// DeserializeValue reconstructs the typed value of f from the iterator,
// dispatching on the field's type.
func DeserializeValue(it *SerializerIterator, f *Field) (SerializedType, error) {
	switch f.ID.Type {
	case ST_UINT8:
		return deserializeUInt8(it, f)
	case ST_UINT16:
		return deserializeUInt16(it, f)
	case ST_UINT32:
		return deserializeUInt32(it, f)
	case ST_UINT64:
		return deserializeUInt64(it, f)
	case ST_HASH128:
		return deserializeHash128(it, f)
	case ST_HASH160:
		return deserializeHash160(it, f)
	case ST_HASH256:
		return deserializeHash256(it, f)
	case ST_VL:
		return deserializeBlob(it, f)
	case ST_ACCOUNT:
		return deserializeAccountID(it, f)
	case ST_AMOUNT:
		return deserializeAmount(it, f)
	case ST_VECTOR256:
		return deserializeVector256(it, f)
	case ST_PATHSET:
		return deserializePathSet(it, f)
	case ST_NOTPRESENT:
		return NewNotPresent(f), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, f.ID.Type)
	}
}

// ReadValue reads a field tag and then the tagged value.
func ReadValue(it *SerializerIterator) (SerializedType, error) {
	f, err := it.ReadFieldID()
	if err != nil {
		return nil, err
	}
	return DeserializeValue(it, f)
}

// FullText renders a value as "FieldName = value".
func FullText(st SerializedType) string {
	return fmt.Sprintf("%s = %s", st.FName().Name, st.Text())
}

// JSONObject renders values as one object keyed by field name.
// Explicitly absent fields are omitted.
func JSONObject(values ...SerializedType) map[string]interface{} {
	out := make(map[string]interface{}, len(values))
	for _, v := range values {
		if v.SType() == ST_NOTPRESENT {
			continue
		}
		out[v.FName().Name] = v.JSON()
	}
	return out
}
