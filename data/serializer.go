package data

import (
	"encoding/binary"
	"fmt"
)

const maxVariableLength = 918744

// Serializer is an append-only buffer producing the canonical wire form.
// All multi-byte integers are big-endian.
type Serializer struct {
	buf []byte
}

func NewSerializer() *Serializer {
	return &Serializer{}
}

func (s *Serializer) Add8(v uint8) {
	s.buf = append(s.buf, v)
}

func (s *Serializer) Add16(v uint16) {
	s.buf = append(s.buf, byte(v>>8), byte(v))
}

func (s *Serializer) Add32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	s.buf = append(s.buf, b[:]...)
}

func (s *Serializer) Add64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	s.buf = append(s.buf, b[:]...)
}

func (s *Serializer) Add128(v Hash128) {
	s.buf = append(s.buf, v[:]...)
}

func (s *Serializer) Add160(v Hash160) {
	s.buf = append(s.buf, v[:]...)
}

func (s *Serializer) Add256(v Hash256) {
	s.buf = append(s.buf, v[:]...)
}

// AddVL appends a length prefix followed by b. The prefix is one, two or
// three bytes depending on the length; lengths above 918744 cannot be
// encoded.
func (s *Serializer) AddVL(b []byte) error {
	n := len(b)
	switch {
	case n <= 192:
		s.buf = append(s.buf, uint8(n))
	case n <= 12480:
		n -= 193
		s.buf = append(s.buf, 193+uint8(n>>8), uint8(n))
	case n <= maxVariableLength:
		n -= 12481
		s.buf = append(s.buf, 241+uint8(n>>16), uint8(n>>8), uint8(n))
	default:
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	s.buf = append(s.buf, b...)
	return nil
}

// AddFieldID appends the one to three byte wire tag for (typ, value).
func (s *Serializer) AddFieldID(typ TypeID, value uint16) {
	t, f := uint16(typ), value
	switch {
	case t < 16 && f < 16:
		s.buf = append(s.buf, uint8(t<<4|f))
	case t < 16:
		s.buf = append(s.buf, uint8(t<<4), uint8(f))
	case f < 16:
		s.buf = append(s.buf, uint8(f), uint8(t))
	default:
		s.buf = append(s.buf, 0, uint8(t), uint8(f))
	}
}

// Raw returns the accumulated bytes. The slice is owned by the
// serializer and only valid until the next append.
func (s *Serializer) Raw() []byte {
	return s.buf
}

func (s *Serializer) Len() int {
	return len(s.buf)
}

func (s *Serializer) Reset() {
	s.buf = s.buf[:0]
}

// SerializerIterator reads the primitives written by Serializer,
// advancing a position through a borrowed buffer.
type SerializerIterator struct {
	buf []byte
	pos int
}

func NewSerializerIterator(b []byte) *SerializerIterator {
	return &SerializerIterator{buf: b}
}

func (it *SerializerIterator) Remaining() int {
	return len(it.buf) - it.pos
}

func (it *SerializerIterator) Empty() bool {
	return it.Remaining() == 0
}

func (it *SerializerIterator) take(n int) ([]byte, error) {
	if it.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedInput, n, it.Remaining())
	}
	b := it.buf[it.pos : it.pos+n]
	it.pos += n
	return b, nil
}

func (it *SerializerIterator) Read8() (uint8, error) {
	b, err := it.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (it *SerializerIterator) Read16() (uint16, error) {
	b, err := it.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (it *SerializerIterator) Read32() (uint32, error) {
	b, err := it.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (it *SerializerIterator) Read64() (uint64, error) {
	b, err := it.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (it *SerializerIterator) Read128() (Hash128, error) {
	var h Hash128
	b, err := it.take(16)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

func (it *SerializerIterator) Read160() (Hash160, error) {
	var h Hash160
	b, err := it.take(20)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

func (it *SerializerIterator) Read256() (Hash256, error) {
	var h Hash256
	b, err := it.take(32)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

func (it *SerializerIterator) readVariableLength() (int, error) {
	first, err := it.Read8()
	if err != nil {
		return 0, err
	}
	switch {
	case first <= 192:
		return int(first), nil
	case first <= 240:
		second, err := it.Read8()
		if err != nil {
			return 0, err
		}
		return 193 + int(first-193)*256 + int(second), nil
	case first <= 254:
		second, err := it.Read8()
		if err != nil {
			return 0, err
		}
		third, err := it.Read8()
		if err != nil {
			return 0, err
		}
		return 12481 + int(first-241)*65536 + int(second)*256 + int(third), nil
	}
	return 0, ErrInvalidLength
}

// ReadVL reads a length prefix and that many bytes. The returned slice
// is a copy.
func (it *SerializerIterator) ReadVL() ([]byte, error) {
	length, err := it.readVariableLength()
	if err != nil {
		return nil, err
	}
	b, err := it.take(length)
	if err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, b)
	return out, nil
}

// ReadFieldID reads a field tag and resolves it against the registry.
func (it *SerializerIterator) ReadFieldID() (*Field, error) {
	first, err := it.Read8()
	if err != nil {
		return nil, err
	}
	typ := uint16(first >> 4)
	value := uint16(first & 0xF)
	if typ == 0 {
		wide, err := it.Read8()
		if err != nil {
			return nil, err
		}
		typ = uint16(wide)
	}
	if value == 0 {
		wide, err := it.Read8()
		if err != nil {
			return nil, err
		}
		value = uint16(wide)
	}
	return LookupField(TypeID(typ), value)
}
