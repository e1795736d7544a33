package data

import (
	"bytes"

	. "gopkg.in/check.v1"

	. "github.com/crosspay/ledgercodec/internal/testutil"
)

type SerializerSuite struct{}

var _ = Suite(&SerializerSuite{})

func hexOf(build func(s *Serializer)) string {
	s := NewSerializer()
	build(s)
	return string(b2h(s.Raw()))
}

func vlPrefix(n int) string {
	s := NewSerializer()
	if err := s.AddVL(make([]byte, n)); err != nil {
		panic(err)
	}
	return string(b2h(s.Raw()[:s.Len()-n]))
}

var serializerTests = TestSlice{
	{hexOf(func(s *Serializer) { s.Add8(0xAB) }), Equals, "AB", "Add8"},
	{hexOf(func(s *Serializer) { s.Add16(0x1234) }), Equals, "1234", "Add16"},
	{hexOf(func(s *Serializer) { s.Add32(0x12345678) }), Equals, "12345678", "Add32"},
	{hexOf(func(s *Serializer) { s.Add64(0x123456789ABCDEF0) }), Equals, "123456789ABCDEF0", "Add64"},
	{hexOf(func(s *Serializer) { s.Add128(Hash128{0x01, 0x02}) }), Equals, "01020000000000000000000000000000", "Add128"},

	// Field tags: one byte when both nibbles fit, wide forms otherwise.
	{hexOf(func(s *Serializer) { s.AddFieldID(2, 2) }), Equals, "22", "Narrow field id"},
	{hexOf(func(s *Serializer) { s.AddFieldID(2, 16) }), Equals, "2010", "Wide field value"},
	{hexOf(func(s *Serializer) { s.AddFieldID(17, 4) }), Equals, "0411", "Wide field type"},
	{hexOf(func(s *Serializer) { s.AddFieldID(17, 22) }), Equals, "001116", "Wide field type and value"},

	// The two byte range starts at 193, the three byte range at 12481.
	{vlPrefix(0), Equals, "00", "VL empty"},
	{vlPrefix(192), Equals, "C0", "VL 192"},
	{vlPrefix(193), Equals, "C100", "VL 193"},
	{vlPrefix(200), Equals, "C107", "VL 200"},
	{vlPrefix(12480), Equals, "F0FF", "VL 12480"},
	{vlPrefix(12481), Equals, "F10000", "VL 12481"},
	{vlPrefix(918744), Equals, "FED417", "VL 918744"},
	{ErrorCheck(nil, NewSerializer().AddVL(make([]byte, 918745))), ErrorMatches, "unsupported variable length encoding.*", "VL too long"},
}

func (s *SerializerSuite) TestSerializer(c *C) {
	serializerTests.Test(c)
}

func (s *SerializerSuite) TestGoldenU32(c *C) {
	flags, err := LookupField(ST_UINT32, 2)
	c.Assert(err, IsNil)
	out := NewSerializer()
	c.Assert(Serialize(out, NewUInt32Value(flags, 0x12345678)), IsNil)
	c.Assert(string(b2h(out.Raw())), Equals, "2212345678")
}

func (s *SerializerSuite) TestIterator(c *C) {
	out := NewSerializer()
	out.Add8(0x01)
	out.Add16(0x0203)
	out.Add32(0x04050607)
	out.Add64(0x08090A0B0C0D0E0F)
	c.Assert(out.AddVL([]byte("hello")), IsNil)

	it := NewSerializerIterator(out.Raw())
	u8, err := it.Read8()
	c.Assert(err, IsNil)
	c.Assert(u8, Equals, uint8(0x01))
	u16, err := it.Read16()
	c.Assert(err, IsNil)
	c.Assert(u16, Equals, uint16(0x0203))
	u32, err := it.Read32()
	c.Assert(err, IsNil)
	c.Assert(u32, Equals, uint32(0x04050607))
	u64, err := it.Read64()
	c.Assert(err, IsNil)
	c.Assert(u64, Equals, uint64(0x08090A0B0C0D0E0F))
	vl, err := it.ReadVL()
	c.Assert(err, IsNil)
	c.Assert(bytes.Equal(vl, []byte("hello")), Equals, true)
	c.Assert(it.Empty(), Equals, true)

	_, err = it.Read8()
	c.Assert(err, ErrorMatches, "truncated input.*")
}

func (s *SerializerSuite) TestVariableLengthRoundTrip(c *C) {
	for _, length := range []int{0, 1, 192, 193, 200, 12480, 12481, 20000} {
		payload := bytes.Repeat([]byte{0x5A}, length)
		out := NewSerializer()
		c.Assert(out.AddVL(payload), IsNil)
		it := NewSerializerIterator(out.Raw())
		read, err := it.ReadVL()
		c.Assert(err, IsNil)
		c.Assert(bytes.Equal(read, payload), Equals, true, Commentf("length %d", length))
		c.Assert(it.Empty(), Equals, true)
	}
}

func (s *SerializerSuite) TestFieldIDRoundTrip(c *C) {
	for _, f := range Fields() {
		out := NewSerializer()
		out.AddFieldID(f.ID.Type, f.ID.Value)
		it := NewSerializerIterator(out.Raw())
		read, err := it.ReadFieldID()
		c.Assert(err, IsNil)
		c.Assert(read, Equals, f, Commentf("field %s", f.Name))
	}
}

func (s *SerializerSuite) TestUnknownField(c *C) {
	it := NewSerializerIterator([]byte{0x2F}) // type 2, value 15: unregistered
	_, err := it.ReadFieldID()
	c.Assert(err, ErrorMatches, "unknown field.*")
}

func (s *SerializerSuite) TestFieldRegistry(c *C) {
	flags, err := FieldByName("Flags")
	c.Assert(err, IsNil)
	c.Assert(flags.ID, Equals, FieldID{ST_UINT32, 2})
	same, err := LookupField(ST_UINT32, 2)
	c.Assert(err, IsNil)
	c.Assert(same, Equals, flags) // identity, not structural equality

	_, err = FieldByName("NoSuchField")
	c.Assert(err, ErrorMatches, "unknown field.*")

	all := Fields()
	for i := 1; i < len(all); i++ {
		c.Assert(all[i-1].ID.Priority() < all[i].ID.Priority(), Equals, true)
	}
	c.Assert(GenericField().Name, Equals, "Generic")
}
