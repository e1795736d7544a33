package data

import (
	"bytes"

	. "gopkg.in/check.v1"
)

type ValueSuite struct{}

var _ = Suite(&ValueSuite{})

func mustField(c *C, name string) *Field {
	f, err := FieldByName(name)
	c.Assert(err, IsNil)
	return f
}

// Every variant must survive a serialize/deserialize round trip with
// its payload and field identity intact.
func (s *ValueSuite) TestRoundTrip(c *C) {
	issuer, err := NewAccount(gateway)
	c.Assert(err, IsNil)
	usd, err := NewCurrency("USD")
	c.Assert(err, IsNil)
	amount, err := NewIssuedAmount(usd, *issuer, 123450000000000000, -16)
	c.Assert(err, IsNil)
	amount.SetFName(mustField(c, "Amount"))

	values := []SerializedType{
		NewUInt8Value(mustField(c, "TransactionResult"), 0x2A),
		NewUInt16Value(mustField(c, "TransactionType"), 0x0102),
		NewUInt32Value(mustField(c, "Sequence"), 0x01020304),
		NewUInt64Value(mustField(c, "BaseFee"), 0x0102030405060708),
		NewHash128Value(mustField(c, "EmailHash"), Hash128{1, 2, 3}),
		NewHash160Value(mustField(c, "TakerPaysCurrency"), Hash160{4, 5, 6}),
		NewHash256Value(mustField(c, "LedgerHash"), Hash256{7, 8, 9}),
		NewBlobValue(mustField(c, "Domain"), bytes.Repeat([]byte{0xAB}, 200)),
		NewAccountValue(mustField(c, "Destination"), *issuer),
		amount,
		NewVector256Value(mustField(c, "Hashes"), []Hash256{{1}, {2}, {3}}),
		NewPathSet(mustField(c, "Paths"), []Path{{{Account: *issuer}}}),
	}
	for _, v := range values {
		out := NewSerializer()
		c.Assert(Serialize(out, v), IsNil)
		it := NewSerializerIterator(out.Raw())
		read, err := ReadValue(it)
		c.Assert(err, IsNil, Commentf("field %s", v.FName().Name))
		c.Assert(it.Empty(), Equals, true, Commentf("field %s", v.FName().Name))
		c.Assert(read.SType(), Equals, v.SType())
		c.Assert(read.FName(), Equals, v.FName())
		c.Assert(read.Equivalent(v), Equals, true, Commentf("field %s", v.FName().Name))
	}
}

func (s *ValueSuite) TestCloneKeepsFieldIdentity(c *C) {
	v := NewUInt32Value(mustField(c, "Sequence"), 7)
	clone := v.Clone()
	c.Assert(clone.FName(), Equals, v.FName())
	c.Assert(clone.Equivalent(v), Equals, true)

	// Mutating the clone leaves the original untouched.
	clone.(*UInt32Value).Value = 8
	c.Assert(clone.Equivalent(v), Equals, false)
	c.Assert(v.Value, Equals, uint32(7))
}

func (s *ValueSuite) TestDefaults(c *C) {
	seq := mustField(c, "Sequence")
	c.Assert(NewUInt32Value(seq, 0).IsDefault(), Equals, true)
	c.Assert(NewUInt32Value(seq, 1).IsDefault(), Equals, false)
	c.Assert(NewBlobValue(mustField(c, "Domain"), nil).IsDefault(), Equals, true)
	c.Assert(NewHash256Value(mustField(c, "LedgerHash"), Hash256{}).IsDefault(), Equals, true)
	c.Assert(NewVector256Value(mustField(c, "Hashes"), nil).IsDefault(), Equals, true)
	c.Assert(NewPathSet(mustField(c, "Paths"), nil).IsDefault(), Equals, true)
	c.Assert(NewNotPresent(seq).IsDefault(), Equals, true)
	c.Assert(amountCheck("0").IsDefault(), Equals, true)
	c.Assert(amountCheck("1/USD/"+gateway).IsDefault(), Equals, false)
}

func (s *ValueSuite) TestNotPresent(c *C) {
	np := NewNotPresent(mustField(c, "Sequence"))
	out := NewSerializer()
	c.Assert(np.Serialize(out), IsNil)
	c.Assert(out.Len(), Equals, 0)
	c.Assert(np.Equivalent(NewNotPresent(mustField(c, "Flags"))), Equals, true)
	c.Assert(np.Equivalent(NewUInt32Value(mustField(c, "Sequence"), 0)), Equals, false)
}

func (s *ValueSuite) TestEquivalence(c *C) {
	seq := mustField(c, "Sequence")
	flags := mustField(c, "Flags")
	// Equivalence is payload equality; the field does not participate.
	c.Assert(NewUInt32Value(seq, 7).Equivalent(NewUInt32Value(flags, 7)), Equals, true)
	// Same payload under a different variant is not equivalent.
	c.Assert(NewUInt32Value(seq, 0).Equivalent(NewUInt8Value(mustField(c, "Method"), 0)), Equals, false)
}

func (s *ValueSuite) TestJSONForms(c *C) {
	c.Assert(NewUInt32Value(mustField(c, "Sequence"), 7).JSON(), Equals, uint32(7))
	// 64-bit values past 2^32 degrade to strings.
	c.Assert(NewUInt64Value(mustField(c, "BaseFee"), 7).JSON(), Equals, uint64(7))
	c.Assert(NewUInt64Value(mustField(c, "BaseFee"), 5000000000).JSON(), Equals, "5000000000")
	c.Assert(amountCheck("42").JSON(), Equals, "42")
	issued := amountCheck("1/USD/" + gateway).JSON().(map[string]string)
	c.Assert(issued["currency"], Equals, "USD")
	c.Assert(issued["value"], Equals, "1000000000000000e-15")
	c.Assert(issued["issuer"], Equals, gateway)
}

func (s *ValueSuite) TestVector256(c *C) {
	v := NewVector256Value(mustField(c, "Hashes"), []Hash256{{3}, {1}, {2}})
	c.Assert(v.Has(Hash256{1}), Equals, true)
	c.Assert(v.Has(Hash256{9}), Equals, false)
	v.Sort()
	c.Assert(v.Values[0], Equals, Hash256{1})
	c.Assert(v.Values[2], Equals, Hash256{3})
}
