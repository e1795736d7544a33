package data

import (
	. "gopkg.in/check.v1"
)

type OfferSuite struct{}

var _ = Suite(&OfferSuite{})

// An offer paying 100 USD for 10 EUR: the rate (in/out) is 0.1.
func (s *OfferSuite) usdForEur(c *C) (offerPays, offerGets, offerRate *Amount) {
	offerPays = amountCheck("100/USD/" + gateway)
	offerGets = amountCheck("10/EUR/" + gateway2)
	offerRate = SetRate(GetRate(offerPays, offerGets))
	c.Assert(offerRate.IsZero(), Equals, false)
	return offerPays, offerGets, offerRate
}

func (s *OfferSuite) TestFullCross(c *C) {
	offerPays, offerGets, offerRate := s.usdForEur(c)
	result, crossed, err := ApplyOffer(false,
		QualityOne, QualityOne,
		offerRate,
		amountCheck("100/USD/"+gateway), amountCheck("10/EUR/"+gateway2),
		offerPays, offerGets,
		amountCheck("10/EUR/"+gateway2), amountCheck("100/USD/"+gateway),
	)
	c.Assert(err, IsNil)
	c.Assert(crossed, Equals, true)
	c.Assert(result.TakerPaid.Equals(amountCheck("10/EUR/"+gateway2)), Equals, true)
	c.Assert(result.TakerGot.Equals(amountCheck("100/USD/"+gateway)), Equals, true)
	c.Assert(result.TakerIssuerFee.IsZero(), Equals, true)
	c.Assert(result.OfferIssuerFee.IsZero(), Equals, true)
}

func (s *OfferSuite) TestPartialTaker(c *C) {
	offerPays, offerGets, offerRate := s.usdForEur(c)
	// The taker only wants 40 USD of the 100 on offer.
	result, crossed, err := ApplyOffer(false,
		QualityOne, QualityOne,
		offerRate,
		amountCheck("100/USD/"+gateway), amountCheck("10/EUR/"+gateway2),
		offerPays, offerGets,
		amountCheck("4/EUR/"+gateway2), amountCheck("40/USD/"+gateway),
	)
	c.Assert(err, IsNil)
	c.Assert(crossed, Equals, true)
	c.Assert(result.TakerGot.Equals(amountCheck("40/USD/"+gateway)), Equals, true)
	c.Assert(result.TakerPaid.Equals(amountCheck("4/EUR/"+gateway2)), Equals, true)
}

func (s *OfferSuite) TestUnderfundedOffer(c *C) {
	offerPays, offerGets, offerRate := s.usdForEur(c)
	// The offer owner only holds 50 of the 100 USD promised.
	result, crossed, err := ApplyOffer(false,
		QualityOne, QualityOne,
		offerRate,
		amountCheck("50/USD/"+gateway), amountCheck("10/EUR/"+gateway2),
		offerPays, offerGets,
		amountCheck("10/EUR/"+gateway2), amountCheck("100/USD/"+gateway),
	)
	c.Assert(err, IsNil)
	c.Assert(crossed, Equals, true)
	c.Assert(result.TakerGot.Equals(amountCheck("50/USD/"+gateway)), Equals, true)
	c.Assert(result.TakerPaid.Equals(amountCheck("5/EUR/"+gateway2)), Equals, true)
}

func (s *OfferSuite) TestSell(c *C) {
	offerPays, offerGets, offerRate := s.usdForEur(c)
	// Sell semantics: the taker spends all 4 EUR it has, ignoring its
	// nominal gets.
	result, crossed, err := ApplyOffer(true,
		QualityOne, QualityOne,
		offerRate,
		amountCheck("100/USD/"+gateway), amountCheck("4/EUR/"+gateway2),
		offerPays, offerGets,
		amountCheck("4/EUR/"+gateway2), amountCheck("1/USD/"+gateway),
	)
	c.Assert(err, IsNil)
	c.Assert(crossed, Equals, true)
	c.Assert(result.TakerPaid.Equals(amountCheck("4/EUR/"+gateway2)), Equals, true)
	c.Assert(result.TakerGot.Equals(amountCheck("40/USD/"+gateway)), Equals, true)
}

func (s *OfferSuite) TestTakerLimitedByFunds(c *C) {
	offerPays, offerGets, offerRate := s.usdForEur(c)
	// Wants all 100 USD but can only deliver 2 EUR.
	result, crossed, err := ApplyOffer(false,
		QualityOne, QualityOne,
		offerRate,
		amountCheck("100/USD/"+gateway), amountCheck("2/EUR/"+gateway2),
		offerPays, offerGets,
		amountCheck("10/EUR/"+gateway2), amountCheck("100/USD/"+gateway),
	)
	c.Assert(err, IsNil)
	c.Assert(crossed, Equals, true)
	c.Assert(result.TakerPaid.Equals(amountCheck("2/EUR/"+gateway2)), Equals, true)
	c.Assert(result.TakerGot.Equals(amountCheck("20/USD/"+gateway)), Equals, true)
}

func (s *OfferSuite) TestTransferFee(c *C) {
	offerPays, offerGets, offerRate := s.usdForEur(c)
	// The EUR issuer charges 0.2% on transfers.
	takerPaysRate := QualityOne + 2000000
	result, crossed, err := ApplyOffer(false,
		takerPaysRate, QualityOne,
		offerRate,
		amountCheck("100/USD/"+gateway), amountCheck("10.02/EUR/"+gateway2),
		offerPays, offerGets,
		amountCheck("10/EUR/"+gateway2), amountCheck("100/USD/"+gateway),
	)
	c.Assert(err, IsNil)
	c.Assert(crossed, Equals, true)
	c.Assert(result.TakerGot.Equals(amountCheck("100/USD/"+gateway)), Equals, true)
	c.Assert(result.TakerPaid.Equals(amountCheck("10/EUR/"+gateway2)), Equals, true)
	// Fee is paid * 0.002/1.002, rounded against the taker.
	c.Assert(result.TakerIssuerFee.Equals(amountCheck("0.01996007984031937/EUR/"+gateway2)), Equals, true)
	c.Assert(result.OfferIssuerFee.IsZero(), Equals, true)
}

func (s *OfferSuite) TestDustReturnsFalse(c *C) {
	offerGets := amountCheck("10/EUR/" + gateway2)
	offerPays := amountCheck("100") // native
	offerRate := SetRate(GetRate(offerPays, offerGets))
	// The taker's speck of EUR converts to less than one native unit.
	_, crossed, err := ApplyOffer(true,
		QualityOne, QualityOne,
		offerRate,
		amountCheck("100"), amountCheck("0.000000000000001/EUR/"+gateway2),
		offerPays, offerGets,
		amountCheck("10/EUR/"+gateway2), amountCheck("100"),
	)
	c.Assert(err, IsNil)
	c.Assert(crossed, Equals, false)
}

func (s *OfferSuite) TestMismatchedLegs(c *C) {
	offerPays, offerGets, offerRate := s.usdForEur(c)
	_, _, err := ApplyOffer(false,
		QualityOne, QualityOne,
		offerRate,
		amountCheck("100/USD/"+gateway), amountCheck("10/EUR/"+gateway2),
		offerPays, offerGets,
		amountCheck("10/USD/"+gateway), amountCheck("100/USD/"+gateway),
	)
	c.Assert(err, ErrorMatches, "amounts are not comparable.*")
}
