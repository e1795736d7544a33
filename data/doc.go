/*
Package data provides the typed values that make up every record
exchanged on the payment network, together with the canonical binary
form they serialize to and the decimal arithmetic of currency amounts.

Fields

Every value on the wire belongs to a field: a (type, value) pair with a
process-wide name. The registry of known fields is built once at start
up and is immutable afterwards, so field identities may be shared
freely across goroutines and compared by pointer. The pair also defines
the canonical order in which records serialize their fields.

Serialization

A Serializer is an append-only buffer of big-endian primitives with
three framing devices: a one to three byte self-describing length
prefix for variable-length payloads, a one to three byte field tag, and
the in-band markers of path sets. A SerializerIterator reads the same
primitives back positionally and fails with ErrTruncatedInput on
underrun. For any value v, DeserializeValue over the output of
Serialize reconstructs a value equivalent to v.

Amounts

An Amount is either native, an integer quantity of the intrinsic
currency bounded by 9e18, or issued, a signed decimal float whose
canonical nonzero mantissa lies in [1e15, 1e16-1] with exponent in
[-96, 80]. Arithmetic re-canonicalizes after every operation; the
rounded variants let callers choose which side of the trade absorbs the
precision loss. Offer crossing and rate derivation build on that.

The issuer of an issued amount is a provenance tag only. It travels
with the amount on the wire, but two amounts differing only by issuer
are numerically equal.
*/
package data
