package data

import (
	"fmt"
	"strings"

	"github.com/crosspay/ledgercodec/params"
)

// PathEntry is the leading type mask of a hop on the wire. The two
// reserved values frame the path set in-band.
type PathEntry uint8

const (
	PATH_BOUNDARY PathEntry = 0xFF // end of current path, another follows
	PATH_END      PathEntry = 0x00 // end of current path and the set

	PATH_ACCOUNT  PathEntry = 0x01
	PATH_CURRENCY PathEntry = 0x10
	PATH_ISSUER   PathEntry = 0x20

	pathValidBits = PATH_ACCOUNT | PATH_CURRENCY | PATH_ISSUER
)

// PathElement is one hop in a payment path. A hop with a zero account
// crosses an offer; a nonzero account ripples through that account.
type PathElement struct {
	Account  Account
	Currency Currency
	Issuer   Account
}

// Entry derives the hop's wire mask from its populated fields.
func (e PathElement) Entry() PathEntry {
	var entry PathEntry
	if !e.Account.IsZero() {
		entry |= PATH_ACCOUNT
	}
	if !e.Currency.IsNative() {
		entry |= PATH_CURRENCY
	}
	if !e.Issuer.IsZero() {
		entry |= PATH_ISSUER
	}
	return entry
}

func (e PathElement) IsOffer() bool {
	return e.Account.IsZero()
}

func (e PathElement) IsAccount() bool {
	return !e.IsOffer()
}

func (e PathElement) String() string {
	var s []string
	if !e.Account.IsZero() {
		s = append(s, e.Account.String())
	}
	if !e.Currency.IsNative() {
		s = append(s, e.Currency.String())
	}
	if !e.Issuer.IsZero() {
		s = append(s, e.Issuer.String())
	}
	return strings.Join(s, "/")
}

// Path is an ordered sequence of hops.
type Path []PathElement

// HasSeen reports whether some hop matches the triple exactly.
func (p Path) HasSeen(account Account, currency Currency, issuer Account) bool {
	for _, e := range p {
		if e.Account == account && e.Currency == currency && e.Issuer == issuer {
			return true
		}
	}
	return false
}

// Canonical removes issuers that repeat the preceding hop's account and
// collapses adjacent duplicate hops. Applying it twice is a no-op.
func (p Path) Canonical() Path {
	out := make(Path, 0, len(p))
	for _, e := range p {
		if len(out) > 0 {
			prev := out[len(out)-1]
			if prev.IsAccount() && e.Issuer == prev.Account {
				e.Issuer = zeroAccount
			}
			if e == prev {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

func (p Path) String() string {
	var s []string
	for _, e := range p {
		s = append(s, e.String())
	}
	return strings.Join(s, " => ")
}

// PathSet is an ordered collection of alternative payment paths.
type PathSet struct {
	fname
	Paths []Path
}

func NewPathSet(f *Field, paths []Path) *PathSet {
	return &PathSet{fname{f}, paths}
}

func (p *PathSet) SType() TypeID {
	return ST_PATHSET
}

func (p *PathSet) Clone() SerializedType {
	paths := make([]Path, len(p.Paths))
	for i, path := range p.Paths {
		paths[i] = make(Path, len(path))
		copy(paths[i], path)
	}
	return &PathSet{p.fname, paths}
}

func (p *PathSet) Size() int {
	return len(p.Paths)
}

func (p *PathSet) Path(i int) Path {
	return p.Paths[i]
}

func (p *PathSet) AddPath(path Path) {
	p.Paths = append(p.Paths, path)
}

// Canonical returns a path set with every path in canonical form.
func (p *PathSet) Canonical() *PathSet {
	paths := make([]Path, len(p.Paths))
	for i, path := range p.Paths {
		paths[i] = path.Canonical()
	}
	return &PathSet{p.fname, paths}
}

func (p *PathSet) Serialize(s *Serializer) error {
	for i, path := range p.Paths {
		for _, e := range path {
			entry := e.Entry()
			s.Add8(uint8(entry))
			if entry&PATH_ACCOUNT != 0 {
				s.Add160(e.Account.Hash160())
			}
			if entry&PATH_CURRENCY != 0 {
				s.Add160(e.Currency.Hash160())
			}
			if entry&PATH_ISSUER != 0 {
				s.Add160(e.Issuer.Hash160())
			}
		}
		if i < len(p.Paths)-1 {
			s.Add8(uint8(PATH_BOUNDARY))
		} else {
			s.Add8(uint8(PATH_END))
		}
	}
	return nil
}

// The parser is a small state machine: each iteration expects either a
// framing byte or a hop mask, and a mask pulls in only the 20-byte
// fields its bits name.
func deserializePathSet(it *SerializerIterator, f *Field) (*PathSet, error) {
	set := NewPathSet(f, nil)
	maxElements := params.GetConfig().MaxPathElements
	current := Path{}
	elements := 0
	for {
		b, err := it.Read8()
		if err != nil {
			return nil, err
		}
		entry := PathEntry(b)
		switch entry {
		case PATH_END:
			set.Paths = append(set.Paths, current)
			return set, nil
		case PATH_BOUNDARY:
			set.Paths = append(set.Paths, current)
			current = Path{}
			continue
		}
		if entry&^pathValidBits != 0 {
			return nil, fmt.Errorf("%w: invalid type mask %02X", ErrMalformedPath, b)
		}
		elements++
		if elements > maxElements {
			return nil, fmt.Errorf("%w: more than %d elements", ErrMalformedPath, maxElements)
		}
		var e PathElement
		if entry&PATH_ACCOUNT != 0 {
			h, err := it.Read160()
			if err != nil {
				return nil, err
			}
			e.Account = h.Account()
		}
		if entry&PATH_CURRENCY != 0 {
			h, err := it.Read160()
			if err != nil {
				return nil, err
			}
			e.Currency = h.Currency()
		}
		if entry&PATH_ISSUER != 0 {
			h, err := it.Read160()
			if err != nil {
				return nil, err
			}
			e.Issuer = h.Account()
		}
		current = append(current, e)
	}
}

func (p *PathSet) Equivalent(other SerializedType) bool {
	o, ok := other.(*PathSet)
	if !ok || len(o.Paths) != len(p.Paths) {
		return false
	}
	for i := range p.Paths {
		if len(p.Paths[i]) != len(o.Paths[i]) {
			return false
		}
		for j := range p.Paths[i] {
			if p.Paths[i][j] != o.Paths[i][j] {
				return false
			}
		}
	}
	return true
}

func (p *PathSet) IsDefault() bool {
	return len(p.Paths) == 0
}

func (p *PathSet) Text() string {
	var s []string
	for _, path := range p.Paths {
		s = append(s, path.String())
	}
	return strings.Join(s, "\n")
}

func (p *PathSet) JSON() interface{} {
	out := make([][]map[string]interface{}, len(p.Paths))
	for i, path := range p.Paths {
		out[i] = make([]map[string]interface{}, len(path))
		for j, e := range path {
			hop := map[string]interface{}{
				"type":     uint8(e.Entry()),
				"type_hex": fmt.Sprintf("%016X", uint64(e.Entry())),
			}
			if !e.Account.IsZero() {
				hop["account"] = e.Account.String()
			}
			if !e.Currency.IsNative() {
				hop["currency"] = e.Currency.String()
			}
			if !e.Issuer.IsZero() {
				hop["issuer"] = e.Issuer.String()
			}
			out[i][j] = hop
		}
	}
	return out
}
