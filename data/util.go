package data

import (
	"crypto/sha512"
)

const hextable = "0123456789ABCDEF"

// faster than fmt and need upper case!
func b2h(h []byte) []byte {
	b := make([]byte, len(h)*2)
	for i, v := range h {
		b[i*2] = hextable[v>>4]
		b[i*2+1] = hextable[v&0x0f]
	}
	return b
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func abs(a int64) uint64 {
	if a < 0 {
		return uint64(-a)
	}
	return uint64(a)
}

// HashOf returns the identity hash of a value's serialized form: the
// first half of its SHA512 digest.
func HashOf(st SerializedType) (Hash256, error) {
	var hash Hash256
	s := NewSerializer()
	if err := st.Serialize(s); err != nil {
		return hash, err
	}
	digest := sha512.Sum512(s.Raw())
	copy(hash[:], digest[:32])
	return hash, nil
}
