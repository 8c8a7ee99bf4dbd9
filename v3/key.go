package v3

import (
	"encoding/binary"
	"math"
)

// canonicalKey returns a structural byte encoding of f, ignoring its
// attribute map, suitable for use as a Go map key when deduplicating Set
// elements or detecting duplicate Map keys. Distinct NaN bit patterns and
// +0.0/-0.0 encode as distinct keys, matching Double's IEEE-754 identity
// rather than its numeric equality.
//
// f must not be a Map, Set, or Push; callers validate member restrictions
// before calling canonicalKey.
func canonicalKey(f Frame) string {
	return string(appendKey(nil, f))
}

func appendKey(dst []byte, f Frame) []byte {
	switch v := f.(type) {
	case SimpleString:
		dst = append(dst, 'S')
		return appendLenPrefixed(dst, v.Value)
	case SimpleError:
		dst = append(dst, 'E')
		return appendLenPrefixed(dst, v.Value)
	case Integer:
		dst = append(dst, 'I')
		return binary.BigEndian.AppendUint64(dst, uint64(v.Value))
	case BulkString:
		dst = append(dst, 'B')
		return appendLenPrefixed(dst, v.Value)
	case Null:
		return append(dst, 'N')
	case Array:
		dst = append(dst, 'A')
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(v.Items)))
		for _, it := range v.Items {
			dst = appendKey(dst, it)
		}
		return dst
	case Boolean:
		dst = append(dst, 'Z')
		if v.Value {
			return append(dst, 1)
		}
		return append(dst, 0)
	case Double:
		dst = append(dst, 'D')
		return binary.BigEndian.AppendUint64(dst, math.Float64bits(v.Value))
	case BigNumber:
		dst = append(dst, 'G')
		return appendLenPrefixed(dst, v.Value)
	case BulkError:
		dst = append(dst, 'X')
		return appendLenPrefixed(dst, v.Value)
	case VerbatimString:
		dst = append(dst, 'V')
		dst = append(dst, v.Format[:]...)
		return appendLenPrefixed(dst, v.Value)
	default:
		// Map, Set, and Push are rejected before reaching here; see
		// isRestrictedAsMember.
		panic("respcodec/v3: unsupported key type")
	}
}

func appendLenPrefixed(dst, b []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(b)))
	return append(dst, b...)
}

// Lookup returns the value paired with a key structurally equal to key
// (attributes ignored on both sides), and whether one was found. Linear in
// the number of pairs; Map does not maintain an index.
func (m Map) Lookup(key Frame) (Frame, bool) {
	target := canonicalKey(key)
	for _, p := range m.Pairs {
		if canonicalKey(p.Key) == target {
			return p.Value, true
		}
	}
	return nil, false
}

// Contains reports whether s has an element structurally equal to f
// (attributes ignored). Linear in the number of elements.
func (s Set) Contains(f Frame) bool {
	target := canonicalKey(f)
	for _, it := range s.Items {
		if canonicalKey(it) == target {
			return true
		}
	}
	return false
}
