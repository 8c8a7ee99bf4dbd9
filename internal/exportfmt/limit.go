package exportfmt

import "fmt"

// LimitCodec wraps another codec to enforce a maximum allowed payload size
// at Decode time. Encode is forwarded to Inner unchanged. If MaxDecode <= 0,
// size limiting is disabled.
//
// Intended for a CLI or service accepting exported frame data from an
// untrusted source, where an attacker-controlled length field should not
// drive an unbounded allocation.
type LimitCodec[V any] struct {
	Inner     Codec[V]
	MaxDecode int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("exportfmt: payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
