package pool

import (
	"testing"

	"github.com/unkn0wn-root/respcodec/v2"
)

func TestEncodeWithRoundTrips(t *testing.T) {
	var p Pool
	f := v2.SimpleString{Value: []byte("OK")}

	out := p.EncodeWith(func(dst []byte) []byte {
		return v2.EncodeTo(dst, f)
	})

	if string(out) != "+OK\r\n" {
		t.Fatalf("unexpected encoding: %q", out)
	}
}

func TestGetPutReuse(t *testing.T) {
	var p Pool
	buf := p.Get()
	buf.B = append(buf.B, "hello"...)
	p.Put(buf)

	buf2 := p.Get()
	if len(buf2.B) != 0 {
		t.Fatalf("expected a reset buffer from the pool, got len %d", len(buf2.B))
	}
}
