package v3

import (
	"math"
	"testing"
)

func TestEncodeLenMatchesEncode(t *testing.T) {
	frames := []Frame{
		SimpleString{Value: []byte("OK")},
		SimpleError{Value: []byte("ERR bad")},
		Integer{Value: -42},
		BulkString{Value: []byte("hello")},
		Null{},
		Boolean{Value: true},
		Double{Value: 3.25},
		Double{Value: 0},
		BigNumber{Value: []byte("123456789012345678901234567890")},
		BulkError{Value: []byte("bad")},
		VerbatimString{Format: [3]byte{'t', 'x', 't'}, Value: []byte("hi there")},
		Map{Pairs: []Pair{{Key: BulkString{Value: []byte("k")}, Value: Integer{Value: 1}}}},
		Set{Items: []Frame{Integer{Value: 1}, Integer{Value: 2}}},
		Push{Items: []Frame{SimpleString{Value: []byte("chan")}}},
		SimpleString{Value: []byte("decorated"), Attrs: &Map{Pairs: []Pair{
			{Key: SimpleString{Value: []byte("k")}, Value: SimpleString{Value: []byte("v")}},
		}}},
	}
	for _, f := range frames {
		want := EncodeLen(f)
		got := len(Encode(f))
		if got != want {
			t.Fatalf("EncodeLen/Encode mismatch for %#v: EncodeLen=%d len(Encode)=%d", f, want, got)
		}
	}
}

func TestEncodeRoundTripAttributedFrame(t *testing.T) {
	f := SimpleString{
		Value: []byte("main"),
		Attrs: &Map{Pairs: []Pair{
			{Key: SimpleString{Value: []byte("key")}, Value: SimpleString{Value: []byte("value")}},
		}},
	}
	buf := Encode(f)
	if string(buf) != "|1\r\n+key\r\n+value\r\n+main\r\n" {
		t.Fatalf("unexpected encoding: %q", buf)
	}
	got, n, err := Parse(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("remaining mismatch: got %d want %d", n, len(buf))
	}
	ss, ok := got.(SimpleString)
	if !ok || string(ss.Value) != "main" || ss.Attrs == nil {
		t.Fatalf("unexpected round-tripped frame: %#v", got)
	}
}

func TestEncodeDoubleSpecialValues(t *testing.T) {
	buf := Encode(Double{Value: 3.14})
	if string(buf) != ",3.14\r\n" {
		t.Fatalf("unexpected encoding: %q", buf)
	}
	for _, tc := range []struct {
		v    float64
		want string
	}{
		{math.Inf(1), ",inf\r\n"},
		{math.Inf(-1), ",-inf\r\n"},
		{math.NaN(), ",nan\r\n"},
	} {
		if got := string(Encode(Double{Value: tc.v})); got != tc.want {
			t.Fatalf("Encode(%v): got %q want %q", tc.v, got, tc.want)
		}
	}
}

func TestEncodeMapRoundTrip(t *testing.T) {
	f := Map{Pairs: []Pair{{Key: BulkString{Value: []byte("bar")}, Value: Array{Items: []Frame{Integer{Value: 1}}}}}}
	buf := Encode(f)
	if string(buf) != "%1\r\n$3\r\nbar\r\n*1\r\n:1\r\n" {
		t.Fatalf("unexpected encoding: %q", buf)
	}
	got, n, err := Parse(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("remaining mismatch: got %d want %d", n, len(buf))
	}
	m, ok := got.(Map)
	if !ok || len(m.Pairs) != 1 {
		t.Fatalf("unexpected round-tripped frame: %#v", got)
	}
	if _, ok := m.Lookup(BulkString{Value: []byte("bar")}); !ok {
		t.Fatalf("expected round-tripped map to contain key bar")
	}
}
