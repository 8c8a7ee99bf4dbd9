package v2

import "testing"

func TestEncodeLenMatchesEncode(t *testing.T) {
	frames := []Frame{
		SimpleString{Value: []byte("OK")},
		SimpleError{Value: []byte("ERR bad thing")},
		Integer{Value: -12345},
		BulkString{Value: []byte("hello world")},
		BulkString{Value: []byte{}},
		Null{},
		Array{Items: []Frame{
			BulkString{Value: []byte("foo")},
			Array{Items: []Frame{Integer{Value: 1}, Integer{Value: 2}}},
		}},
		Array{Items: nil},
	}
	for _, f := range frames {
		want := EncodeLen(f)
		got := len(Encode(f))
		if got != want {
			t.Fatalf("EncodeLen/Encode mismatch for %#v: EncodeLen=%d len(Encode)=%d", f, want, got)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	f := Array{Items: []Frame{
		SimpleString{Value: []byte("OK")},
		Integer{Value: 42},
		Null{},
		BulkString{Value: []byte("foo")},
	}}
	buf := Encode(f)
	got, n, err := Parse(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("remaining mismatch: got %d want %d", n, len(buf))
	}
	arr, ok := got.(Array)
	if !ok || len(arr.Items) != 4 {
		t.Fatalf("unexpected round-tripped frame: %#v", got)
	}
}

func TestEncodeToAppendsInPlace(t *testing.T) {
	dst := []byte("prefix:")
	out := EncodeTo(dst, SimpleString{Value: []byte("hi")})
	if string(out) != "prefix:+hi\r\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}
