package v3

import (
	"math"
	"testing"
)

func TestCanonicalKeyDistinguishesDoubleZeroSigns(t *testing.T) {
	pos := canonicalKey(Double{Value: 0})
	neg := canonicalKey(Double{Value: math.Copysign(0, -1)})
	if pos == neg {
		t.Fatalf("expected +0.0 and -0.0 to produce distinct keys")
	}
}

func TestCanonicalKeyDistinguishesNaNBitPatterns(t *testing.T) {
	a := math.Float64frombits(0x7ff8000000000001)
	b := math.Float64frombits(0x7ff8000000000002)
	if canonicalKey(Double{Value: a}) == canonicalKey(Double{Value: b}) {
		t.Fatalf("expected distinct NaN bit patterns to produce distinct keys")
	}
}

func TestCanonicalKeyIgnoresAttrs(t *testing.T) {
	withAttrs := canonicalKey(SimpleString{Value: []byte("x"), Attrs: &Map{Pairs: []Pair{
		{Key: Integer{Value: 1}, Value: Integer{Value: 2}},
	}}})
	without := canonicalKey(SimpleString{Value: []byte("x")})
	if withAttrs != without {
		t.Fatalf("expected attrs to be ignored by canonicalKey")
	}
}

func TestCanonicalKeyDistinguishesTypesWithSameBytes(t *testing.T) {
	s := canonicalKey(SimpleString{Value: []byte("a")})
	e := canonicalKey(SimpleError{Value: []byte("a")})
	if s == e {
		t.Fatalf("expected SimpleString and SimpleError with same bytes to differ")
	}
}

func TestMapLookup(t *testing.T) {
	m := Map{Pairs: []Pair{
		{Key: BulkString{Value: []byte("bar")}, Value: Integer{Value: 7}},
	}}
	v, ok := m.Lookup(BulkString{Value: []byte("bar")})
	if !ok {
		t.Fatalf("expected lookup hit")
	}
	if i, ok := v.(Integer); !ok || i.Value != 7 {
		t.Fatalf("unexpected value: %#v", v)
	}
	if _, ok := m.Lookup(BulkString{Value: []byte("missing")}); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestSetContains(t *testing.T) {
	s := Set{Items: []Frame{Integer{Value: 1}, Integer{Value: 2}}}
	if !s.Contains(Integer{Value: 2}) {
		t.Fatalf("expected set to contain element")
	}
	if s.Contains(Integer{Value: 3}) {
		t.Fatalf("expected set to not contain element")
	}
}

func TestCanonicalKeyNestedArray(t *testing.T) {
	a := canonicalKey(Array{Items: []Frame{Integer{Value: 1}, Integer{Value: 2}}})
	b := canonicalKey(Array{Items: []Frame{Integer{Value: 1}, Integer{Value: 2}}})
	if a != b {
		t.Fatalf("expected identical nested arrays to produce identical keys")
	}
	c := canonicalKey(Array{Items: []Frame{Integer{Value: 2}, Integer{Value: 1}}})
	if a == c {
		t.Fatalf("expected different element order to produce different keys")
	}
}
