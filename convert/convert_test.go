package convert

import (
	"errors"
	"testing"

	"github.com/unkn0wn-root/respcodec"
	"github.com/unkn0wn-root/respcodec/v2"
	"github.com/unkn0wn-root/respcodec/v3"
)

func TestToV3LeafTypes(t *testing.T) {
	cases := []struct {
		in   v2.Frame
		want v3.Kind
	}{
		{v2.SimpleString{Value: []byte("ok")}, v3.KindSimpleString},
		{v2.SimpleError{Value: []byte("bad")}, v3.KindSimpleError},
		{v2.Integer{Value: -7}, v3.KindInteger},
		{v2.BulkString{Value: []byte("hi")}, v3.KindBulkString},
		{v2.Null{}, v3.KindNull},
	}
	for _, tc := range cases {
		got := ToV3(tc.in)
		if got.Kind() != tc.want {
			t.Fatalf("ToV3(%#v): got kind %v want %v", tc.in, got.Kind(), tc.want)
		}
	}
}

func TestToV3NestedArray(t *testing.T) {
	in := v2.Array{Items: []v2.Frame{
		v2.BulkString{Value: []byte("foo")},
		v2.Array{Items: []v2.Frame{v2.Integer{Value: 1}, v2.Integer{Value: 2}}},
	}}
	got := ToV3(in)
	arr, ok := got.(v3.Array)
	if !ok || len(arr.Items) != 2 {
		t.Fatalf("unexpected result: %#v", got)
	}
	inner, ok := arr.Items[1].(v3.Array)
	if !ok || len(inner.Items) != 2 {
		t.Fatalf("unexpected inner array: %#v", arr.Items[1])
	}
}

func TestToV3DeepArrayDoesNotPanic(t *testing.T) {
	const depth = 50000
	var cur v2.Frame = v2.Integer{Value: 1}
	for i := 0; i < depth; i++ {
		cur = v2.Array{Items: []v2.Frame{cur}}
	}
	got := ToV3(cur)
	n := 0
	for {
		arr, ok := got.(v3.Array)
		if !ok {
			break
		}
		got = arr.Items[0]
		n++
	}
	if n != depth {
		t.Fatalf("depth mismatch: got %d want %d", n, depth)
	}
}

func TestToV2OverlapSucceeds(t *testing.T) {
	in := v3.Array{Items: []v3.Frame{
		v3.SimpleString{Value: []byte("ok")},
		v3.Integer{Value: 42},
		v3.Null{},
	}}
	got, err := ToV2(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, ok := got.(v2.Array)
	if !ok || len(arr.Items) != 3 {
		t.Fatalf("unexpected result: %#v", got)
	}
}

func TestToV2RejectsUnsupportedVariants(t *testing.T) {
	cases := []v3.Frame{
		v3.Map{},
		v3.Set{},
		v3.Push{},
		v3.Boolean{Value: true},
		v3.Double{Value: 1.5},
		v3.BigNumber{Value: []byte("1")},
		v3.BulkError{Value: []byte("x")},
		v3.VerbatimString{Format: [3]byte{'t', 'x', 't'}, Value: []byte("x")},
	}
	for _, f := range cases {
		if _, err := ToV2(f); !errors.Is(err, respcodec.ErrUnknown) {
			t.Fatalf("ToV2(%#v): expected ErrUnknown, got %v", f, err)
		}
	}
}

func TestToV2RejectsAttributedFrame(t *testing.T) {
	f := v3.SimpleString{Value: []byte("x"), Attrs: &v3.Map{}}
	if _, err := ToV2(f); !errors.Is(err, respcodec.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
}

func TestToV2RejectsNestedAttributedFrame(t *testing.T) {
	f := v3.Array{Items: []v3.Frame{
		v3.SimpleString{Value: []byte("x"), Attrs: &v3.Map{}},
	}}
	if _, err := ToV2(f); !errors.Is(err, respcodec.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
}
