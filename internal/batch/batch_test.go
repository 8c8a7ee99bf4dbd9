package batch

import (
	"context"
	"errors"
	"testing"

	"github.com/unkn0wn-root/respcodec/v2"
)

func decodeV2(buf []byte) (any, int, error) {
	f, n, err := v2.Parse(buf)
	return f, n, err
}

func TestDecodeAllAllSucceed(t *testing.T) {
	buffers := [][]byte{
		[]byte("+OK\r\n"),
		[]byte(":42\r\n"),
		[]byte("$3\r\nfoo\r\n"),
	}
	results, err := DecodeAll(context.Background(), buffers, 2, decodeV2)
	if err != nil {
		t.Fatalf("unexpected aggregate error: %v", err)
	}
	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("buffer %d: unexpected error: %v", i, r.Err)
		}
		if r.Frame == nil {
			t.Fatalf("buffer %d: nil frame", i)
		}
	}
}

func TestDecodeAllAggregatesFailures(t *testing.T) {
	buffers := [][]byte{
		[]byte("+OK\r\n"),
		[]byte("@bad\r\n"),
		[]byte("*-2\r\n"),
	}
	results, err := DecodeAll(context.Background(), buffers, 0, decodeV2)
	if err == nil {
		t.Fatalf("expected aggregate error")
	}
	if results[0].Err != nil {
		t.Fatalf("buffer 0 should have succeeded: %v", results[0].Err)
	}
	if results[1].Err == nil || results[2].Err == nil {
		t.Fatalf("expected buffers 1 and 2 to fail")
	}
}

func TestSummary(t *testing.T) {
	results := []Result{{Err: nil}, {Err: errors.New("x")}, {Err: nil}}
	got := Summary(results)
	want := "2 decoded, 1 failed (of 3)"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
