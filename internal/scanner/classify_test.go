package scanner

import (
	"errors"
	"testing"

	"github.com/unkn0wn-root/respcodec"
)

func TestClassifyV2SimpleString(t *testing.T) {
	s := New([]byte("+OK\r\n"))
	tok, err := ClassifyV2(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != KindSimpleString || string(s.Buf()[tok.Start:tok.End]) != "OK" {
		t.Fatalf("unexpected token: %+v", tok)
	}
	if s.Pos() != 5 {
		t.Fatalf("pos mismatch: got %d", s.Pos())
	}
}

func TestClassifyV2BulkStringAndNull(t *testing.T) {
	s := New([]byte("$5\r\nhello\r\n$-1\r\n"))
	tok, err := ClassifyV2(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != KindBulkString || string(s.Buf()[tok.Start:tok.End]) != "hello" {
		t.Fatalf("unexpected token: %+v", tok)
	}
	tok, err = ClassifyV2(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != KindNull {
		t.Fatalf("expected null, got %+v", tok)
	}
	if s.Pos() != len(s.Buf()) {
		t.Fatalf("expected scanner fully consumed, pos=%d len=%d", s.Pos(), len(s.Buf()))
	}
}

func TestClassifyV2InvalidBulkStringTooShort(t *testing.T) {
	// the payload line "hi" is shorter than the declared 5 bytes; with the
	// next frame's bytes present, the 2 bytes after the 5-byte payload span
	// are ":1" rather than CRLF.
	s := New([]byte("$5\r\nhi\r\n:1\r\n"))
	_, err := ClassifyV2(s)
	if !errors.Is(err, respcodec.ErrInvalidBulkString) {
		t.Fatalf("expected ErrInvalidBulkString, got %v", err)
	}
}

func TestClassifyV2ArrayNegativeOtherThanMinusOne(t *testing.T) {
	s := New([]byte("*-2\r\n"))
	_, err := ClassifyV2(s)
	if !errors.Is(err, respcodec.ErrInvalidArray) {
		t.Fatalf("expected ErrInvalidArray, got %v", err)
	}
}

func TestClassifyV2SyntaxLen(t *testing.T) {
	s := New([]byte(":abc\r\n"))
	_, err := ClassifyV2(s)
	if !errors.Is(err, respcodec.ErrSyntaxLen) {
		t.Fatalf("expected ErrSyntaxLen, got %v", err)
	}
}

func TestClassifyV2Unknown(t *testing.T) {
	s := New([]byte("@nope\r\n"))
	_, err := ClassifyV2(s)
	if !errors.Is(err, respcodec.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
}

func TestClassifyV3AllLeafTags(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
	}{
		{"_\r\n", KindNull},
		{"#t\r\n", KindBoolean},
		{",3.14\r\n", KindDouble},
		{"(12345\r\n", KindBigNumber},
		{"!5\r\nhello\r\n", KindBulkError},
		{"=8\r\ntxt:abcd\r\n", KindVerbatimString},
		{"~0\r\n", KindSet},
		{"%0\r\n", KindMap},
		{">0\r\n", KindPush},
		{"|0\r\n", KindAttribute},
	}
	for _, tc := range cases {
		s := New([]byte(tc.in))
		tok, err := ClassifyV3(s)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if tok.Kind != tc.kind {
			t.Fatalf("%q: kind mismatch: got %v want %v", tc.in, tok.Kind, tc.kind)
		}
	}
}

func TestClassifyV3InvalidBoolean(t *testing.T) {
	// classification itself doesn't validate boolean payload content, only
	// that the tag is recognized; content validation happens in the AST
	// builder (InvalidBoolean), matching the tag-vs-frame split in §4.2/§4.3.
	s := New([]byte("#x\r\n"))
	tok, err := ClassifyV3(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != KindBoolean {
		t.Fatalf("unexpected token: %+v", tok)
	}
}
