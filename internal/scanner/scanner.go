// Package scanner implements the byte-level line scanner and per-revision
// tag classifiers shared by the v2 and v3 decoders. It never allocates and
// never copies: every Token it produces describes a span into the caller's
// buffer.
package scanner

import "bytes"

// Scanner walks a byte slice line by line, where a line is a maximal run
// terminated by "\r\n". A bare '\r' not followed by '\n' is skipped; the
// scanner keeps searching for the next '\r'.
//
// Scanner is restartable: on an incomplete line, Pos is left unchanged so a
// caller can retry NextLine once more bytes have been appended to the same
// underlying buffer (the buffer itself must grow in place; Scanner does not
// own it).
type Scanner struct {
	buf []byte
	pos int
}

// New returns a Scanner positioned at the start of buf.
func New(buf []byte) *Scanner {
	return &Scanner{buf: buf}
}

// Pos returns the offset just past the last line consumed by NextLine or
// TakeN.
func (s *Scanner) Pos() int { return s.pos }

// SetPos rewinds or fast-forwards the scan cursor. Used by callers that need
// to re-anchor after a failed frame (see DecodeError.Offset semantics).
func (s *Scanner) SetPos(pos int) { s.pos = pos }

// Len returns the length of the underlying buffer.
func (s *Scanner) Len() int { return len(s.buf) }

// Buf returns the underlying buffer (read-only by convention).
func (s *Scanner) Buf() []byte { return s.buf }

// NextLine returns the content span [start, end) of the next CRLF-terminated
// line, not including the CRLF itself, and advances Pos past the CRLF. ok is
// false when no complete line is available yet (end of input reached before
// a terminator was found); Pos is left unchanged in that case.
func (s *Scanner) NextLine() (start, end int, ok bool) {
	start = s.pos
	search := s.pos
	for {
		rel := bytes.IndexByte(s.buf[search:], '\r')
		if rel < 0 {
			return 0, 0, false
		}
		cr := search + rel
		if cr+1 >= len(s.buf) {
			return 0, 0, false
		}
		if s.buf[cr+1] == '\n' {
			s.pos = cr + 2
			return start, cr, true
		}
		search = cr + 1
	}
}

// TakeResult reports the outcome of Scanner.TakeN.
type TakeResult int

const (
	// TakeOK means exactly n bytes followed by CRLF were consumed.
	TakeOK TakeResult = iota
	// TakeIncomplete means fewer than n+2 bytes remain; the caller cannot
	// yet tell whether the input is malformed or simply not fully arrived.
	TakeIncomplete
	// TakeBadTerminator means n+2 bytes were available but the two bytes
	// immediately after the declared-length payload were not "\r\n".
	TakeBadTerminator
)

// TakeN consumes exactly n raw bytes starting at the current position,
// followed by a mandatory CRLF, and returns the span [start, start+n) of the
// payload. The payload is taken verbatim regardless of its content -- an
// embedded "\r\n" inside the n bytes does not terminate it early, so bulk
// payloads may hold arbitrary binary data.
func (s *Scanner) TakeN(n int) (start int, res TakeResult) {
	start = s.pos
	end := start + n
	if end+2 > len(s.buf) {
		return 0, TakeIncomplete
	}
	if s.buf[end] != '\r' || s.buf[end+1] != '\n' {
		return 0, TakeBadTerminator
	}
	s.pos = end + 2
	return start, TakeOK
}
