package v2

import (
	"github.com/unkn0wn-root/respcodec"
	"github.com/unkn0wn-root/respcodec/internal/scanner"
)

// pending tracks one container under construction on the explicit work
// stack used by buildFrame. No Go call stack frame is consumed per nesting
// level, so adversarially deep input (e.g. N repetitions of "*1\r\n") cannot
// overflow the goroutine stack.
type pending struct {
	items []Frame
	want  int64
}

// buildFrame decodes exactly one top-level frame from sc, advancing it past
// every token consumed. On error sc's position is left at whatever point
// scanning stopped; callers that need to resubmit from a clean anchor must
// snapshot sc.Pos() themselves before calling buildFrame and call SetPos on
// failure.
func buildFrame(sc *scanner.Scanner) (Frame, error) {
	var stack []*pending

	for {
		tok, err := scanner.ClassifyV2(sc)
		if err != nil {
			return nil, err
		}

		var leaf Frame
		switch tok.Kind {
		case scanner.KindSimpleString:
			leaf = SimpleString{Value: sc.Buf()[tok.Start:tok.End]}
		case scanner.KindSimpleError:
			leaf = SimpleError{Value: sc.Buf()[tok.Start:tok.End]}
		case scanner.KindInteger:
			leaf = Integer{Value: tok.N}
		case scanner.KindBulkString:
			leaf = BulkString{Value: sc.Buf()[tok.Start:tok.End]}
		case scanner.KindNull:
			leaf = Null{}
		case scanner.KindArray:
			stack = append(stack, &pending{items: make([]Frame, 0, tok.N), want: tok.N})
			if tok.N != 0 {
				continue
			}
			top := stack[len(stack)-1]
			leaf = Array{Items: top.items}
			stack = stack[:len(stack)-1]
		default:
			return nil, respcodec.ErrUnknown
		}

		for {
			if len(stack) == 0 {
				return leaf, nil
			}
			top := stack[len(stack)-1]
			top.items = append(top.items, leaf)
			top.want--
			if top.want > 0 {
				break
			}
			leaf = Array{Items: top.items}
			stack = stack[:len(stack)-1]
		}
	}
}

func wrapErr(offset int, err error) error {
	return &respcodec.DecodeError{Offset: offset, Err: err}
}

// Parse decodes at most one top-level frame from buf and reports the byte
// offset just past it. A nil Frame with a nil error never occurs; check
// respcodec.Incomplete(err) to distinguish "need more bytes" from a
// terminal parse error.
func Parse(buf []byte) (Frame, int, error) {
	sc := scanner.New(buf)
	f, err := buildFrame(sc)
	if err != nil {
		return nil, 0, wrapErr(0, err)
	}
	return f, sc.Pos(), nil
}

// Iterator decodes a restartable sequence of top-level frames from one
// buffer. It is not safe for concurrent use; distinct Iterators over
// distinct buffers are fully independent.
type Iterator struct {
	sc        *scanner.Scanner
	committed int
	err       error
}

// NewIterator returns an Iterator over buf.
func NewIterator(buf []byte) *Iterator {
	return &Iterator{sc: scanner.New(buf)}
}

// Next decodes the next frame. Once Next returns a non-nil error, every
// subsequent call returns that same error (first error wins; no recovery).
func (it *Iterator) Next() (Frame, error) {
	if it.err != nil {
		return nil, it.err
	}
	anchor := it.sc.Pos()
	f, err := buildFrame(it.sc)
	if err != nil {
		it.sc.SetPos(anchor)
		it.err = wrapErr(anchor, err)
		return nil, it.err
	}
	it.committed = it.sc.Pos()
	return f, nil
}

// Remaining returns the byte offset just past the last frame Next
// successfully returned.
func (it *Iterator) Remaining() int { return it.committed }
