package v3

import (
	"github.com/unkn0wn-root/respcodec"
	"github.com/unkn0wn-root/respcodec/internal/scanner"
)

type containerKind uint8

const (
	cArray containerKind = iota
	cSet
	cMap
	cPush
	cAttr
)

// pending tracks one container (or attribute block) under construction on
// the explicit work stack used by buildFrame. No Go call stack frame is
// consumed per nesting level.
type pending struct {
	kind  containerKind
	items []Frame
	want  int64
}

func completeContainer(p *pending) Frame {
	switch p.kind {
	case cArray:
		return Array{Items: p.items}
	case cSet:
		return Set{Items: p.items}
	case cPush:
		return Push{Items: p.items}
	case cMap:
		return Map{Pairs: pairUp(p.items)}
	default:
		panic("respcodec/v3: unreachable container kind")
	}
}

func pairUp(items []Frame) []Pair {
	pairs := make([]Pair, len(items)/2)
	for i := range pairs {
		pairs[i] = Pair{Key: items[2*i], Value: items[2*i+1]}
	}
	return pairs
}

// buildFrame decodes exactly one top-level frame from sc. On error sc's
// position is left at whatever point scanning stopped; callers needing a
// clean retry anchor snapshot sc.Pos() themselves before calling buildFrame
// and restore it with SetPos on failure.
func buildFrame(sc *scanner.Scanner) (Frame, error) {
	var stack []*pending
	var pendingAttrs *Map
	// attrDepth is the stack depth at which the pending attribute block
	// ended; the block belongs to the next frame completed at that depth.
	attrDepth := 0

	applyAttrs := func(f Frame) (Frame, error) {
		if pendingAttrs == nil || len(stack) != attrDepth {
			return f, nil
		}
		if !attrsEligible(f.Kind()) {
			return nil, respcodec.ErrUnknown
		}
		af := f.(Attributed)
		out := af.withAttrs(pendingAttrs)
		pendingAttrs = nil
		return out, nil
	}

scan:
	for {
		tok, err := scanner.ClassifyV3(sc)
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
		case scanner.KindBoolean:
			b, err := parseBoolean(sc.Buf()[tok.Start:tok.End])
			if err != nil {
				return nil, err
			}
			leaf = Boolean{Value: b}
		case scanner.KindDouble:
			d, err := parseDouble(sc.Buf()[tok.Start:tok.End])
			if err != nil {
				return nil, err
			}
			leaf = Double{Value: d}
		case scanner.KindBigNumber:
			txt := sc.Buf()[tok.Start:tok.End]
			if err := validateBigNumber(txt); err != nil {
				return nil, err
			}
			leaf = BigNumber{Value: txt}
		case scanner.KindBulkError:
			leaf = BulkError{Value: sc.Buf()[tok.Start:tok.End]}
		case scanner.KindVerbatimString:
			vs, err := parseVerbatim(sc.Buf()[tok.Start:tok.End])
			if err != nil {
				return nil, err
			}
			leaf = vs
		case scanner.KindArray:
			stack = append(stack, &pending{kind: cArray, want: tok.N, items: make([]Frame, 0, tok.N)})
			if tok.N != 0 {
				continue scan
			}
			leaf = completeContainer(stack[len(stack)-1])
			stack = stack[:len(stack)-1]
		case scanner.KindSet:
			stack = append(stack, &pending{kind: cSet, want: tok.N, items: make([]Frame, 0, tok.N)})
			if tok.N != 0 {
				continue scan
			}
			leaf = completeContainer(stack[len(stack)-1])
			stack = stack[:len(stack)-1]
		case scanner.KindPush:
			stack = append(stack, &pending{kind: cPush, want: tok.N, items: make([]Frame, 0, tok.N)})
			if tok.N != 0 {
				continue scan
			}
			leaf = completeContainer(stack[len(stack)-1])
			stack = stack[:len(stack)-1]
		case scanner.KindMap:
			want := tok.N * 2
			stack = append(stack, &pending{kind: cMap, want: want, items: make([]Frame, 0, want)})
			if want != 0 {
				continue scan
			}
			leaf = completeContainer(stack[len(stack)-1])
			stack = stack[:len(stack)-1]
		case scanner.KindAttribute:
			if pendingAttrs != nil {
				return nil, respcodec.ErrUnknown
			}
			want := tok.N * 2
			stack = append(stack, &pending{kind: cAttr, want: want, items: make([]Frame, 0, want)})
			if want != 0 {
				continue scan
			}
			m := Map{Pairs: nil}
			pendingAttrs = &m
			stack = stack[:len(stack)-1]
			attrDepth = len(stack)
			continue scan
		default:
			return nil, respcodec.ErrUnknown
		}

		leaf, err = applyAttrs(leaf)
		if err != nil {
			return nil, err
		}

		for {
			if len(stack) == 0 {
				return leaf, nil
			}
			top := stack[len(stack)-1]
			if top.kind == cSet && isRestrictedAsMember(leaf) {
				return nil, respcodec.ErrInvalidSet
			}
			// Map entries alternate key, value, key, value, ...; only a key
			// (even index) is restricted -- a Map value may itself be any
			// frame, including a Map, Set, or Push.
			if top.kind == cMap && len(top.items)%2 == 0 && isRestrictedAsMember(leaf) {
				return nil, respcodec.ErrInvalidMap
			}
			top.items = append(top.items, leaf)
			top.want--
			if top.want > 0 {
				continue scan
			}
			stack = stack[:len(stack)-1]
			if top.kind == cAttr {
				m := Map{Pairs: pairUp(top.items)}
				pendingAttrs = &m
				attrDepth = len(stack)
				continue scan
			}
			leaf, err = applyAttrs(completeContainer(top))
			if err != nil {
				return nil, err
			}
		}
	}
}

func wrapErr(offset int, err error) error {
	return &respcodec.DecodeError{Offset: offset, Err: err}
}

// Parse decodes at most one top-level frame from buf and reports the byte
// offset just past it. Check respcodec.Incomplete(err) to distinguish "need
// more bytes" from a terminal parse error.
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
// subsequent call returns that same error.
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
