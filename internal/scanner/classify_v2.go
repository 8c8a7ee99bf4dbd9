package scanner

import "github.com/unkn0wn-root/respcodec"

// ClassifyV2 reads one V2 token starting at the scanner's current position.
// On respcodec.ErrNotComplete the position is left unchanged when the
// framing line itself is incomplete; when only a bulk payload is
// incomplete, the position is left just past the framing line.
func ClassifyV2(s *Scanner) (Token, error) {
	start, end, ok := s.NextLine()
	if !ok {
		return Token{}, respcodec.ErrNotComplete
	}
	if start == end {
		return Token{}, respcodec.ErrUnknown
	}
	tag := s.Buf()[start]
	body := s.Buf()[start+1 : end]

	switch tag {
	case '+':
		return Token{Kind: KindSimpleString, Start: start + 1, End: end}, nil
	case '-':
		return Token{Kind: KindSimpleError, Start: start + 1, End: end}, nil
	case ':':
		n, err := ParseLen(body)
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: KindInteger, N: n}, nil
	case '$':
		return classifyBulk(s, body, KindBulkString, respcodec.ErrInvalidBulkString)
	case '*':
		n, err := ParseLen(body)
		if err != nil {
			return Token{}, err
		}
		if n == -1 {
			return Token{Kind: KindNull}, nil
		}
		if n < 0 {
			return Token{}, respcodec.ErrInvalidArray
		}
		return Token{Kind: KindArray, N: n}, nil
	default:
		return Token{}, respcodec.ErrUnknown
	}
}

// classifyBulk handles the shared "$"/length-prefixed-with-possible-null"
// shape used by V2's BulkString and (without the Null case) V3's BulkError
// and VerbatimString callers via classifyLenPrefixed.
func classifyBulk(s *Scanner, lenText []byte, kind Kind, badErr error) (Token, error) {
	n, err := ParseLen(lenText)
	if err != nil {
		return Token{}, err
	}
	if n == -1 {
		return Token{Kind: KindNull}, nil
	}
	if n < 0 {
		return Token{}, badErr
	}
	payloadStart, res := s.TakeN(int(n))
	switch res {
	case TakeOK:
		return Token{Kind: kind, Start: payloadStart, End: payloadStart + int(n)}, nil
	case TakeIncomplete:
		return Token{}, respcodec.ErrNotComplete
	default:
		return Token{}, badErr
	}
}

// classifyLenPrefixed handles V3's "!" and "=" shape: an unsigned length,
// never negative/Null, followed by a mandatory payload line.
func classifyLenPrefixed(s *Scanner, lenText []byte, kind Kind, badErr error) (Token, error) {
	n, err := ParseLen(lenText)
	if err != nil {
		return Token{}, err
	}
	if n < 0 {
		return Token{}, badErr
	}
	payloadStart, res := s.TakeN(int(n))
	switch res {
	case TakeOK:
		return Token{Kind: kind, Start: payloadStart, End: payloadStart + int(n)}, nil
	case TakeIncomplete:
		return Token{}, respcodec.ErrNotComplete
	default:
		return Token{}, badErr
	}
}
