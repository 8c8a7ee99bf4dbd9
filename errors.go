package respcodec

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per taxonomy entry. Check with errors.Is; a failed
// decode always returns a *DecodeError wrapping one of these.
var (
	// ErrNotComplete means the buffer ended before a complete frame was read.
	// The caller should submit more bytes and retry from DecodeError.Offset.
	ErrNotComplete = errors.New("respcodec: not complete")

	// ErrUnknown means an unrecognized leading byte, or a tag disallowed in
	// its context (e.g. an Attribute followed by a Null, Map, Set, or Push,
	// or by another Attribute).
	ErrUnknown = errors.New("respcodec: unknown or disallowed tag")

	// ErrSyntaxLen means a length/integer/double text field failed to parse.
	ErrSyntaxLen = errors.New("respcodec: malformed length or number")

	// ErrInvalidBulkString means a '$' length is negative and not -1, or the
	// two bytes after its declared-length payload are not "\r\n" (the
	// payload line is shorter or longer than declared). A payload whose
	// bytes have not all arrived yet is ErrNotComplete instead.
	ErrInvalidBulkString = errors.New("respcodec: invalid bulk string")

	// ErrInvalidError is the same condition as ErrInvalidBulkString for a
	// '!' or '=' frame (where any negative length is invalid).
	ErrInvalidError = errors.New("respcodec: invalid bulk error or verbatim string")

	// ErrInvalidArray means a '*' length is negative and not exactly -1.
	ErrInvalidArray = errors.New("respcodec: invalid array length")

	// ErrInvalidBoolean means a '#' payload was not exactly "t" or "f".
	ErrInvalidBoolean = errors.New("respcodec: invalid boolean")

	// ErrInvalidMap means a Map key was itself a Map, Set, or Push frame.
	ErrInvalidMap = errors.New("respcodec: invalid map key")

	// ErrInvalidSet means a Set element was itself a Map, Set, or Push frame.
	ErrInvalidSet = errors.New("respcodec: invalid set element")
)

// DecodeError is returned by every failing Decode/Parse call. Offset is the
// byte position where the uncompleted frame began, not wherever the scanner
// happened to advance to internally -- callers can compact their buffer up
// to Offset and resubmit from there on ErrNotComplete.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("respcodec: at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Incomplete reports whether err is (or wraps) ErrNotComplete.
func Incomplete(err error) bool {
	return errors.Is(err, ErrNotComplete)
}
