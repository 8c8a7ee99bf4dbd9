package v2

import (
	"strconv"

	"github.com/unkn0wn-root/respcodec"
)

// EncodeLen returns the exact number of bytes Encode(f) will write. Callers
// that pre-size a buffer can rely on this matching Encode/EncodeTo exactly.
func EncodeLen(f Frame) int {
	switch v := f.(type) {
	case SimpleString:
		return 1 + len(v.Value) + 2
	case SimpleError:
		return 1 + len(v.Value) + 2
	case Integer:
		return 1 + len(strconv.FormatInt(v.Value, 10)) + 2
	case BulkString:
		return 1 + len(strconv.Itoa(len(v.Value))) + 2 + len(v.Value) + 2
	case Null:
		return len("$-1\r\n")
	case Array:
		n := 1 + len(strconv.Itoa(len(v.Items))) + 2
		for _, item := range v.Items {
			n += EncodeLen(item)
		}
		return n
	default:
		return 0
	}
}

// Encode returns the wire encoding of f as a freshly allocated slice.
func Encode(f Frame) []byte {
	buf := make([]byte, 0, EncodeLen(f))
	return appendFrame(buf, f)
}

// EncodeTo appends the wire encoding of f to dst and returns the extended
// slice, following the append(dst, ...) convention.
func EncodeTo(dst []byte, f Frame) []byte {
	return appendFrame(dst, f)
}

func appendFrame(dst []byte, f Frame) []byte {
	switch v := f.(type) {
	case SimpleString:
		dst = append(dst, '+')
		dst = append(dst, v.Value...)
		return append(dst, '\r', '\n')
	case SimpleError:
		dst = append(dst, '-')
		dst = append(dst, v.Value...)
		return append(dst, '\r', '\n')
	case Integer:
		dst = append(dst, ':')
		dst = strconv.AppendInt(dst, v.Value, 10)
		return append(dst, '\r', '\n')
	case BulkString:
		dst = append(dst, '$')
		dst = strconv.AppendInt(dst, int64(len(v.Value)), 10)
		dst = append(dst, '\r', '\n')
		dst = append(dst, v.Value...)
		return append(dst, '\r', '\n')
	case Null:
		return append(dst, '$', '-', '1', '\r', '\n')
	case Array:
		dst = append(dst, '*')
		dst = strconv.AppendInt(dst, int64(len(v.Items)), 10)
		dst = append(dst, '\r', '\n')
		for _, item := range v.Items {
			dst = appendFrame(dst, item)
		}
		return dst
	default:
		panic(respcodec.ErrUnknown)
	}
}
