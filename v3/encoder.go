package v3

import (
	"math"
	"strconv"

	"github.com/unkn0wn-root/respcodec"
)

// EncodeLen returns the exact number of bytes Encode(f) will write,
// including any attribute prefix attached to f or to any frame nested
// inside it.
func EncodeLen(f Frame) int {
	n := 0
	if af, ok := f.(Attributed); ok {
		if attrs := af.GetAttrs(); attrs != nil {
			n += attrBlockLen(attrs)
		}
	}
	return n + bodyLen(f)
}

func attrBlockLen(m *Map) int {
	n := 1 + len(strconv.Itoa(len(m.Pairs))) + 2
	for _, p := range m.Pairs {
		n += EncodeLen(p.Key) + EncodeLen(p.Value)
	}
	return n
}

func bodyLen(f Frame) int {
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
		return 3 // "_\r\n"
	case Array:
		n := 1 + len(strconv.Itoa(len(v.Items))) + 2
		for _, it := range v.Items {
			n += EncodeLen(it)
		}
		return n
	case Boolean:
		return 4 // "#t\r\n"
	case Double:
		return 1 + len(formatDouble(v.Value)) + 2
	case BigNumber:
		return 1 + len(v.Value) + 2
	case BulkError:
		return 1 + len(strconv.Itoa(len(v.Value))) + 2 + len(v.Value) + 2
	case VerbatimString:
		total := 4 + len(v.Value)
		return 1 + len(strconv.Itoa(total)) + 2 + total + 2
	case Map:
		n := 1 + len(strconv.Itoa(len(v.Pairs))) + 2
		for _, p := range v.Pairs {
			n += EncodeLen(p.Key) + EncodeLen(p.Value)
		}
		return n
	case Set:
		n := 1 + len(strconv.Itoa(len(v.Items))) + 2
		for _, it := range v.Items {
			n += EncodeLen(it)
		}
		return n
	case Push:
		n := 1 + len(strconv.Itoa(len(v.Items))) + 2
		for _, it := range v.Items {
			n += EncodeLen(it)
		}
		return n
	default:
		return 0
	}
}

func formatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
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
	if af, ok := f.(Attributed); ok {
		if attrs := af.GetAttrs(); attrs != nil {
			dst = appendAttrBlock(dst, attrs)
		}
	}
	return appendBody(dst, f)
}

func appendAttrBlock(dst []byte, m *Map) []byte {
	dst = append(dst, '|')
	dst = strconv.AppendInt(dst, int64(len(m.Pairs)), 10)
	dst = append(dst, '\r', '\n')
	for _, p := range m.Pairs {
		dst = appendFrame(dst, p.Key)
		dst = appendFrame(dst, p.Value)
	}
	return dst
}

func appendBody(dst []byte, f Frame) []byte {
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
		return append(dst, '_', '\r', '\n')
	case Array:
		dst = append(dst, '*')
		dst = strconv.AppendInt(dst, int64(len(v.Items)), 10)
		dst = append(dst, '\r', '\n')
		for _, it := range v.Items {
			dst = appendFrame(dst, it)
		}
		return dst
	case Boolean:
		dst = append(dst, '#')
		if v.Value {
			dst = append(dst, 't')
		} else {
			dst = append(dst, 'f')
		}
		return append(dst, '\r', '\n')
	case Double:
		dst = append(dst, ',')
		dst = append(dst, formatDouble(v.Value)...)
		return append(dst, '\r', '\n')
	case BigNumber:
		dst = append(dst, '(')
		dst = append(dst, v.Value...)
		return append(dst, '\r', '\n')
	case BulkError:
		dst = append(dst, '!')
		dst = strconv.AppendInt(dst, int64(len(v.Value)), 10)
		dst = append(dst, '\r', '\n')
		dst = append(dst, v.Value...)
		return append(dst, '\r', '\n')
	case VerbatimString:
		total := 4 + len(v.Value)
		dst = append(dst, '=')
		dst = strconv.AppendInt(dst, int64(total), 10)
		dst = append(dst, '\r', '\n')
		dst = append(dst, v.Format[:]...)
		dst = append(dst, ':')
		dst = append(dst, v.Value...)
		return append(dst, '\r', '\n')
	case Map:
		dst = append(dst, '%')
		dst = strconv.AppendInt(dst, int64(len(v.Pairs)), 10)
		dst = append(dst, '\r', '\n')
		for _, p := range v.Pairs {
			dst = appendFrame(dst, p.Key)
			dst = appendFrame(dst, p.Value)
		}
		return dst
	case Set:
		dst = append(dst, '~')
		dst = strconv.AppendInt(dst, int64(len(v.Items)), 10)
		dst = append(dst, '\r', '\n')
		for _, it := range v.Items {
			dst = appendFrame(dst, it)
		}
		return dst
	case Push:
		dst = append(dst, '>')
		dst = strconv.AppendInt(dst, int64(len(v.Items)), 10)
		dst = append(dst, '\r', '\n')
		for _, it := range v.Items {
			dst = appendFrame(dst, it)
		}
		return dst
	default:
		panic(respcodec.ErrUnknown)
	}
}
