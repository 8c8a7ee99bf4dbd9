package scanner

import (
	"strconv"

	"github.com/unkn0wn-root/respcodec"
)

// ParseLen parses an ASCII-decimal, optionally signed length/count field.
// It returns respcodec.ErrSyntaxLen on any malformed or overflowing text.
func ParseLen(b []byte) (int64, error) {
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0, respcodec.ErrSyntaxLen
	}
	return n, nil
}
