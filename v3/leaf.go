package v3

import (
	"strconv"

	"github.com/unkn0wn-root/respcodec"
)

func parseBoolean(b []byte) (bool, error) {
	if len(b) == 1 {
		switch b[0] {
		case 't':
			return true, nil
		case 'f':
			return false, nil
		}
	}
	return false, respcodec.ErrInvalidBoolean
}

func parseDouble(b []byte) (float64, error) {
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return 0, respcodec.ErrSyntaxLen
	}
	return v, nil
}

func validateBigNumber(b []byte) error {
	i := 0
	if len(b) > 0 && (b[0] == '-' || b[0] == '+') {
		i = 1
	}
	if i >= len(b) {
		return respcodec.ErrSyntaxLen
	}
	for ; i < len(b); i++ {
		if b[i] < '0' || b[i] > '9' {
			return respcodec.ErrSyntaxLen
		}
	}
	return nil
}

func parseVerbatim(b []byte) (VerbatimString, error) {
	if len(b) < 4 || b[3] != ':' {
		return VerbatimString{}, respcodec.ErrUnknown
	}
	var format [3]byte
	copy(format[:], b[:3])
	return VerbatimString{Format: format, Value: b[4:]}, nil
}
