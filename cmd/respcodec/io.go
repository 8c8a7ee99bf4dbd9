package main

import (
	"fmt"
	"io"
	"os"

	"github.com/unkn0wn-root/respcodec/internal/exportfmt"
	"github.com/unkn0wn-root/respcodec/internal/frameview"
)

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

// maxExportPayload bounds decode size for the export codecs used by the CLI,
// matching exportfmt.LimitCodec's intended use against untrusted input.
const maxExportPayload = 64 << 20

func exportCodec(name string) (exportfmt.Codec[frameview.View], error) {
	switch name {
	case "json":
		return exportfmt.LimitCodec[frameview.View]{Inner: exportfmt.JSON[frameview.View]{}, MaxDecode: maxExportPayload}, nil
	case "msgpack":
		return exportfmt.LimitCodec[frameview.View]{Inner: exportfmt.Msgpack[frameview.View]{}, MaxDecode: maxExportPayload}, nil
	case "cbor":
		c, err := exportfmt.NewCBOR[frameview.View](false)
		if err != nil {
			return nil, err
		}
		return exportfmt.LimitCodec[frameview.View]{Inner: c, MaxDecode: maxExportPayload}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (use json, msgpack, or cbor)", name)
	}
}
