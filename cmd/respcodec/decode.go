package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unkn0wn-root/respcodec"
	"github.com/unkn0wn-root/respcodec/internal/exportfmt"
	"github.com/unkn0wn-root/respcodec/internal/frameview"
	"github.com/unkn0wn-root/respcodec/v2"
	"github.com/unkn0wn-root/respcodec/v3"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a sequence of frames from a file (or stdin) and print each one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	format := viper.GetString("format")
	if format == "raw" {
		return decodeRaw(data, viper.GetString("revision"))
	}

	codec, err := exportCodec(format)
	if err != nil {
		return err
	}

	views, consumed, err := decodeViews(data, viper.GetString("revision"))
	for _, v := range views {
		b, encErr := codec.Encode(v)
		if encErr != nil {
			return encErr
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "decoded %d frame(s), %s consumed\n", len(views), humanize.Bytes(uint64(consumed)))
	if err != nil {
		return err
	}
	return nil
}

// decodeViews decodes every complete top-level frame in data, stopping
// (without error) at the first ErrNotComplete -- a decode stream is
// expected to trail off at a frame boundary when fed a file rather than a
// live connection.
func decodeViews(data []byte, revision string) ([]frameview.View, int, error) {
	switch revision {
	case "v2":
		it := v2.NewIterator(data)
		var views []frameview.View
		for {
			f, err := it.Next()
			if err != nil {
				if respcodec.Incomplete(err) {
					return views, it.Remaining(), nil
				}
				return views, it.Remaining(), err
			}
			views = append(views, frameview.FromV2(f))
		}
	case "v3":
		it := v3.NewIterator(data)
		var views []frameview.View
		for {
			f, err := it.Next()
			if err != nil {
				if respcodec.Incomplete(err) {
					return views, it.Remaining(), nil
				}
				return views, it.Remaining(), err
			}
			views = append(views, frameview.FromV3(f))
		}
	default:
		return nil, 0, fmt.Errorf("unknown revision %q (use v2 or v3)", revision)
	}
}

// decodeRaw writes each frame's exact wire-byte span to stdout, skipping
// frameview entirely -- the raw format is for piping straight into another
// RESP consumer, not for display.
func decodeRaw(data []byte, revision string) error {
	spans, consumed, err := decodeRawSpans(data, revision)
	codec := exportfmt.Bytes{}
	for _, span := range spans {
		b, encErr := codec.Encode(span)
		if encErr != nil {
			return encErr
		}
		if _, werr := os.Stdout.Write(b); werr != nil {
			return werr
		}
	}
	fmt.Fprintf(os.Stderr, "decoded %d frame(s), %s consumed\n", len(spans), humanize.Bytes(uint64(consumed)))
	return err
}

// decodeRawSpans walks the frame stream purely to find frame boundaries,
// anchored at each Iterator.Remaining() call, and returns the untouched
// sub-slices of data rather than any decoded representation.
func decodeRawSpans(data []byte, revision string) ([][]byte, int, error) {
	var spans [][]byte
	prev := 0
	switch revision {
	case "v2":
		it := v2.NewIterator(data)
		for {
			_, err := it.Next()
			if err != nil {
				if respcodec.Incomplete(err) {
					return spans, it.Remaining(), nil
				}
				return spans, it.Remaining(), err
			}
			end := it.Remaining()
			spans = append(spans, data[prev:end])
			prev = end
		}
	case "v3":
		it := v3.NewIterator(data)
		for {
			_, err := it.Next()
			if err != nil {
				if respcodec.Incomplete(err) {
					return spans, it.Remaining(), nil
				}
				return spans, it.Remaining(), err
			}
			end := it.Remaining()
			spans = append(spans, data[prev:end])
			prev = end
		}
	default:
		return nil, 0, fmt.Errorf("unknown revision %q (use v2 or v3)", revision)
	}
}
