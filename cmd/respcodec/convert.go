package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/respcodec"
	"github.com/unkn0wn-root/respcodec/convert"
	"github.com/unkn0wn-root/respcodec/internal/pool"
	"github.com/unkn0wn-root/respcodec/v2"
	"github.com/unkn0wn-root/respcodec/v3"
)

// convertPool reuses a scratch buffer across the many re-encode calls a
// large input file drives, instead of letting each EncodeTo call grow its
// own slice from nil.
var convertPool pool.Pool

var (
	convertFrom string
	convertTo   string
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Re-encode a sequence of frames from one protocol revision to the other",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "v2", "source revision: v2 or v3")
	convertCmd.Flags().StringVar(&convertTo, "to", "v3", "target revision: v2 or v3")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}
	if convertFrom == convertTo {
		return fmt.Errorf("--from and --to must differ (both %q)", convertFrom)
	}

	out := cmd.OutOrStdout()
	switch {
	case convertFrom == "v2" && convertTo == "v3":
		it := v2.NewIterator(data)
		for {
			f, err := it.Next()
			if err != nil {
				return finishIteration(err)
			}
			b := convertPool.EncodeWith(func(dst []byte) []byte { return v3.EncodeTo(dst, convert.ToV3(f)) })
			if _, werr := out.Write(b); werr != nil {
				return werr
			}
		}
	case convertFrom == "v3" && convertTo == "v2":
		it := v3.NewIterator(data)
		for {
			f, err := it.Next()
			if err != nil {
				return finishIteration(err)
			}
			v2f, cerr := convert.ToV2(f)
			if cerr != nil {
				return cerr
			}
			b := convertPool.EncodeWith(func(dst []byte) []byte { return v2.EncodeTo(dst, v2f) })
			if _, werr := out.Write(b); werr != nil {
				return werr
			}
		}
	default:
		return fmt.Errorf("unsupported conversion %q -> %q", convertFrom, convertTo)
	}
}

// finishIteration turns a terminal incomplete-frame condition into a clean
// nil return (trailing partial input at EOF is not an error for a
// file-oriented conversion), and otherwise returns err unchanged.
func finishIteration(err error) error {
	if respcodec.Incomplete(err) {
		return nil
	}
	return err
}
