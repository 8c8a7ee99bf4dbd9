package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unkn0wn-root/respcodec/internal/frameview"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Print a human-readable summary of every frame in a file (or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	views, consumed, decodeErr := decodeViews(data, viper.GetString("revision"))
	out := cmd.OutOrStdout()
	for i, v := range views {
		fmt.Fprintf(out, "#%d %s\n", i, summarizeView(v))
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d frame(s), %s consumed of %s total\n",
		len(views), humanize.Bytes(uint64(consumed)), humanize.Bytes(uint64(len(data))))
	return decodeErr
}

func summarizeView(v frameview.View) string {
	switch v.Kind {
	case "array", "set", "push":
		return fmt.Sprintf("%s(%d items)", v.Kind, len(v.Items))
	case "map":
		return fmt.Sprintf("map(%d pairs)", len(v.Pairs))
	case "integer":
		return fmt.Sprintf("integer(%d)", *v.Int)
	case "boolean":
		return fmt.Sprintf("boolean(%v)", *v.Bool)
	case "double":
		return fmt.Sprintf("double(%v)", *v.Float)
	default:
		if v.Attrs != nil {
			return fmt.Sprintf("%s(%dB) +%d attr(s)", v.Kind, len(v.Bytes), len(v.Attrs))
		}
		return fmt.Sprintf("%s(%dB)", v.Kind, len(v.Bytes))
	}
}
