package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unkn0wn-root/respcodec"
	"github.com/unkn0wn-root/respcodec/internal/batch"
	"github.com/unkn0wn-root/respcodec/v2"
	"github.com/unkn0wn-root/respcodec/v3"
)

var batchParallel int

var batchCmd = &cobra.Command{
	Use:   "batch file...",
	Short: "Decode many files concurrently and report per-file results",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&batchParallel, "parallel", 0, "max concurrent decodes (0 = unbounded)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	revision := viper.GetString("revision")
	decode, err := batchDecodeFunc(revision)
	if err != nil {
		return err
	}

	buffers := make([][]byte, len(args))
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		buffers[i] = b
	}

	results, err := batch.DecodeAll(context.Background(), buffers, batchParallel, decode)
	out := cmd.OutOrStdout()
	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "%s: error: %v\n", args[i], r.Err)
			appLogger.Error("batch decode failed", respcodec.Fields{"file": args[i], "error": r.Err.Error()})
			continue
		}
		fmt.Fprintf(out, "%s: ok, %d bytes consumed\n", args[i], r.Remaining)
		appLogger.Info("batch decode ok", respcodec.Fields{"file": args[i], "consumed": r.Remaining})
	}
	fmt.Fprintln(cmd.ErrOrStderr(), batch.Summary(results))
	return err
}

func batchDecodeFunc(revision string) (batch.DecodeFunc, error) {
	switch revision {
	case "v2":
		return func(buf []byte) (any, int, error) {
			f, n, err := v2.Parse(buf)
			return f, n, err
		}, nil
	case "v3":
		return func(buf []byte) (any, int, error) {
			f, n, err := v3.Parse(buf)
			return f, n, err
		}, nil
	default:
		return nil, fmt.Errorf("unknown revision %q (use v2 or v3)", revision)
	}
}
