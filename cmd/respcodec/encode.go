package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unkn0wn-root/respcodec/v2"
	"github.com/unkn0wn-root/respcodec/v3"
)

var (
	encodeType  string
	encodeValue string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a single leaf frame from flags and print its wire bytes",
	Long: `Encode builds one leaf frame -- string, error, integer, bulk, null, or
(v3 only) boolean or double -- and writes its wire encoding to stdout. It does
not build containers; use it to hand-craft test fixtures or probe a server
with a single reply.`,
	Args: cobra.NoArgs,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&encodeType, "type", "string", "frame type: string, error, integer, bulk, null, boolean, double")
	encodeCmd.Flags().StringVar(&encodeValue, "value", "", "frame value (ignored for null)")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	revision := viper.GetString("revision")
	switch revision {
	case "v2":
		f, err := buildV2(encodeType, encodeValue)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(v2.Encode(f))
		return err
	case "v3":
		f, err := buildV3(encodeType, encodeValue)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(v3.Encode(f))
		return err
	default:
		return fmt.Errorf("unknown revision %q (use v2 or v3)", revision)
	}
}

func buildV2(typ, value string) (v2.Frame, error) {
	switch typ {
	case "string":
		return v2.SimpleString{Value: []byte(value)}, nil
	case "error":
		return v2.SimpleError{Value: []byte(value)}, nil
	case "bulk":
		return v2.BulkString{Value: []byte(value)}, nil
	case "null":
		return v2.Null{}, nil
	case "integer":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("--value: %w", err)
		}
		return v2.Integer{Value: n}, nil
	default:
		return nil, fmt.Errorf("unsupported --type %q for v2 (use string, error, bulk, null, integer)", typ)
	}
}

func buildV3(typ, value string) (v3.Frame, error) {
	switch typ {
	case "string":
		return v3.SimpleString{Value: []byte(value)}, nil
	case "error":
		return v3.SimpleError{Value: []byte(value)}, nil
	case "bulk":
		return v3.BulkString{Value: []byte(value)}, nil
	case "null":
		return v3.Null{}, nil
	case "integer":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("--value: %w", err)
		}
		return v3.Integer{Value: n}, nil
	case "boolean":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("--value: %w", err)
		}
		return v3.Boolean{Value: b}, nil
	case "double":
		d, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("--value: %w", err)
		}
		return v3.Double{Value: d}, nil
	default:
		return nil, fmt.Errorf("unsupported --type %q for v3 (use string, error, bulk, null, integer, boolean, double)", typ)
	}
}
