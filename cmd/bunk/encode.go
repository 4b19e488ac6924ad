package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/bunk"
	"github.com/spf13/cobra"
)

func newEncodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode binary data as pronounceable text",
		Long: `Reads binary data from file (or stdin if file is missing or "-") and
prints its encoding. With --hex the input is read as hexadecimal text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if opts.hex {
				if data, err = hex.DecodeString(string(bytes.Join(bytes.Fields(data), nil))); err != nil {
					return fmt.Errorf("invalid hex input: %w", err)
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), bunk.EncodeWithSettings(data, opts.settings))
			return err
		},
	}
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
