package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/bunk"
	"github.com/spf13/cobra"
)

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [text...]",
		Short: "Decode pronounceable text to binary data",
		Long: `Decodes the arguments (or stdin if there are none) and writes the
binary data to stdout. With --hex the data is written as hexadecimal text.
Only --checksum has to match the settings used for encoding.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				input, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = string(input)
			}
			data, err := bunk.DecodeWithChecksum(text, opts.settings.Checksum)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.hex {
				_, err = fmt.Fprintln(out, hex.EncodeToString(data))
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}
