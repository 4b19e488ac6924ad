package main

import (
	"fmt"

	"github.com/npillmayer/bunk"
	"github.com/spf13/cobra"
)

func newSyllablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "syllables",
		Short: "Print the syllable table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for b := range 256 {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "0x%02x %s\n", b, bunk.Syllable(byte(b))); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
