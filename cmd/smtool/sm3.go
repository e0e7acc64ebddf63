package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opengm-libs/opengm-crypto/sm3"
)

func newSM3Command() *cobra.Command {
	return &cobra.Command{
		Use:   "sm3 <file>",
		Short: "Compute the SM3 digest of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			sum := sm3.Sum256(data)
			fmt.Println(encodeHex(sum[:]))
			return nil
		},
	}
}
