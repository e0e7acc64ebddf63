package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/opengm-libs/opengm-crypto/sm4"
)

func newSM4Command() *cobra.Command {
	var keyHex string

	cmd := &cobra.Command{
		Use:   "sm4",
		Short: "Encrypt or decrypt a single SM4 block read from stdin",
	}
	cmd.PersistentFlags().StringVarP(&keyHex, "key", "k", "", "16-byte hex key (required)")

	run := func(decrypt bool) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			key, err := decodeHex(keyHex)
			if err != nil {
				return fmt.Errorf("invalid key: %w", err)
			}
			c, err := sm4.NewCipher(key)
			if err != nil {
				return err
			}

			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			block, err := decodeHex(string(input))
			if err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}
			if len(block) != sm4.BlockSize {
				return fmt.Errorf("input must be exactly %d bytes, got %d", sm4.BlockSize, len(block))
			}

			out := make([]byte, sm4.BlockSize)
			if decrypt {
				c.Decrypt(out, block)
			} else {
				c.Encrypt(out, block)
			}
			fmt.Println(encodeHex(out))
			return nil
		}
	}

	encCmd := &cobra.Command{Use: "enc", Short: "Encrypt a hex-encoded block from stdin", RunE: run(false)}
	decCmd := &cobra.Command{Use: "dec", Short: "Decrypt a hex-encoded block from stdin", RunE: run(true)}
	cmd.AddCommand(encCmd, decCmd)
	return cmd
}
