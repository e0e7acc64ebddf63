package main

import (
	"crypto/cipher"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/opengm-libs/opengm-crypto/modes"
	"github.com/opengm-libs/opengm-crypto/sm4"
)

func newGCMCommand() *cobra.Command {
	var keyHex, nonceHex, aadHex string

	cmd := &cobra.Command{Use: "gcm", Short: "Seal or open SM4-GCM AEAD frames read from stdin"}
	cmd.PersistentFlags().StringVarP(&keyHex, "key", "k", "", "16-byte hex key (required)")
	cmd.PersistentFlags().StringVarP(&nonceHex, "nonce", "n", "", "hex nonce (required)")
	cmd.PersistentFlags().StringVarP(&aadHex, "aad", "a", "", "hex additional authenticated data")

	setup := func() (cipher.AEAD, []byte, []byte, error) {
		key, err := decodeHex(keyHex)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("invalid key: %w", err)
		}
		nonce, err := decodeHex(nonceHex)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("invalid nonce: %w", err)
		}
		var aad []byte
		if aadHex != "" {
			aad, err = decodeHex(aadHex)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("invalid aad: %w", err)
			}
		}
		block, err := sm4.NewCipher(key)
		if err != nil {
			return nil, nil, nil, err
		}
		g, err := modes.NewGCMWithNonceSize(block, len(nonce))
		if err != nil {
			return nil, nil, nil, err
		}
		return g, nonce, aad, nil
	}

	sealCmd := &cobra.Command{
		Use:   "seal",
		Short: "Seal hex plaintext from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, nonce, aad, err := setup()
			if err != nil {
				return err
			}
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			plaintext, err := decodeHex(string(input))
			if err != nil {
				return fmt.Errorf("invalid plaintext: %w", err)
			}
			fmt.Println(encodeHex(g.Seal(nil, nonce, plaintext, aad)))
			return nil
		},
	}

	openCmd := &cobra.Command{
		Use:   "open",
		Short: "Open hex ciphertext+tag from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, nonce, aad, err := setup()
			if err != nil {
				return err
			}
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			ciphertext, err := decodeHex(string(input))
			if err != nil {
				return fmt.Errorf("invalid ciphertext: %w", err)
			}
			plain, err := g.Open(nil, nonce, ciphertext, aad)
			if err != nil {
				return err
			}
			fmt.Println(encodeHex(plain))
			return nil
		},
	}

	cmd.AddCommand(sealCmd, openCmd)
	return cmd
}
