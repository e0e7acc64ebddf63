package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opengm-libs/opengm-crypto/sm2"
)

func newSM2Command() *cobra.Command {
	cmd := &cobra.Command{Use: "sm2", Short: "SM2 key generation, signing, verification, and public-key encryption"}
	cmd.AddCommand(
		newSM2GenKeyCommand(),
		newSM2SignCommand(),
		newSM2VerifyCommand(),
		newSM2EncryptCommand(),
		newSM2DecryptCommand(),
	)
	return cmd
}

func newSM2GenKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "genkey",
		Short: "Generate a new SM2 keypair, printing hex private and public keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := sm2.GenerateKey(rand.Reader)
			if err != nil {
				return err
			}
			d := priv.Bytes()
			pub := priv.Public.Bytes()
			fmt.Println("private:", encodeHex(d[:]))
			fmt.Println("public: ", encodeHex(pub[:]))
			return nil
		},
	}
}

func newSM2SignCommand() *cobra.Command {
	var privHex, message string
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with an SM2 private key",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := decodeHex(privHex)
			if err != nil {
				return fmt.Errorf("invalid private key: %w", err)
			}
			priv, err := sm2.PrivateKeyFromBytes(d)
			if err != nil {
				return err
			}

			e := sm2.DigestMessage(&priv.Public, []byte(message))
			sig, err := sm2.SignWithRand(rand.Reader, e, priv)
			if err != nil {
				return err
			}

			r := sig.R.Bytes()
			s := sig.S.Bytes()
			fmt.Println("r:", encodeHex(r[:]))
			fmt.Println("s:", encodeHex(s[:]))
			return nil
		},
	}
	cmd.Flags().StringVarP(&privHex, "private", "d", "", "32-byte hex private key (required)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to sign")
	return cmd
}

func newSM2VerifyCommand() *cobra.Command {
	var pubHex, message, rHex, sHex string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an SM2 signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			pubBytes, err := decodeHex(pubHex)
			if err != nil {
				return fmt.Errorf("invalid public key: %w", err)
			}
			pub, err := sm2.PublicKeyFromBytes(pubBytes)
			if err != nil {
				return err
			}

			rBytes, err := decodeHex(rHex)
			if err != nil {
				return fmt.Errorf("invalid r: %w", err)
			}
			sBytes, err := decodeHex(sHex)
			if err != nil {
				return fmt.Errorf("invalid s: %w", err)
			}

			var sig sm2.Signature
			if sig.R.SetBytes(rBytes) {
				return fmt.Errorf("r out of range")
			}
			if sig.S.SetBytes(sBytes) {
				return fmt.Errorf("s out of range")
			}

			e := sm2.DigestMessage(pub, []byte(message))
			if sm2.Verify(e, pub, &sig) {
				fmt.Println("ok")
				return nil
			}
			return fmt.Errorf("signature does not verify")
		},
	}
	cmd.Flags().StringVarP(&pubHex, "public", "p", "", "65-byte hex public key (required)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message that was signed")
	cmd.Flags().StringVar(&rHex, "r", "", "signature r component, hex")
	cmd.Flags().StringVar(&sHex, "s", "", "signature s component, hex")
	return cmd
}

func newSM2EncryptCommand() *cobra.Command {
	var pubHex, message string
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message to an SM2 public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			pubBytes, err := decodeHex(pubHex)
			if err != nil {
				return fmt.Errorf("invalid public key: %w", err)
			}
			pub, err := sm2.PublicKeyFromBytes(pubBytes)
			if err != nil {
				return err
			}
			ct, err := sm2.Encrypt(rand.Reader, pub, []byte(message))
			if err != nil {
				return err
			}
			fmt.Println(encodeHex(ct))
			return nil
		},
	}
	cmd.Flags().StringVarP(&pubHex, "public", "p", "", "65-byte hex public key (required)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to encrypt")
	return cmd
}

func newSM2DecryptCommand() *cobra.Command {
	var privHex, ciphertextHex string
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a hex-encoded SM2 ciphertext",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := decodeHex(privHex)
			if err != nil {
				return fmt.Errorf("invalid private key: %w", err)
			}
			priv, err := sm2.PrivateKeyFromBytes(d)
			if err != nil {
				return err
			}
			ciphertext, err := decodeHex(ciphertextHex)
			if err != nil {
				return fmt.Errorf("invalid ciphertext: %w", err)
			}
			plain, err := sm2.Decrypt(priv, ciphertext)
			if err != nil {
				return err
			}
			fmt.Println(string(plain))
			return nil
		},
	}
	cmd.Flags().StringVarP(&privHex, "private", "d", "", "32-byte hex private key (required)")
	cmd.Flags().StringVarP(&ciphertextHex, "ciphertext", "c", "", "hex-encoded ciphertext")
	return cmd
}
