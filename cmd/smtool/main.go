// Command smtool exercises the primitives in this module from the
// command line: hashing, block/AEAD encryption, and SM2 key management,
// signing, verification, and public-key encryption.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "smtool",
		Short: "GM/T commercial cipher suite command-line tool",
		Long: `smtool exercises the sm2, sm3, sm4, and modes packages directly.
All binary input and output is hex-encoded.

  smtool sm3 <file>
  smtool sm4 enc|dec -k KEY
  smtool gcm seal|open -k KEY -n NONCE [-a AAD]
  smtool sm2 genkey|sign|verify|encrypt|decrypt`,
		SilenceUsage: true,
	}

	root.AddCommand(newSM3Command())
	root.AddCommand(newSM4Command())
	root.AddCommand(newGCMCommand())
	root.AddCommand(newSM2Command())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "smtool:", err)
		os.Exit(1)
	}
}
