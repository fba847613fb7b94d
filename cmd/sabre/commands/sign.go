package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <file>",
		Short: "Sign a file with the signing identity's key (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var message []byte
			var err error
			if args[0] == "-" {
				message, err = io.ReadAll(cmd.InOrStdin())
			} else {
				message, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}

			signer, err := loader.NewSigner(keyName)
			if err != nil {
				return err
			}
			sig, err := signer.Sign(message)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(sig))
			return nil
		},
	}
}
