package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key for the signing identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := loader.NewSigner(keyName)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(signer.PublicKey()))
			return nil
		},
	}
}
