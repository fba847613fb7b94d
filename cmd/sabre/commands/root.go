package commands

import (
	"github.com/spf13/cobra"

	"github.com/blockchaintp/sawtooth-sabre/internal/keys"
	"github.com/blockchaintp/sawtooth-sabre/internal/signing"
)

var (
	keyName string
	loader  *keys.Service
)

func Execute() error {
	root := &cobra.Command{
		Use:   "sabre",
		Short: "Sawtooth Sabre signing CLI",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := signing.NewContext()
			loader = keys.New(keys.OSIdentityProvider{}, ctx)
		},
	}

	root.PersistentFlags().StringVarP(&keyName, "key", "k", "", "signing key name (default: current user)")

	root.AddCommand(pubkeyCmd(), signCmd())
	return root.Execute()
}
