package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curiolabs/curio/internal/asset"
	"github.com/curiolabs/curio/internal/log"
)

var transferFrom string

var transferCmd = &cobra.Command{
	Use:   "transfer <new-owner> <id>",
	Short: "Transfer an asset to another account",
	Long: `Reassign the asset with the given ID to a new owner. The calling
account must currently own the asset. Transferring an asset to its current
owner succeeds and changes nothing.

Example:
  curio transfer bob 4f2a... --from alice`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		newOwner := asset.AccountID(args[0])
		id, err := asset.ParseID(args[1])
		if err != nil {
			return err
		}

		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := requireOwner(reg, asset.AccountID(transferFrom), id); err != nil {
			return err
		}
		if err := reg.Transfer(newOwner, id); err != nil {
			log.ErrorErr(log.CatCLI, "transfer failed", err, "id", id, "to", newOwner)
			return err
		}

		log.Info(log.CatCLI, "transferred", "id", id, "from", transferFrom, "to", newOwner)
		fmt.Fprintf(cmd.OutOrStdout(), "transferred %s to %s\n", id, newOwner)
		return nil
	},
}

func init() {
	transferCmd.Flags().StringVar(&transferFrom, "from", "", "account performing the transfer (must own the asset)")
	_ = transferCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(transferCmd)
}
