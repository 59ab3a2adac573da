package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curiolabs/curio/internal/asset"
	"github.com/curiolabs/curio/internal/log"
)

var burnFrom string

var burnCmd = &cobra.Command{
	Use:   "burn <id>",
	Short: "Permanently destroy an asset",
	Long: `Destroy the asset with the given ID. The calling account must own
the asset. Burning erases the asset entirely and frees its attributes
for a future mint.

Example:
  curio burn 4f2a... --from alice`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := asset.ParseID(args[0])
		if err != nil {
			return err
		}

		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := requireOwner(reg, asset.AccountID(burnFrom), id); err != nil {
			return err
		}
		if err := reg.Burn(id); err != nil {
			log.ErrorErr(log.CatCLI, "burn failed", err, "id", id)
			return err
		}

		log.Info(log.CatCLI, "burned", "id", id, "from", burnFrom)
		fmt.Fprintf(cmd.OutOrStdout(), "burned %s\n", id)
		return nil
	},
}

func init() {
	burnCmd.Flags().StringVar(&burnFrom, "from", "", "account performing the burn (must own the asset)")
	_ = burnCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(burnCmd)
}
