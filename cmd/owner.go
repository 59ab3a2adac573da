package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curiolabs/curio/internal/asset"
)

var ownerCmd = &cobra.Command{
	Use:   "owner <id>",
	Short: "Show the account that owns an asset",
	Args:  cobra.ExactArgs(1),
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

		owner, err := reg.OwnerOf(id)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), owner)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ownerCmd)
}
