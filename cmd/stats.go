package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curiolabs/curio/internal/asset"
)

var statsCmd = &cobra.Command{
	Use:   "stats [account]",
	Short: "Show registry counters",
	Long: `Show the number of live and burned assets. With an account
argument, also show how many assets that account owns.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		total, err := reg.Total()
		if err != nil {
			return err
		}
		burned, err := reg.Burned()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "total:  %s\n", total)
		fmt.Fprintf(out, "burned: %s\n", burned)

		if len(args) == 1 {
			owner := asset.AccountID(args[0])
			count, err := reg.TotalForAccount(owner)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %d\n", owner, count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
