package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/curiolabs/curio/internal/asset"
)

var listCmd = &cobra.Command{
	Use:   "list <account>",
	Short: "List the assets an account owns",
	Long: `List the assets the account currently owns, in ascending ID order,
with their identity attributes. Prints nothing for an unknown account.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner := asset.AccountID(args[0])

		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		out := cmd.OutOrStdout()
		for item := range reg.Assets(owner) {
			fmt.Fprintln(out, item.ID)

			keys := make([]string, 0, len(item.Info))
			for key := range item.Info {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(out, "  %s: %s\n", key, item.Info[key])
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
