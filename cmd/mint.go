package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/curiolabs/curio/internal/asset"
	"github.com/curiolabs/curio/internal/log"
)

var mintCmd = &cobra.Command{
	Use:   "mint <owner> <key=value>...",
	Short: "Create a new asset from its attributes",
	Long: `Create a new asset from the given attribute set and assign it to
the owner account. The asset ID is the hash of the attributes, so minting
the same attributes twice fails as a duplicate.

Examples:
  curio mint alice series=genesis number=1
  curio mint bob color=blue shape=cube`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner := asset.AccountID(args[0])
		info, err := parseAttributes(args[1:])
		if err != nil {
			return err
		}

		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		id, err := reg.Mint(owner, info)
		if err != nil {
			log.ErrorErr(log.CatCLI, "mint failed", err, "owner", owner)
			return err
		}

		log.Info(log.CatCLI, "minted", "id", id, "owner", owner)
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

// parseAttributes converts key=value arguments into an attribute set.
func parseAttributes(args []string) (asset.Info, error) {
	info := make(asset.Info, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid attribute %q (want key=value)", arg)
		}
		if _, dup := info[key]; dup {
			return nil, fmt.Errorf("duplicate attribute key %q", key)
		}
		info[key] = value
	}
	return info, nil
}

func init() {
	rootCmd.AddCommand(mintCmd)
}
