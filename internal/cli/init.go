package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelter/pkg/store"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize shelter configuration and storage",
		Long: `Init creates the configuration directory with a default config.yaml and,
when the configured store holds no pets, writes the starter pets to it.
Running init again leaves existing data untouched.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.catalog.SeedDefaults() {
		if err := a.catalog.Save(a.store); err != nil {
			return newSystemError(fmt.Errorf("initialize storage: %w", err))
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Shelter initialized: %s (%d pets)\n", store.Path(a.cfg), a.catalog.Len())
	return nil
}
