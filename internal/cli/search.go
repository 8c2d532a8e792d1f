package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelter/internal/session"
	"github.com/mesh-intelligence/shelter/pkg/types"
)

// validKinds is a comma-separated list of kinds for error output.
var validKinds = func() string {
	names := make([]string, len(types.Kinds))
	for i, k := range types.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}()

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search pets by name or kind",
		Long: `Search prints every pet, adopted or not, that matches exactly.

Example:
  shelter search name Tama
  shelter search kind Bird`,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "name <name>",
		Short: "Search pets by exact name",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearchName,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "kind <Dog|Cat|Bird>",
		Short: "Search pets by kind",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearchKind,
	})
	return cmd
}

func runSearchName(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	found := a.catalog.ByName(args[0])
	if flags.jsonMode {
		return newSystemError(writeJSON(cmd.OutOrStdout(), found))
	}
	session.RenderNameResults(cmd.OutOrStdout(), args[0], found)
	return nil
}

func runSearchKind(cmd *cobra.Command, args []string) error {
	kind, err := types.ParseKind(args[0])
	if err != nil {
		return newUserError("unknown kind %q (valid: %s)", args[0], validKinds)
	}

	a, err := openApp(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	found := a.catalog.ByKind(kind)
	if flags.jsonMode {
		return newSystemError(writeJSON(cmd.OutOrStdout(), found))
	}
	session.RenderKindResults(cmd.OutOrStdout(), args[0], found)
	return nil
}
