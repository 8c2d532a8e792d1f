package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelter/internal/session"
	"github.com/mesh-intelligence/shelter/pkg/types"
)

// listingJSON is the --json shape of one available record.
type listingJSON struct {
	Index int `json:"index"`
	*types.Record
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available pets with their display numbers",
		Long: `List prints every pet that is not adopted, numbered from 1 in store
order. Numbers are recomputed on every run.

Example:
  shelter list
  shelter list --json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	listings := a.catalog.ListAvailable()
	if !flags.jsonMode {
		session.RenderAvailable(cmd.OutOrStdout(), listings)
		return nil
	}

	out := make([]listingJSON, len(listings))
	for i, l := range listings {
		out[i] = listingJSON{Index: l.Index, Record: l.Record}
	}
	return newSystemError(writeJSON(cmd.OutOrStdout(), out))
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
