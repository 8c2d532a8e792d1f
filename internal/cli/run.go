package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelter/internal/session"
)

// adopterName is set by the --name flag on the root and run commands.
var adopterName string

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&adopterName, "name", "", "adopter name (default: adopter from config, else prompt)")
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive adoption menu",
		Long: `Run loads the pet store, seeds the starter pets when it is empty, and
starts the interactive menu. The store is written once, when you choose
"Save & Exit". Closing input ends the session without saving.`,
		Args: cobra.NoArgs,
		RunE: runSession,
	}
	addSessionFlags(cmd)
	return cmd
}

func runSession(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	name := adopterName
	if name == "" {
		name = a.cfg.Adopter
	}

	s := session.New(a.catalog, cmd.InOrStdin(), cmd.OutOrStdout(), session.Options{
		Adopter: name,
		Logger:  a.logger,
		Save: func() error {
			return a.catalog.Save(a.store)
		},
	})
	return newSystemError(s.Run())
}
