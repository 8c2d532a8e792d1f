package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Config prints the configuration after applying config.yaml, SHELTER_*
environment variables, and flags.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return newSystemError(err)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = cfg.ResolvedDataFile()
	}

	if flags.jsonMode {
		return newSystemError(writeJSON(cmd.OutOrStdout(), cfg))
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return newSystemError(fmt.Errorf("marshal config: %w", err))
	}
	_, err = cmd.OutOrStdout().Write(data)
	return newSystemError(err)
}
