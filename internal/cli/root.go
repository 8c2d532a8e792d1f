// Package cli implements the shelter command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

var flags rootFlags

// NewRootCmd creates the top-level "shelter" command with global flags
// and all subcommands registered. Running it without a subcommand starts
// the interactive session.
func NewRootCmd() *cobra.Command {
	flags = rootFlags{}
	adopterName = ""

	root := &cobra.Command{
		Use:   "shelter",
		Short: "An interactive pet adoption inventory",
		Long: `Shelter lists, searches, adopts, and returns adoptable animals and keeps
them in a flat text file (or a SQLite database).

Run without a subcommand to start the interactive menu.`,
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runSession,
	}
	addSessionFlags(root)

	// Global persistent flags.
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir/shelter)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: current directory)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return execute(NewRootCmd(), os.Args[1:], os.Stderr)
}

func execute(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// userError marks failures caused by the caller's input.
type userError struct {
	err error
}

func (e *userError) Error() string { return e.err.Error() }
func (e *userError) Unwrap() error { return e.err }

func newUserError(format string, args ...any) error {
	return &userError{err: fmt.Errorf(format, args...)}
}

// exitCode maps an error to a process exit code. Unmarked errors come from
// cobra's argument and flag parsing and count as user errors.
func exitCode(err error) int {
	var ue *userError
	if errors.As(err, &ue) {
		return exitUserError
	}
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// systemError marks failures of the environment: config, storage, I/O.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func newSystemError(err error) error {
	if err == nil {
		return nil
	}
	return &systemError{err: err}
}
