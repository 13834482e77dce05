package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pysu-labs/python-su/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [flags] name",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a project folder holding a <name>.py source stub
and a <name>.bat launcher script.

By default the folder is ./<name>. Existing folders and files are never
overwritten.`,
		Example: `  ` + branding.CLIName() + ` demo
  ` + branding.CLIName() + ` -d /tmp/x -f proj demo
  ` + branding.CLIName() + ` -d ./existing -F demo`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, buildCommit, buildDate),
		Args:          projectNameArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, opts, args[0])
		},
	}

	opts.register(cmd.Flags())
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()

	return cmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return execute(newRootCmd(), os.Args[1:])
}

func execute(cmd *cobra.Command, args []string) error {
	// Help wins over every other argument, valid or not.
	if wantsHelp(args) {
		return cmd.Help()
	}

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		w := cmd.ErrOrStderr()
		fmt.Fprintf(w, "Error: %v.\n\n", err)
		fmt.Fprint(w, cmd.UsageString())
		return err
	}
	return nil
}

func wantsHelp(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-h" || a == "--help" {
			return true
		}
	}
	return false
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
