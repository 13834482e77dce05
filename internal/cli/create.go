package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pysu-labs/python-su/internal/config"
	"github.com/pysu-labs/python-su/internal/scaffold"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	dir         onceString
	folder      onceString
	folderIsDir onceBool
	configFile  string
	verbose     bool
}

func (o *options) register(flags *pflag.FlagSet) {
	flags.VarP(&o.dir, "dir", "d", "Create project in the specified `DIRECTORY` (default: working directory)")
	flags.VarP(&o.folder, "folder", "f", "Create project files in the specified `FOLDER` (default: project name)")
	f := flags.VarPF(&o.folderIsDir, "folder-is-dir", "F", "Use the directory as the project folder (not to be used with -f)")
	f.NoOptDefVal = "true"
	flags.StringVar(&o.configFile, "config", "", "Read default settings from a YAML `FILE`")
	flags.BoolVar(&o.verbose, "verbose", false, "Log each step to stderr")
}

// projectConfig merges flag values over file defaults.
func (o *options) projectConfig(name string, defaults *config.Defaults) scaffold.Config {
	cfg := scaffold.Config{
		Directory:         defaults.Dir,
		Folder:            o.folder.value,
		FolderIsDirectory: defaults.FolderIsDir,
		ProjectName:       name,
	}
	if o.dir.set {
		cfg.Directory = o.dir.value
	}
	if o.folderIsDir.set {
		cfg.FolderIsDirectory = o.folderIsDir.value
	}
	return cfg
}

func projectNameArg(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return errors.New("missing required argument: name")
	case len(args) > 1:
		return fmt.Errorf("unknown/duplicate arguments %q", args[1:])
	case args[0] == "":
		return errors.New("project name must not be empty")
	}
	return nil
}

func runCreate(cmd *cobra.Command, opts *options, name string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	defaults, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}

	cfg := opts.projectConfig(name, defaults)
	if cfg.FolderIsDirectory && opts.folder.set {
		logger.Warn("ignoring --folder because the directory is used as the project folder", "folder", opts.folder.value)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	result, err := scaffold.New(cwd, logger).Create(cfg)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), name, result)
	return nil
}

func printResult(w io.Writer, name string, result *scaffold.Result) {
	fmt.Fprintf(w, "Created project %s at %s\n", name, result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
}
