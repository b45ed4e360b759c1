package cli

import (
	"github.com/brandonbloom/gzlaunch/internal/version"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCommand().Execute()
}

type globalOptions struct {
	configPath string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           "gzlaunch",
		Short:         "Prepare GZDoom's config directory and print its launch command",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "settings file (default $GZLAUNCH_CONFIG or the user config dir)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log each step to stderr")

	cmd.AddCommand(
		newGenerateCommand(opts),
		newInitCommand(opts),
		newOptionsCommand(opts),
		newDoctorCommand(opts),
		newVersionCommand(),
	)

	return cmd
}
