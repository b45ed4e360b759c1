package cli

import (
	"fmt"

	"github.com/brandonbloom/gzlaunch/internal/config"
	"github.com/brandonbloom/gzlaunch/internal/gzdoom"
	"github.com/brandonbloom/gzlaunch/internal/inipatch"
	"github.com/spf13/cobra"
)

func newInitCommand(global *globalOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, global, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing settings file")
	return cmd
}

func runInit(cmd *cobra.Command, global *globalOptions, force bool) error {
	path, err := global.settingsPath()
	if err != nil {
		return err
	}
	exists, err := inipatch.Exists(path)
	if err != nil {
		return err
	}
	if exists && !force {
		fmt.Fprintf(cmd.OutOrStdout(), "settings already exist at %s\n", path)
		return nil
	}

	cfg := config.Default()
	cfg.Options = config.Options{
		gzdoom.OptShowFPS:  "0",
		gzdoom.OptNoLogo:   "1",
		gzdoom.OptJoystick: "False",
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default settings to %s\n", path)
	return nil
}
