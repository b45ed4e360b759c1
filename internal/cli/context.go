package cli

import (
	"io"

	"github.com/brandonbloom/gzlaunch/internal/config"
	"github.com/spf13/cobra"
)

func (o *globalOptions) settingsPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.DefaultPath()
}

func (o *globalOptions) loadSettings() (config.Config, error) {
	path, err := o.settingsPath()
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}

// logWriter is where step logging goes; nil unless --verbose.
func (o *globalOptions) logWriter(cmd *cobra.Command) io.Writer {
	if !o.verbose {
		return nil
	}
	return cmd.ErrOrStderr()
}
