package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brandonbloom/gzlaunch/internal/config"
	"github.com/brandonbloom/gzlaunch/internal/gzdoom"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var knownOptions = map[string]string{
	gzdoom.OptShowFPS:  "show the frame counter (boolean)",
	gzdoom.OptNoLogo:   "skip the startup logo (boolean)",
	gzdoom.OptJoystick: `enable GZDoom's own controller support ("True" only)`,
}

func newOptionsCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the option table from the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadSettings()
			if err != nil {
				return err
			}
			printOptions(cmd, cfg.Options)
			return nil
		},
	}
}

func printOptions(cmd *cobra.Command, opts config.Options) {
	keys := opts.Keys()
	for k := range knownOptions {
		if _, ok := opts[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	keyWidth, valueWidth := 0, 0
	for _, k := range keys {
		keyWidth = max(keyWidth, runewidth.StringWidth(k))
		valueWidth = max(valueWidth, runewidth.StringWidth(displayValue(opts, k)))
	}

	out := cmd.OutOrStdout()
	for _, k := range keys {
		line := runewidth.FillRight(k, keyWidth) + "  " + runewidth.FillRight(displayValue(opts, k), valueWidth)
		if desc, ok := knownOptions[k]; ok {
			line += "  " + paint(out, colorDim, desc)
		}
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}
}

func displayValue(opts config.Options, key string) string {
	v, ok := opts.String(key)
	if !ok {
		return "(unset)"
	}
	if v == "" {
		return `""`
	}
	return v
}
