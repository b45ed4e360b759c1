package cli

import (
	"fmt"
	"strings"

	"github.com/brandonbloom/gzlaunch/internal/config"
	"github.com/brandonbloom/gzlaunch/internal/gzdoom"
	"github.com/brandonbloom/gzlaunch/internal/processes"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	width  int
	height int
	set    []string
	format string
}

func newGenerateCommand(global *globalOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate ROM",
		Short: "Patch gzdoom.ini and gzdoom.cfg for ROM and print the launch command",
		Long: `Generate prepares <config_root>/gzdoom for ROM and prints the command
that launches it. A ROM ending in .gzdoom holds the engine arguments to use;
any other ROM is loaded as the IWAD.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, global, opts, args[0])
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", 1920, "output width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 1080, "output height in pixels")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "override an option (key=value, repeatable)")
	cmd.Flags().StringVar(&opts.format, "format", "shell", "output format: shell or lines")
	return cmd
}

func runGenerate(cmd *cobra.Command, global *globalOptions, opts *generateOptions, rom string) error {
	if opts.format != "shell" && opts.format != "lines" {
		return fmt.Errorf("unknown format %q (want shell or lines)", opts.format)
	}
	overrides, err := config.ParseOverrides(opts.set)
	if err != nil {
		return err
	}
	cfg, err := global.loadSettings()
	if err != nil {
		return err
	}

	gen := gzdoom.New(cfg)
	gen.Log = global.logWriter(cmd)
	warnIfRunning(cmd, cfg.Binary)

	launch, err := gen.Generate(cmd.Context(), gzdoom.Request{
		ROM:        rom,
		Resolution: gzdoom.Resolution{Width: opts.width, Height: opts.height},
		Options:    overrides,
	})
	if err != nil {
		return err
	}
	return printCommand(cmd, launch, opts.format)
}

func warnIfRunning(cmd *cobra.Command, binary string) {
	running, err := processes.Find(binary)
	if err != nil || len(running) == 0 {
		return
	}
	pids := make([]string, len(running))
	for i, p := range running {
		pids[i] = fmt.Sprint(p.PID)
	}
	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "%s %s already running (pid %s)\n", paint(w, colorWarn, "warning:"), binary, strings.Join(pids, ", "))
}

func printCommand(cmd *cobra.Command, launch gzdoom.Command, format string) error {
	out := cmd.OutOrStdout()
	if format == "lines" {
		for _, arg := range launch.Args {
			if _, err := fmt.Fprintln(out, arg); err != nil {
				return err
			}
		}
		return nil
	}

	program, args, err := launch.Quote()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s %s\n", paint(out, colorProgram, program), args)
	return err
}
