package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/brandonbloom/gzlaunch/internal/config"
	"github.com/brandonbloom/gzlaunch/internal/gzdoom"
	"github.com/brandonbloom/gzlaunch/internal/processes"
	"github.com/spf13/cobra"
)

func newDoctorCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose settings and environment issues (-v shows passing checks)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, global)
		},
	}
}

type doctorContext struct {
	Config *config.Config
}

type doctorCheck struct {
	Name string
	Fn   func(*doctorContext) error
}

func runDoctor(cmd *cobra.Command, global *globalOptions) error {
	ctx := &doctorContext{}
	checks := []doctorCheck{
		{Name: "settings valid", Fn: func(c *doctorContext) error {
			cfg, err := global.loadSettings()
			if err != nil {
				return err
			}
			c.Config = &cfg
			return nil
		}},
		{Name: "emulator installed", Fn: checkBinary},
		{Name: "config root is a directory", Fn: requireDir(func(cfg *config.Config) string { return cfg.ConfigRoot })},
		{Name: "log dir is a directory", Fn: requireDir(func(cfg *config.Config) string { return cfg.LogDir })},
		{Name: "emulator not already running", Fn: checkNotRunning},
	}

	out := cmd.OutOrStdout()
	var failures []string
	for _, check := range checks {
		err := check.Fn(ctx)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s %s: %v", paint(cmd.ErrOrStderr(), colorBad, "✗"), check.Name, err))
			continue
		}
		if global.verbose {
			fmt.Fprintf(out, "%s %s\n", paint(out, colorGood, "✓"), check.Name)
		}
	}
	if global.verbose && ctx.Config != nil {
		printStatus(cmd, gzdoom.New(*ctx.Config))
	}

	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintln(cmd.ErrOrStderr(), failure)
		}
		return fmt.Errorf("%d doctor checks failed", len(failures))
	}

	fmt.Fprintln(out, "healthy!")
	return nil
}

var errNoSettings = errors.New("settings not loaded")

func checkBinary(ctx *doctorContext) error {
	if ctx.Config == nil {
		return errNoSettings
	}
	if _, err := exec.LookPath(ctx.Config.Binary); err != nil {
		return fmt.Errorf("%s not found on PATH", ctx.Config.Binary)
	}
	return nil
}

func requireDir(pick func(*config.Config) string) func(*doctorContext) error {
	return func(ctx *doctorContext) error {
		if ctx.Config == nil {
			return errNoSettings
		}
		path := pick(ctx.Config)
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", path)
		}
		return nil
	}
}

func checkNotRunning(ctx *doctorContext) error {
	if ctx.Config == nil {
		return errNoSettings
	}
	running, err := processes.Find(ctx.Config.Binary)
	if errors.Is(err, processes.ErrUnsupported) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(running) > 0 {
		return fmt.Errorf("pid %d; finish that session before launching another", running[0].PID)
	}
	return nil
}

func printStatus(cmd *cobra.Command, gen *gzdoom.Generator) {
	out := cmd.OutOrStdout()
	st, err := gen.Status()
	if err != nil {
		fmt.Fprintf(out, "  status unavailable: %v\n", err)
		return
	}
	joystick := "unset"
	if st.JoystickSet {
		joystick = fmt.Sprint(st.Joystick)
	}
	fmt.Fprintf(out, "  %s: ini=%t script=%t use_joystick=%s\n", st.Dir, st.INIExists, st.ScriptExists, joystick)
	fmt.Fprintf(out, "  graphics in %s: gles=%t opengl=%t\n", gen.Config.LibDir, st.Graphics.GLES, st.Graphics.OpenGL)
}
