// Package gzdoom prepares GZDoom's configuration directory and builds the
// command line used to launch it.
//
// gzdoom.ini is not valid INI, so it is patched through inipatch by literal
// line matching. Every step is safe to repeat: running Generate twice against
// the same ROM leaves the ini unchanged the second time.
package gzdoom

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime/trace"
	"time"

	"github.com/brandonbloom/gzlaunch/internal/config"
	"github.com/brandonbloom/gzlaunch/internal/inipatch"
)

// Option keys read from the per-system option store.
const (
	OptShowFPS  = "showFPS"
	OptNoLogo   = "nologo"
	OptJoystick = "gz_joystick"
)

// DefaultLockTimeout bounds how long Generate waits for a concurrent run.
const DefaultLockTimeout = 10 * time.Second

// Controller is a pad assigned to a player. GZDoom reads input on its own,
// so controllers are accepted for interface parity only.
type Controller struct {
	Index      int
	Name       string
	GUID       string
	DevicePath string
}

// Request is one launch.
type Request struct {
	ROM         string
	Resolution  Resolution
	Options     config.Options
	Controllers []Controller
}

// Generator owns one config root.
type Generator struct {
	Config      config.Config
	Layout      Layout
	LockTimeout time.Duration
	// Log receives a line per step when non-nil.
	Log io.Writer

	probe func(libDir string) Graphics
}

// New returns a Generator for cfg.
func New(cfg config.Config) *Generator {
	return &Generator{
		Config: cfg,
		Layout: NewLayout(cfg.ConfigRoot),
		probe:  ProbeGraphics,
	}
}

// JoystickEnabled reports whether opts turn controller support on. Only the
// exact string "True" does.
func JoystickEnabled(opts config.Options) bool {
	v, ok := opts.String(OptJoystick)
	return ok && v == "True"
}

// Generate prepares the config directory for req and returns the command
// that launches it.
func (g *Generator) Generate(ctx context.Context, req Request) (Command, error) {
	if err := g.Config.Validate(); err != nil {
		return Command{}, err
	}
	opts := g.Config.Options.Merge(req.Options)

	if err := g.step(ctx, "ensure directories", g.Layout.EnsureDirs); err != nil {
		return Command{}, err
	}

	release, err := acquireLock(ctx, g.Layout.Lock, g.LockTimeout)
	if err != nil {
		return Command{}, err
	}
	defer release()

	graphics := g.graphics()
	if graphics.PreferGLES() {
		g.logf("GLES without desktop GL in %s; pinning GLES backend", g.Config.LibDir)
	}
	err = g.step(ctx, "write script", func() error {
		return WriteScript(g.Layout.Script, ScriptOptions{
			LogDir:   g.Config.LogDir,
			ShowFPS:  opts.Bool(OptShowFPS),
			Graphics: graphics,
		})
	})
	if err != nil {
		return Command{}, err
	}

	romDir := filepath.Dir(req.ROM)
	err = g.step(ctx, "bootstrap ini", func() error {
		return BootstrapINI(g.Layout, g.Config.RomsDir, romDir)
	})
	if err != nil {
		return Command{}, err
	}
	if err := g.step(ctx, "sound paths", func() error { return EnsureSoundPaths(g.Layout) }); err != nil {
		return Command{}, err
	}

	joystick := JoystickEnabled(opts)
	err = g.step(ctx, fmt.Sprintf("use_joystick=%t", joystick), func() error {
		return ApplyJoystick(g.Layout, joystick)
	})
	if err != nil {
		return Command{}, err
	}

	var cmd Command
	err = g.step(ctx, "build command", func() error {
		var err error
		cmd, err = BuildCommand(CommandSpec{
			Binary:     g.Config.Binary,
			ROM:        req.ROM,
			Script:     g.Layout.Script,
			Resolution: req.Resolution,
			NoLogo:     opts.Bool(OptNoLogo),
		})
		return err
	})
	if err != nil {
		return Command{}, err
	}
	g.logf("launch: %s", cmd)
	return cmd, nil
}

// Status summarizes what is on disk for the config root.
type Status struct {
	Dir          string
	INIExists    bool
	ScriptExists bool
	Joystick     bool
	JoystickSet  bool
	Graphics     Graphics
}

// Status inspects the managed files without modifying them.
func (g *Generator) Status() (Status, error) {
	st := Status{
		Dir:      g.Layout.Dir,
		Graphics: g.graphics(),
	}
	var err error
	if st.ScriptExists, err = inipatch.Exists(g.Layout.Script); err != nil {
		return Status{}, err
	}
	if st.INIExists, err = inipatch.Exists(g.Layout.INI); err != nil {
		return Status{}, err
	}
	if st.INIExists {
		lines, err := inipatch.Load(g.Layout.INI)
		if err != nil {
			return Status{}, err
		}
		st.Joystick, st.JoystickSet = inipatch.Toggle(lines, SectionGlobalSettings, joystickKey)
	}
	return st, nil
}

func (g *Generator) graphics() Graphics {
	if g.probe == nil {
		return ProbeGraphics(g.Config.LibDir)
	}
	return g.probe(g.Config.LibDir)
}

func (g *Generator) step(ctx context.Context, name string, fn func() error) error {
	g.logf("%s", name)
	var err error
	trace.WithRegion(ctx, name, func() {
		err = fn()
	})
	return err
}

func (g *Generator) logf(format string, args ...any) {
	if g.Log == nil {
		return
	}
	fmt.Fprintf(g.Log, format+"\n", args...)
}
