package gzdoom

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/brandonbloom/gzlaunch/internal/shellwords"
)

// LaunchExt marks a ROM whose content is the argument string to pass to the
// engine, rather than an IWAD itself.
const LaunchExt = ".gzdoom"

var (
	// ErrEmptyLaunchFile indicates a .gzdoom file without any arguments.
	ErrEmptyLaunchFile = errors.New("launch file has no arguments")
	// ErrInvalidResolution indicates a non-positive width or height.
	ErrInvalidResolution = errors.New("resolution must be positive")
)

// Resolution is the output size handed to the engine.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidResolution, r.Width, r.Height)
	}
	return nil
}

// Command is the process invocation for the frontend to execute.
type Command struct {
	Args []string
}

// Quote renders the program and its arguments as shell-quoted text.
func (c Command) Quote() (program, args string, err error) {
	if len(c.Args) == 0 {
		return "", "", nil
	}
	if program, err = shellwords.Join(c.Args[:1]); err != nil {
		return "", "", err
	}
	if args, err = shellwords.Join(c.Args[1:]); err != nil {
		return "", "", err
	}
	return program, args, nil
}

// String renders the command as a single shell-quoted line.
func (c Command) String() string {
	program, args, err := c.Quote()
	if err != nil {
		return strings.Join(c.Args, " ")
	}
	return strings.TrimSpace(program + " " + args)
}

// CommandSpec collects what BuildCommand needs.
type CommandSpec struct {
	Binary     string
	ROM        string
	Script     string
	Resolution Resolution
	NoLogo     bool
}

// BuildCommand assembles the engine arguments. A .gzdoom ROM contributes its
// tokenized content; any other ROM is passed as the IWAD by base name, which
// the engine resolves through the ini search paths.
func BuildCommand(spec CommandSpec) (Command, error) {
	if err := spec.Resolution.validate(); err != nil {
		return Command{}, err
	}

	args := []string{spec.Binary}
	if strings.HasSuffix(spec.ROM, LaunchExt) {
		extra, err := launchFileArgs(spec.ROM)
		if err != nil {
			return Command{}, err
		}
		args = append(args, extra...)
	} else {
		args = append(args, "-iwad", filepath.Base(spec.ROM))
	}

	args = append(args,
		"-exec", spec.Script,
		"-width", strconv.Itoa(spec.Resolution.Width),
		"-height", strconv.Itoa(spec.Resolution.Height),
	)
	if spec.NoLogo {
		args = append(args, "-nologo")
	}
	return Command{Args: args}, nil
}

func launchFileArgs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read launch file: %w", err)
	}
	args, err := shellwords.Split(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyLaunchFile)
	}
	return args, nil
}
