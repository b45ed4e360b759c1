package gzdoom

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/brandonbloom/gzlaunch/internal/inipatch"
)

// Layout names the files gzlaunch manages under <config_root>/gzdoom.
type Layout struct {
	Dir        string
	INI        string
	Script     string
	Soundfonts string
	FMBanks    string
	Lock       string
}

// NewLayout derives the managed paths from the frontend's config root.
func NewLayout(configRoot string) Layout {
	dir := filepath.Join(configRoot, "gzdoom")
	return Layout{
		Dir:        dir,
		INI:        filepath.Join(dir, "gzdoom.ini"),
		Script:     filepath.Join(dir, "gzdoom.cfg"),
		Soundfonts: filepath.Join(dir, "soundfonts"),
		FMBanks:    filepath.Join(dir, "fm_banks"),
		Lock:       filepath.Join(dir, ".gzlaunch.lock"),
	}
}

// EnsureDirs creates the config directory and its soundfont and FM bank
// subdirectories when they are absent. The config root itself must already
// exist.
func (l Layout) EnsureDirs() error {
	for _, dir := range []string{l.Dir, l.Soundfonts, l.FMBanks} {
		ok, err := inipatch.Exists(dir)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if err := os.Mkdir(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
