package gzdoom

import (
	"os"

	"github.com/brandonbloom/gzlaunch/internal/inipatch"
)

// Section names gzdoom.ini uses for the directives gzlaunch manages.
const (
	SectionIWADSearch      = "IWADSearch.Directories"
	SectionFileSearch      = "FileSearch.Directories"
	SectionSoundfontSearch = "SoundfontSearch.Directories"
	SectionGlobalSettings  = "GlobalSettings"

	joystickKey = "use_joystick"
)

// PathLine is the search-path directive for dir.
func PathLine(dir string) string {
	return "Path=" + dir
}

// Skeleton is the ini written when none exists yet.
func Skeleton(l Layout, romsDir string) inipatch.Lines {
	return inipatch.Lines{
		inipatch.Marker(SectionIWADSearch),
		PathLine(romsDir),
		inipatch.Marker(SectionFileSearch),
		PathLine(romsDir),
		inipatch.Marker(SectionSoundfontSearch),
		PathLine(l.Soundfonts),
		PathLine(l.FMBanks),
		inipatch.Marker(SectionGlobalSettings),
	}
}

// AddSearchPath makes romDir searchable for both IWADs and add-on files.
func AddSearchPath(romDir string) inipatch.Patch {
	return func(lines inipatch.Lines) inipatch.Lines {
		return inipatch.EnsureLine(lines, PathLine(romDir),
			inipatch.Marker(SectionIWADSearch),
			inipatch.Marker(SectionFileSearch),
		)
	}
}

// AddSoundPaths registers the FM bank and soundfont directories. Each path
// is checked on its own, so the soundfonts line ends up first.
func AddSoundPaths(l Layout) inipatch.Patch {
	marker := inipatch.Marker(SectionSoundfontSearch)
	return func(lines inipatch.Lines) inipatch.Lines {
		lines = inipatch.EnsureLine(lines, PathLine(l.FMBanks), marker)
		return inipatch.EnsureLine(lines, PathLine(l.Soundfonts), marker)
	}
}

// SetJoystick sets use_joystick in [GlobalSettings].
func SetJoystick(enabled bool) inipatch.Patch {
	return func(lines inipatch.Lines) inipatch.Lines {
		return inipatch.SetToggle(lines, SectionGlobalSettings, joystickKey, enabled)
	}
}

// BootstrapINI writes the skeleton when the ini is missing, otherwise makes
// sure romDir is on the search paths.
func BootstrapINI(l Layout, romsDir, romDir string) error {
	ok, err := inipatch.Exists(l.INI)
	if err != nil {
		return err
	}
	if !ok {
		return inipatch.Store(l.INI, Skeleton(l, romsDir))
	}
	_, err = inipatch.Apply(l.INI, AddSearchPath(romDir))
	return err
}

// EnsureSoundPaths patches the soundfont search directories into the ini.
func EnsureSoundPaths(l Layout) error {
	_, err := inipatch.Apply(l.INI, AddSoundPaths(l))
	return err
}

// ApplyJoystick toggles controller support in the ini.
func ApplyJoystick(l Layout, enabled bool) error {
	_, err := inipatch.Apply(l.INI, SetJoystick(enabled))
	return err
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
