// Package version reports the gzlaunch build version from module build info.
package version

import (
	"runtime/debug"
	"strings"
)

const devel = "(devel)"

// String returns the tagged module version, or "(devel)" for local,
// dirty, or pseudo-versioned builds. Devel builds append the short VCS
// revision when the toolchain recorded one.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return devel
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) string {
	v := info.Main.Version
	if v != "" && v != devel && !strings.Contains(v, "+dirty") && !isPseudoVersion(v) {
		return v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return devel + " " + s.Value[:7]
		}
	}
	return devel
}

// isPseudoVersion matches vX.Y.Z-<14 digit timestamp>-<12+ hex hash>.
func isPseudoVersion(v string) bool {
	v, _, _ = strings.Cut(v, "+")

	parts := strings.Split(v, "-")
	if len(parts) < 3 {
		return false
	}
	ts := parts[len(parts)-2]
	hash := parts[len(parts)-1]
	if i := strings.LastIndexByte(ts, '.'); i >= 0 {
		ts = ts[i+1:]
	}
	return len(ts) == 14 && strings.Trim(ts, "0123456789") == "" &&
		len(hash) >= 12 && strings.Trim(hash, "0123456789abcdefABCDEF") == ""
}
