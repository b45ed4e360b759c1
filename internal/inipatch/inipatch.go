// Package inipatch edits line-oriented pseudo-INI files such as gzdoom.ini by
// literal line matching. Sections are never parsed into key/value pairs and
// lines that are not patched are written back unchanged.
package inipatch

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// Lines is the in-memory form of a file, one entry per line without its
// terminator.
type Lines []string

// Marker returns the section header line for name.
func Marker(name string) string {
	return "[" + name + "]"
}

// Parse splits data into lines. Both \n and \r\n terminators are accepted.
func Parse(data []byte) Lines {
	if len(data) == 0 {
		return Lines{}
	}
	text := strings.TrimSuffix(string(data), "\n")
	parts := strings.Split(text, "\n")
	lines := make(Lines, len(parts))
	for i, part := range parts {
		lines[i] = strings.TrimSuffix(part, "\r")
	}
	return lines
}

// Bytes renders lines with \n terminators, including a trailing newline.
func (l Lines) Bytes() []byte {
	var buf bytes.Buffer
	for _, line := range l {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Contains reports whether line is present verbatim.
func (l Lines) Contains(line string) bool {
	for _, existing := range l {
		if existing == line {
			return true
		}
	}
	return false
}

// Clone returns a copy that can be mutated independently.
func (l Lines) Clone() Lines {
	out := make(Lines, len(l))
	copy(out, l)
	return out
}

// InsertAfterMarker inserts line directly after every occurrence of marker.
// The input is not modified.
func InsertAfterMarker(lines Lines, marker, line string) Lines {
	out := make(Lines, 0, len(lines)+1)
	for _, existing := range lines {
		out = append(out, existing)
		if existing == marker {
			out = append(out, line)
		}
	}
	return out
}

// EnsureLine inserts line after every occurrence of each marker, unless the
// line already appears anywhere in the file.
func EnsureLine(lines Lines, line string, markers ...string) Lines {
	if lines.Contains(line) {
		return lines
	}
	for _, marker := range markers {
		lines = InsertAfterMarker(lines, marker, line)
	}
	return lines
}

// SetToggle makes key=true or key=false the effective boolean setting in
// section. The first key line (either value) inside the section is rewritten
// in place; otherwise the line goes directly after the first section marker;
// otherwise the marker and line are appended. A section runs from its marker
// to the next marker. Comparisons ignore surrounding whitespace.
func SetToggle(lines Lines, section, key string, value bool) Lines {
	want := fmt.Sprintf("%s=%t", key, value)

	out := lines.Clone()
	if i, _, ok := findToggle(out, section, key); ok {
		out[i] = want
		return out
	}

	marker := Marker(section)
	for i, existing := range out {
		if strings.TrimSpace(existing) == marker {
			out = append(out[:i+1], append(Lines{want}, out[i+1:]...)...)
			return out
		}
	}

	return append(out, marker, want)
}

// Toggle reports the value of the first key=true|false line in section.
func Toggle(lines Lines, section, key string) (value bool, ok bool) {
	_, value, ok = findToggle(lines, section, key)
	return value, ok
}

func findToggle(lines Lines, section, key string) (index int, value bool, ok bool) {
	marker := Marker(section)
	inSection := false
	for i, existing := range lines {
		trimmed := strings.TrimSpace(existing)
		if strings.HasPrefix(trimmed, "[") {
			inSection = trimmed == marker
			continue
		}
		if !inSection {
			continue
		}
		switch trimmed {
		case key + "=true":
			return i, true, true
		case key + "=false":
			return i, false, true
		}
	}
	return -1, false, false
}

// Load reads path into lines.
func Load(path string) (Lines, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data), nil
}

// Store atomically replaces path with lines.
func Store(path string, lines Lines) error {
	if err := atomic.WriteFile(path, bytes.NewReader(lines.Bytes())); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists. Errors other than not-exist are
// returned so that permission problems are not mistaken for absence.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Patch is a pure transformation of a file's lines.
type Patch func(Lines) Lines

// Apply loads path, runs patches in order, and stores the result.
func Apply(path string, patches ...Patch) (Lines, error) {
	lines, err := Load(path)
	if err != nil {
		return nil, err
	}
	for _, patch := range patches {
		lines = patch(lines)
	}
	if err := Store(path, lines); err != nil {
		return nil, err
	}
	return lines, nil
}
