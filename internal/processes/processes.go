// Package processes lists the current user's running processes. gzlaunch
// uses it to notice an emulator that is still running from a previous launch.
package processes

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	ErrUnsupported         = errors.New("process detection unsupported")
	testDataInlineEnv      = "GZLAUNCH_PROCESS_TEST_DATA"
	testDataFileEnv        = "GZLAUNCH_PROCESS_TEST_DATA_FILE"
	minimumCommandFallback = "process"
)

// commLen is the longest name the kernel keeps in /proc/<pid>/comm.
const commLen = 15

// Process is one running program. Command is the kernel's short name and may
// be truncated; Argv0 is the first element of the command line, if readable.
type Process struct {
	PID     int    `json:"pid"`
	Command string `json:"command"`
	Argv0   string `json:"argv0,omitempty"`
}

func List() ([]Process, error) {
	if procs, ok, err := fromTestData(); err != nil || ok {
		return procs, err
	}
	return listNative(os.Getuid())
}

// Find returns processes running binary, compared by base name.
func Find(binary string) ([]Process, error) {
	procs, err := List()
	if err != nil {
		return nil, err
	}
	name := filepath.Base(binary)
	var matches []Process
	for _, p := range procs {
		if p.runs(name) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (p Process) runs(name string) bool {
	if p.Argv0 != "" {
		return filepath.Base(p.Argv0) == name
	}
	if len(name) > commLen {
		name = name[:commLen]
	}
	return p.Command == name
}

func fromTestData() ([]Process, bool, error) {
	if path := os.Getenv(testDataFileEnv); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, true, fmt.Errorf("read %s: %w", path, err)
		}
		procs, err := decodeTestData(data)
		return procs, true, err
	}
	if data := os.Getenv(testDataInlineEnv); data != "" {
		procs, err := decodeTestData([]byte(data))
		return procs, true, err
	}
	return nil, false, nil
}

func decodeTestData(data []byte) ([]Process, error) {
	var procs []Process
	if err := json.Unmarshal(data, &procs); err != nil {
		return nil, fmt.Errorf("parse process test data: %w", err)
	}
	return procs, nil
}

func sanitizeCommand(cmd string, pid int) string {
	if cmd != "" {
		return cmd
	}
	return fmt.Sprintf("%s-%d", minimumCommandFallback, pid)
}
