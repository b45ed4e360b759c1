//go:build linux

package processes

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func listNative(uid int) ([]Process, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrUnsupported
		}
		return nil, err
	}

	procs := make([]Process, 0, len(entries))
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		dir := filepath.Join("/proc", entry.Name())
		owner, err := ownerUID(dir)
		if err != nil || owner != uid {
			continue
		}

		comm, _ := os.ReadFile(filepath.Join(dir, "comm"))
		argv0 := readArgv0(dir)
		if len(comm) == 0 && argv0 == "" {
			continue
		}
		procs = append(procs, Process{
			PID:     pid,
			Command: sanitizeCommand(strings.TrimSpace(string(comm)), pid),
			Argv0:   argv0,
		})
	}

	return procs, nil
}

// ownerUID reads the real uid from the Uid: line of dir/status.
func ownerUID(dir string) (int, error) {
	file, err := os.Open(filepath.Join(dir, "status"))
	if err != nil {
		return 0, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) >= 2 && fields[0] == "Uid:" {
			return strconv.Atoi(fields[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("%s/status: no Uid line", dir)
}

// readArgv0 returns the first NUL-separated field of dir/cmdline, or "" for
// kernel threads and unreadable entries.
func readArgv0(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "cmdline"))
	if err != nil {
		return ""
	}
	argv0, _, _ := bytes.Cut(data, []byte{0})
	return string(argv0)
}
