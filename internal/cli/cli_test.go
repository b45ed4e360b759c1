package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/brandonbloom/gzlaunch/internal/config"
	"github.com/brandonbloom/gzlaunch/internal/shellwords"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("GZLAUNCH_PROCESS_TEST_DATA", "[]")
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSettings(t *testing.T, options string) (settingsPath, configRoot string) {
	t.Helper()
	dir := t.TempDir()
	configRoot = filepath.Join(dir, "configs")
	settingsPath = filepath.Join(dir, "config.toml")
	data := fmt.Sprintf("config_root = %q\nlog_dir = %q\nlib_dir = %q\n\n[options]\n%s",
		configRoot, filepath.Join(dir, "logs"), filepath.Join(dir, "lib"), options)
	if err := os.WriteFile(settingsPath, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(configRoot, 0o755); err != nil {
		t.Fatal(err)
	}
	return settingsPath, configRoot
}

func TestGenerateLines(t *testing.T) {
	settings, root := writeSettings(t, "nologo = \"1\"\n")

	out, _, err := runCLI(t, "--config", settings, "generate", "--format", "lines", "/roms/doom/doom2.wad")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := []string{
		"gzdoom", "-iwad", "doom2.wad",
		"-exec", filepath.Join(root, "gzdoom", "gzdoom.cfg"),
		"-width", "1920", "-height", "1080",
		"-nologo",
	}
	got := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("generate output = %#v, want %#v", got, want)
	}
	if _, err := os.Stat(filepath.Join(root, "gzdoom", "fm_banks")); err != nil {
		t.Fatalf("fm_banks not created: %v", err)
	}
}

func TestGenerateShellQuotesAndOverrides(t *testing.T) {
	settings, _ := writeSettings(t, "nologo = \"1\"\n")
	romDir := filepath.Join(t.TempDir(), "my roms")
	if err := os.MkdirAll(romDir, 0o755); err != nil {
		t.Fatal(err)
	}
	rom := filepath.Join(romDir, "sigil.gzdoom")
	if err := os.WriteFile(rom, []byte(`-iwad doom.wad -file "SIGIL v1_21.wad"`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, "--config", settings, "generate", "--set", "nologo=0", "--width", "640", "--height", "400", rom)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	args, err := shellwords.Split(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("output %q is not a valid shell line: %v", out, err)
	}
	if len(args) != 11 || args[4] != "SIGIL v1_21.wad" || args[8] != "640" || args[10] != "400" {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestGenerateVerboseLogsToStderr(t *testing.T) {
	settings, _ := writeSettings(t, "")
	_, stderr, err := runCLI(t, "--config", settings, "-v", "generate", "/roms/doom/doom.wad")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(stderr, "bootstrap ini") {
		t.Fatalf("expected step log on stderr, got %q", stderr)
	}
}

func TestGenerateWarnsWhenRunning(t *testing.T) {
	settings, _ := writeSettings(t, "")
	cmd := newRootCommand()
	t.Setenv("GZLAUNCH_PROCESS_TEST_DATA", `[{"pid": 4242, "command": "gzdoom"}]`)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--config", settings, "generate", "/roms/doom/doom.wad"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(stderr.String(), "pid 4242") {
		t.Fatalf("expected running warning, got %q", stderr.String())
	}
}

func TestGenerateMissingConfigRoot(t *testing.T) {
	settings, root := writeSettings(t, "")
	if err := os.Remove(root); err != nil {
		t.Fatal(err)
	}
	if _, _, err := runCLI(t, "--config", settings, "generate", "/roms/doom/doom.wad"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("generate error = %v, want not-exist", err)
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	settings, _ := writeSettings(t, "")
	cases := [][]string{
		{"generate", "--format", "json", "/roms/doom/doom.wad"},
		{"generate", "--set", "nologo", "/roms/doom/doom.wad"},
		{"generate", "--width", "0", "/roms/doom/doom.wad"},
		{"generate"},
	}
	for _, args := range cases {
		if _, _, err := runCLI(t, append([]string{"--config", settings}, args...)...); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestInitWritesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gzlaunch", "config.toml")

	out, _, err := runCLI(t, "--config", path, "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Wrote default settings") {
		t.Fatalf("unexpected output %q", out)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v, _ := cfg.Options.String("gz_joystick"); v != "False" {
		t.Fatalf("gz_joystick = %q", v)
	}

	out, _, err = runCLI(t, "--config", path, "init")
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if !strings.Contains(out, "already exist") {
		t.Fatalf("expected existing notice, got %q", out)
	}
}

func TestOptionsListing(t *testing.T) {
	settings, _ := writeSettings(t, "showFPS = \"1\"\ncustom = \"x\"\n")
	out, _, err := runCLI(t, "--config", settings, "options")
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	want := []string{
		"custom       x",
		`gz_joystick  (unset)  enable GZDoom's own controller support ("True" only)`,
		"nologo       (unset)  skip the startup logo (boolean)",
		"showFPS      1        show the frame counter (boolean)",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("options output =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestDoctorReportsFailures(t *testing.T) {
	settings, root := writeSettings(t, "")
	if err := os.Remove(root); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", t.TempDir())

	_, stderr, err := runCLI(t, "--config", settings, "doctor")
	if err == nil {
		t.Fatalf("expected doctor to fail")
	}
	for _, want := range []string{"emulator installed", "config root is a directory", "log dir is a directory"} {
		if !strings.Contains(stderr, want) {
			t.Fatalf("expected %q in %q", want, stderr)
		}
	}
	if strings.Contains(stderr, "settings valid") {
		t.Fatalf("settings check should pass: %q", stderr)
	}
}

func TestDoctorHealthy(t *testing.T) {
	settings, _ := writeSettings(t, "")
	bin := t.TempDir()
	if err := os.WriteFile(filepath.Join(bin, "gzdoom"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin)
	if err := os.Mkdir(filepath.Join(filepath.Dir(settings), "logs"), 0o755); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, "--config", settings, "doctor", "-v")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !strings.Contains(out, "✓ emulator not already running") || !strings.Contains(out, "use_joystick=unset") || !strings.HasSuffix(out, "healthy!\n") {
		t.Fatalf("unexpected doctor output %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "gzlaunch version ") {
		t.Fatalf("unexpected version output %q", out)
	}
}
