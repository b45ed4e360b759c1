package gzdoom

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Graphics describes which GL flavours the system ships.
type Graphics struct {
	GLES   bool
	OpenGL bool
}

// ProbeGraphics looks for GL and GLES client libraries in libDir.
func ProbeGraphics(libDir string) Graphics {
	return Graphics{
		GLES:   fileExists(filepath.Join(libDir, "libGLESv2_CM.so")) || fileExists(filepath.Join(libDir, "libGLESv2.so")),
		OpenGL: fileExists(filepath.Join(libDir, "libGL.so")),
	}
}

// PreferGLES reports whether the engine should be pinned to a GLES context.
func (g Graphics) PreferGLES() bool {
	return g.GLES && !g.OpenGL
}

const scriptMarker = "echo BATOCERA"

// ScriptOptions are the inputs to the startup console script.
type ScriptOptions struct {
	LogDir   string
	ShowFPS  bool
	Graphics Graphics
}

// RenderScript returns the console commands run on every game start.
func RenderScript(opts ScriptOptions) []byte {
	var buf bytes.Buffer
	buf.WriteString("# This file is automatically generated by gzlaunch\n")
	fmt.Fprintf(&buf, "logfile %s\n", filepath.Join(opts.LogDir, "gzdoom.log"))
	fmt.Fprintf(&buf, "vid_fps %t\n", opts.ShowFPS)
	if opts.Graphics.PreferGLES() {
		buf.WriteString("gl_es 1\n")
		buf.WriteString("vid_preferbackend 3\n")
		// mapped buffers are much faster on the GLES drivers we ship
		buf.WriteString("gles_use_mapped_buffer true\n")
	}
	buf.WriteString(scriptMarker + "\n")
	return buf.Bytes()
}

// WriteScript unconditionally replaces the script at path.
func WriteScript(path string, opts ScriptOptions) error {
	if err := atomic.WriteFile(path, bytes.NewReader(RenderScript(opts))); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
