package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	colorProgram = color.New(color.FgGreen, color.Bold).SprintFunc()
	colorGood    = color.New(color.FgGreen, color.Bold).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorBad     = color.New(color.FgHiRed, color.Bold).SprintFunc()
	colorDim     = color.New(color.FgHiBlack).SprintFunc()
)

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// paint applies fn only when w is a terminal.
func paint(w io.Writer, fn func(...interface{}) string, s string) string {
	if !writerIsTerminal(w) {
		return s
	}
	return fn(s)
}
