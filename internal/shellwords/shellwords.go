// Package shellwords splits and quotes argument strings using POSIX shell
// quoting rules.
package shellwords

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"mvdan.cc/sh/v3/syntax"
)

// Split tokenizes s on whitespace, honoring single quotes, double quotes and
// backslash escapes. Nothing is expanded: $VAR, ~, globs and # are kept as
// literal text. CRLF line endings are treated as plain newlines.
func Split(s string) ([]string, error) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	args, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("split arguments: %w", err)
	}
	return args, nil
}

// Join quotes each argument where needed and joins them with spaces, so
// that Split(Join(args)) == args.
func Join(args []string) (string, error) {
	quoted := make([]string, len(args))
	for i, arg := range args {
		q, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			return "", fmt.Errorf("quote %q: %w", arg, err)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}
