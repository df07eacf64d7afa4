// Package replace drives a terminal editor to perform an interactive
// find/replace across a set of files. The editor does all the work; this
// package only validates the expression and builds the command line.
package replace

import (
	"context"
	"fmt"
	"strings"

	"github.com/ebookworks/typeset/runtime"
	"github.com/ebookworks/typeset/toolchain"
)

// Session is one interactive search/replace run.
type Session struct {
	checker *toolchain.Checker
	exec    runtime.Executor
}

// NewSession wires a session to a tool checker and an executor.
func NewSession(checker *toolchain.Checker, exec runtime.Executor) *Session {
	return &Session{checker: checker, exec: exec}
}

// ValidateExpression checks the `/find/replace/` textual form: a leading
// delimiter, a closing delimiter, and at least three unescaped delimiters
// total. Anything else would splice into the editor macro unpredictably.
func ValidateExpression(expr string) error {
	if len(expr) < 4 {
		return fmt.Errorf("expression %q is too short; expected /find/replace/ form", expr)
	}
	if !strings.HasPrefix(expr, "/") {
		return fmt.Errorf("expression %q must start with /", expr)
	}
	count, closed := scanDelimiters(expr, '/')
	if !closed {
		return fmt.Errorf("expression %q must end with an unescaped /", expr)
	}
	if count < 3 {
		return fmt.Errorf("expression %q must contain a find and a replace section", expr)
	}
	return nil
}

// scanDelimiters counts the unescaped delimiters in s and reports
// whether the final byte is one. A single escape-aware walk, so a
// replacement ending in an escaped backslash still closes correctly.
func scanDelimiters(s string, delim byte) (count int, closed bool) {
	escaped := false
	for i := 0; i < len(s); i++ {
		closed = false
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == delim:
			count++
			closed = i == len(s)-1
		}
	}
	return count, closed
}

// EditorArgs builds the vim argument list: a startup command that runs
// the substitution over every file in the argument list, confirming each
// match (`c` flag) and writing changed buffers, followed by the files.
func EditorArgs(expr string, files []string) []string {
	macro := fmt.Sprintf("+silent! argdo! %%s%sgce | update", expr)
	return append([]string{macro}, files...)
}

// Run preflights the editor, hands the terminal over to it, and returns
// the editor's exit code unchanged.
func (s *Session) Run(ctx context.Context, editor, expr string, files []string) (int, error) {
	if err := ValidateExpression(expr); err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no files given")
	}

	path, err := s.checker.Require(editor)
	if err != nil {
		return 0, err
	}

	return s.exec.Interactive(ctx, path, EditorArgs(expr, files))
}
