package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/ebookworks/typeset/runtime"
)

func TestRunReplace_MissingEditor(t *testing.T) {
	mock := runtime.NewMockExecutor()
	withTestSeams(t, map[string]string{}, mock)

	err := runReplace(nil, []string{"/a/b/", "file.xhtml"})
	if err == nil {
		t.Fatal("expected error for missing editor")
	}
	if !strings.Contains(err.Error(), "vim") {
		t.Errorf("error should name the editor: %v", err)
	}
	if len(mock.InteractiveCalls) != 0 {
		t.Errorf("editor should not have been invoked: %v", mock.InteractiveCalls)
	}
}

func TestRunReplace_CleanEditorExit(t *testing.T) {
	mock := runtime.NewMockExecutor()
	withTestSeams(t, allTools(), mock)

	if err := runReplace(nil, []string{"/a/b/", "file.xhtml"}); err != nil {
		t.Fatalf("runReplace() error: %v", err)
	}
	if len(mock.InteractiveCalls) != 1 {
		t.Fatalf("interactive calls: got %d, want 1", len(mock.InteractiveCalls))
	}
}

func TestRunReplace_PropagatesEditorExitStatus(t *testing.T) {
	mock := runtime.NewMockExecutor()
	mock.ExitCodes["vim"] = 2
	withTestSeams(t, allTools(), mock)

	err := runReplace(nil, []string{"/a/b/", "file.xhtml"})
	if err == nil {
		t.Fatal("expected an exit-status error")
	}

	var exitErr *runtime.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *runtime.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode != 2 {
		t.Errorf("exit code: got %d, want 2", exitErr.ExitCode)
	}
}

func TestRunReplace_InvalidExpression(t *testing.T) {
	mock := runtime.NewMockExecutor()
	withTestSeams(t, allTools(), mock)

	if err := runReplace(nil, []string{"no-delimiters", "file.xhtml"}); err == nil {
		t.Fatal("expected error for invalid expression")
	}
}
