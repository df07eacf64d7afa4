package cmd

import (
	"strings"
	"testing"

	"github.com/ebookworks/typeset/runtime"
)

func TestRunDoctor_AllToolsPresent(t *testing.T) {
	withTestSeams(t, allTools(), runtime.NewMockExecutor())

	if err := runDoctor(nil, nil); err != nil {
		t.Fatalf("runDoctor() error: %v", err)
	}
}

func TestRunDoctor_MissingToolsFail(t *testing.T) {
	withTestSeams(t, map[string]string{"vim": "/usr/bin/vim"}, runtime.NewMockExecutor())

	err := runDoctor(nil, nil)
	if err == nil {
		t.Fatal("expected error with tools missing")
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error: got %v", err)
	}
}

func TestRunDoctor_MissingExiftoolFails(t *testing.T) {
	tools := allTools()
	delete(tools, "exiftool")
	withTestSeams(t, tools, runtime.NewMockExecutor())

	if err := runDoctor(nil, nil); err == nil {
		t.Fatal("exiftool should be required")
	}
}

func TestRunDoctor_MissingPgrepIsOnlyAWarning(t *testing.T) {
	tools := allTools()
	delete(tools, "pgrep")
	withTestSeams(t, tools, runtime.NewMockExecutor())

	if err := runDoctor(nil, nil); err != nil {
		t.Fatalf("pgrep should not be required: %v", err)
	}
}
