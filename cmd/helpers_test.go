package cmd

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ebookworks/typeset/runtime"
)

// withTestSeams points the command package at a fake resolver and a mock
// executor, and at a config path whose file does not exist (defaults).
func withTestSeams(t *testing.T, tools map[string]string, mock *runtime.MockExecutor) {
	t.Helper()

	oldResolver := toolResolver
	toolResolver = func(name string) (string, error) {
		if path, ok := tools[name]; ok {
			return path, nil
		}
		return "", fmt.Errorf("executable file not found in $PATH")
	}
	t.Cleanup(func() { toolResolver = oldResolver })

	oldExecutor := newExecutor
	newExecutor = func(log zerolog.Logger) runtime.Executor { return mock }
	t.Cleanup(func() { newExecutor = oldExecutor })

	oldCfg := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "typeset.yaml")
	t.Cleanup(func() { cfgFile = oldCfg })
}

func allTools() map[string]string {
	return map[string]string{
		"vim":      "/usr/bin/vim",
		"firefox":  "/usr/bin/firefox",
		"magick":   "/usr/bin/magick",
		"exiftool": "/usr/bin/exiftool",
		"pgrep":    "/usr/bin/pgrep",
	}
}
