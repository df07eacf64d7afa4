package toolchain

import (
	"fmt"
	"strings"
	"testing"
)

// fakeResolver resolves only the names it knows about.
func fakeResolver(paths map[string]string) Resolver {
	return func(name string) (string, error) {
		if path, ok := paths[name]; ok {
			return path, nil
		}
		return "", fmt.Errorf("executable file not found in $PATH")
	}
}

func TestRequire_Found(t *testing.T) {
	checker := NewChecker(fakeResolver(map[string]string{"vim": "/usr/bin/vim"}))

	path, err := checker.Require("vim")
	if err != nil {
		t.Fatalf("Require() error: %v", err)
	}
	if path != "/usr/bin/vim" {
		t.Errorf("path: got %q", path)
	}
}

func TestRequire_MissingNamesTool(t *testing.T) {
	checker := NewChecker(fakeResolver(nil))

	_, err := checker.Require("firefox")
	if err == nil {
		t.Fatal("expected error for missing tool")
	}
	if !strings.Contains(err.Error(), "firefox") {
		t.Errorf("error should name the missing tool: %v", err)
	}
}

func TestCheck_ReportsAvailableAndMissing(t *testing.T) {
	checker := NewChecker(fakeResolver(map[string]string{
		"vim":   "/usr/bin/vim",
		"pgrep": "/usr/bin/pgrep",
	}))

	report := checker.Check("vim", "firefox", "pgrep")

	if report.OK() {
		t.Error("report should not be OK with firefox missing")
	}
	if len(report.Available) != 2 {
		t.Fatalf("available: got %d, want 2", len(report.Available))
	}
	if report.Available[0].Name != "vim" || report.Available[0].Path != "/usr/bin/vim" {
		t.Errorf("available[0]: got %+v", report.Available[0])
	}
	if len(report.Missing) != 1 || report.Missing[0] != "firefox" {
		t.Errorf("missing: got %v", report.Missing)
	}
}

func TestConverter_PrefersMagick(t *testing.T) {
	checker := NewChecker(fakeResolver(map[string]string{
		"magick":  "/usr/bin/magick",
		"convert": "/usr/bin/convert",
	}))

	path, err := checker.Converter("")
	if err != nil {
		t.Fatalf("Converter() error: %v", err)
	}
	if path != "/usr/bin/magick" {
		t.Errorf("path: got %q, want /usr/bin/magick", path)
	}
}

func TestConverter_FallsBackToConvert(t *testing.T) {
	checker := NewChecker(fakeResolver(map[string]string{"convert": "/usr/bin/convert"}))

	path, err := checker.Converter("")
	if err != nil {
		t.Fatalf("Converter() error: %v", err)
	}
	if path != "/usr/bin/convert" {
		t.Errorf("path: got %q, want /usr/bin/convert", path)
	}
}

func TestConverter_Override(t *testing.T) {
	checker := NewChecker(fakeResolver(map[string]string{"gm": "/opt/gm"}))

	path, err := checker.Converter("gm")
	if err != nil {
		t.Fatalf("Converter() error: %v", err)
	}
	if path != "/opt/gm" {
		t.Errorf("path: got %q, want /opt/gm", path)
	}
}

func TestConverter_NoneInstalled(t *testing.T) {
	checker := NewChecker(fakeResolver(nil))

	_, err := checker.Converter("")
	if err == nil {
		t.Fatal("expected error when no converter is installed")
	}
	if !strings.Contains(err.Error(), "ImageMagick") {
		t.Errorf("error should mention ImageMagick: %v", err)
	}
}
