package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ebookworks/typeset/internal/tui"
	"github.com/ebookworks/typeset/toolchain"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the external tools typeset depends on are installed",
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	checker := toolchain.NewChecker(toolResolver)
	styles := tui.NewStyleSet(tui.DetectTheme(themeOverride))
	printer := tui.NewPrinter(styles, os.Stdout)

	printer.Title("External tools")

	missing := 0
	report := checker.Check(cfg.Editor, cfg.Browser, "exiftool")
	for _, tool := range report.Available {
		printer.OK(tool.Name, tool.Path)
	}
	for _, name := range report.Missing {
		printer.Fail(name, "not found in PATH")
		missing++
	}

	if path, err := checker.Converter(cfg.Magick); err != nil {
		printer.Fail("ImageMagick", "neither magick nor convert found in PATH")
		missing++
	} else {
		printer.OK("ImageMagick", path)
	}

	// pgrep only backs the browser-already-running check; rendering
	// still works without it.
	if pgrep := checker.Check("pgrep"); pgrep.OK() {
		printer.OK("pgrep", pgrep.Available[0].Path)
	} else {
		printer.Warn("pgrep", "not found; the running-browser check will be skipped")
	}

	if missing > 0 {
		return fmt.Errorf("%d required tool(s) missing", missing)
	}
	return nil
}
