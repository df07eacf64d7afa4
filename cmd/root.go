// Package cmd implements the typeset CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ebookworks/typeset/config"
	"github.com/ebookworks/typeset/runtime"
	"github.com/ebookworks/typeset/toolchain"
)

var (
	cfgFile       string
	verbose       bool
	themeOverride string

	appVersion = "dev"
)

// Package seams so command tests can run without the real tools.
var (
	toolResolver toolchain.Resolver // nil means exec.LookPath
	newExecutor  = func(log zerolog.Logger) runtime.Executor {
		return runtime.NewOSExecutor(log)
	}
)

var rootCmd = &cobra.Command{
	Use:   "typeset",
	Short: "typeset — ebook production helpers that drive external tools",
	Long: "Typeset wraps the external tools used in ebook production: it drives a\n" +
		"terminal editor for interactive find/replace across files, and a headless\n" +
		"browser plus ImageMagick to rasterize MathML fragments into PNGs.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "typeset.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&themeOverride, "theme", "", "terminal color theme: dark, light, or auto")

	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(mathmlCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(doctorCmd)
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("typeset %s (commit: %s)\n", version, commit))
}

// Execute runs the root command. An ExitError carries a delegated tool's
// exit status through unchanged; everything else exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *runtime.ExitError
		if errors.As(err, &exitErr) {
			// A bare ExitError with no captured stderr is the editor's
			// status passing through; the editor already said its piece.
			if _, bare := err.(*runtime.ExitError); !bare || exitErr.Stderr != "" {
				fmt.Fprintln(os.Stderr, err.Error())
			}
			os.Exit(exitErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// newLogger builds the stderr logger; --verbose lowers the level so the
// executor's spawned command lines become visible.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// loadConfig resolves the --config path against the working directory
// and loads it.
func loadConfig() (*config.Config, error) {
	cfgPath := cfgFile
	if !filepath.IsAbs(cfgPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		cfgPath = filepath.Join(wd, cfgPath)
	}
	return config.Load(cfgPath)
}
