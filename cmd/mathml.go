package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ebookworks/typeset/internal/tui"
	"github.com/ebookworks/typeset/render"
	"github.com/ebookworks/typeset/toolchain"
)

var mathmlOutput string

var mathmlCmd = &cobra.Command{
	Use:   "mathml [-o FILENAME] FRAGMENT...",
	Short: "Rasterize MathML fragments to cropped, transparent PNGs",
	Long: "Mathml loads each fragment in the headless browser, screenshots it, and\n" +
		"trims the screenshot to a transparent PNG with ImageMagick. With -o a\n" +
		"single fragment is written to the given file; without it, fragments are\n" +
		"written as 1.png, 2.png, ... in the working directory.",
	Example: "  typeset mathml -o equation.png '<math><mi>x</mi></math>'\n" +
		"  typeset mathml '<math><mi>x</mi></math>' '<math><mi>y</mi></math>'",
	Args: cobra.MinimumNArgs(1),
	RunE: runMathml,
}

func init() {
	mathmlCmd.Flags().StringVarP(&mathmlOutput, "output-filename", "o", "", "output PNG path (single fragment only)")
}

func runMathml(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if cmd != nil {
		ctx = cmd.Context()
	}

	log := newLogger()
	renderer, err := render.New(cfg, toolchain.NewChecker(toolResolver), newExecutor(log), log)
	if err != nil {
		return err
	}

	if mathmlOutput != "" {
		if len(args) != 1 {
			return fmt.Errorf("--output-filename accepts exactly one fragment, got %d", len(args))
		}
		if err := renderer.Render(ctx, args[0], mathmlOutput); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", mathmlOutput)
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	if useProgressUI() && len(args) > 1 {
		return runBatchUI(ctx, renderer, args, wd)
	}

	return renderer.RenderBatch(ctx, args, wd, func(index int, outPath string, err error) {
		if err == nil {
			fmt.Printf("wrote %s\n", filepath.Base(outPath))
		}
	})
}

// useProgressUI reports whether the animated batch display should run.
// Verbose mode stays on plain output so executor logs remain readable.
func useProgressUI() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && !verbose
}

func runBatchUI(ctx context.Context, renderer *render.Renderer, fragments []string, dir string) error {
	labels := make([]string, len(fragments))
	for i, fragment := range fragments {
		labels[i] = fmt.Sprintf("%d.png  %s", i+1, truncate(fragment, 48))
	}

	styles := tui.NewStyleSet(tui.DetectTheme(themeOverride))
	model := tui.NewBatch(labels, func(index int) (string, error) {
		outPath := filepath.Join(dir, strconv.Itoa(index+1)+".png")
		if err := renderer.Render(ctx, fragments[index], outPath); err != nil {
			return "", err
		}
		return filepath.Base(outPath), nil
	}, styles)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("running progress display: %w", err)
	}
	return final.(tui.BatchModel).Err()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
