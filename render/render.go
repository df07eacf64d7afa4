// Package render rasterizes MathML fragments into cropped, transparent
// PNGs. A headless browser takes the screenshot and ImageMagick trims
// it; this package sequences the two and owns the temp-file lifecycle.
package render

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ebookworks/typeset/config"
	"github.com/ebookworks/typeset/runtime"
	"github.com/ebookworks/typeset/toolchain"
)

// BrowserRunningError reports that the browser has a live session. The
// screenshot flag silently attaches to an existing session instead of
// rendering, so this is checked before any output is written.
type BrowserRunningError struct {
	Browser string
}

func (e *BrowserRunningError) Error() string {
	return fmt.Sprintf("%s is already running; close it before rasterizing", e.Browser)
}

// Renderer turns MathML fragments into PNG files.
type Renderer struct {
	browser     string // resolved path
	browserName string // process name for the running check
	converter   string
	windowSize  string
	timeout     time.Duration

	exec runtime.Executor
	log  zerolog.Logger
}

// New preflights the browser and converter and returns a ready Renderer.
// A missing tool fails here, before any work is attempted.
func New(cfg *config.Config, checker *toolchain.Checker, exec runtime.Executor, log zerolog.Logger) (*Renderer, error) {
	browser, err := checker.Require(cfg.Browser)
	if err != nil {
		return nil, err
	}
	converter, err := checker.Converter(cfg.Magick)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		browser:     browser,
		browserName: filepath.Base(cfg.Browser),
		converter:   converter,
		windowSize:  cfg.WindowSize,
		timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
		exec:        exec,
		log:         log,
	}, nil
}

// Render rasterizes one fragment into the PNG at outPath.
func (r *Renderer) Render(ctx context.Context, fragment, outPath string) error {
	if err := r.ensureBrowserFree(ctx); err != nil {
		return err
	}
	return r.renderOne(ctx, fragment, outPath)
}

// RenderBatch rasterizes fragments into incrementally numbered PNGs
// (1.png, 2.png, ...) in dir. The progress callback, when non-nil, is
// invoked after each fragment. Rendering stops at the first failure.
func (r *Renderer) RenderBatch(ctx context.Context, fragments []string, dir string, progress func(index int, outPath string, err error)) error {
	if err := r.ensureBrowserFree(ctx); err != nil {
		return err
	}

	for i, fragment := range fragments {
		outPath := filepath.Join(dir, strconv.Itoa(i+1)+".png")
		err := r.renderOne(ctx, fragment, outPath)
		if progress != nil {
			progress(i, outPath, err)
		}
		if err != nil {
			return fmt.Errorf("fragment %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *Renderer) ensureBrowserFree(ctx context.Context) error {
	running, err := r.exec.ProcessRunning(ctx, r.browserName)
	if err != nil {
		return err
	}
	if running {
		return &BrowserRunningError{Browser: r.browserName}
	}
	return nil
}

func (r *Renderer) renderOne(ctx context.Context, fragment, outPath string) error {
	docPath, cleanup, err := writeDocument(fragment)
	if err != nil {
		return err
	}
	defer cleanup()

	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return fmt.Errorf("resolving output path %s: %w", outPath, err)
	}

	r.log.Debug().Str("out", absOut).Msg("screenshotting fragment")
	if err := r.screenshot(ctx, docPath, absOut); err != nil {
		return err
	}

	r.log.Debug().Str("out", absOut).Msg("trimming screenshot")
	return r.trim(ctx, absOut)
}

// screenshot loads the temp document headlessly and writes the raw
// browser screenshot to absOut.
func (r *Renderer) screenshot(ctx context.Context, docPath, absOut string) error {
	args := []string{
		"--headless",
		"--screenshot", absOut,
		"--window-size=" + strings.Replace(r.windowSize, "x", ",", 1),
		"file://" + docPath,
	}
	if _, err := r.exec.Run(ctx, r.browser, args, runtime.RunOptions{Timeout: r.timeout}); err != nil {
		return fmt.Errorf("rendering fragment: %w", err)
	}
	return nil
}

// trim crops the screenshot to the equation and knocks the white page
// background out to transparency, in place.
func (r *Renderer) trim(ctx context.Context, absOut string) error {
	args := []string{
		absOut,
		"-fuzz", "10%",
		"-trim",
		"-transparent", "white",
		"+repage",
		absOut,
	}
	if _, err := r.exec.Run(ctx, r.converter, args, runtime.RunOptions{Timeout: r.timeout}); err != nil {
		return fmt.Errorf("trimming %s: %w", absOut, err)
	}
	return nil
}
