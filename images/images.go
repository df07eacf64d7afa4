// Package images strips metadata from image files. Exiftool does the
// actual rewriting; this package preflights it and runs it per file.
package images

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ebookworks/typeset/runtime"
	"github.com/ebookworks/typeset/toolchain"
)

// exiftoolBinary is the metadata tool exiftool ships as.
const exiftoolBinary = "exiftool"

// Cleaner removes embedded metadata from image files in place.
type Cleaner struct {
	checker *toolchain.Checker
	exec    runtime.Executor
	timeout time.Duration
	log     zerolog.Logger
}

// NewCleaner wires a Cleaner to a tool checker and an executor. The
// timeout bounds each exiftool run.
func NewCleaner(checker *toolchain.Checker, exec runtime.Executor, timeout time.Duration, log zerolog.Logger) *Cleaner {
	return &Cleaner{checker: checker, exec: exec, timeout: timeout, log: log}
}

// RemoveMetadata preflights exiftool and strips all metadata from each
// file in place. The progress callback, when non-nil, is invoked after
// each file. Cleaning stops at the first failure.
func (c *Cleaner) RemoveMetadata(ctx context.Context, files []string, progress func(file string, err error)) error {
	if len(files) == 0 {
		return fmt.Errorf("no files given")
	}

	exiftool, err := c.checker.Require(exiftoolBinary)
	if err != nil {
		return err
	}

	for _, file := range files {
		c.log.Debug().Str("file", file).Msg("removing image metadata")
		args := []string{"-overwrite_original", "-all=", file}
		_, err := c.exec.Run(ctx, exiftool, args, runtime.RunOptions{Timeout: c.timeout})
		if progress != nil {
			progress(file, err)
		}
		if err != nil {
			return fmt.Errorf("cleaning %s: %w", file, err)
		}
	}
	return nil
}
