package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ebookworks/typeset/images"
	"github.com/ebookworks/typeset/toolchain"
)

var cleanCmd = &cobra.Command{
	Use:   "clean FILE...",
	Short: "Strip embedded metadata from image files",
	Long: "Clean rewrites each image in place with exiftool, removing all embedded\n" +
		"metadata (EXIF, XMP, thumbnails). Source images often carry camera or\n" +
		"editor fingerprints that have no place in a published ebook.",
	Example: "  typeset clean src/epub/images/*.jpg",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if cmd != nil {
		ctx = cmd.Context()
	}

	log := newLogger()
	cleaner := images.NewCleaner(
		toolchain.NewChecker(toolResolver),
		newExecutor(log),
		time.Duration(cfg.TimeoutSeconds)*time.Second,
		log,
	)

	return cleaner.RemoveMetadata(ctx, args, func(file string, err error) {
		if err == nil {
			fmt.Printf("cleaned %s\n", file)
		}
	})
}
