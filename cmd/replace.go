package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ebookworks/typeset/replace"
	"github.com/ebookworks/typeset/runtime"
	"github.com/ebookworks/typeset/toolchain"
)

var replaceCmd = &cobra.Command{
	Use:   "replace REGEX FILE...",
	Short: "Interactively find and replace a regex across files",
	Long: "Replace opens the configured editor on the given files with a macro that\n" +
		"runs the substitution over each one, asking for confirmation at every\n" +
		"match. REGEX uses the /find/replace/ form. The editor's exit status is\n" +
		"passed through unchanged.",
	Example: "  typeset replace '/the Reverend/the Rev./' src/epub/text/*.xhtml",
	Args:    cobra.MinimumNArgs(2),
	RunE:    runReplace,
}

func runReplace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if cmd != nil {
		ctx = cmd.Context()
	}

	log := newLogger()
	session := replace.NewSession(toolchain.NewChecker(toolResolver), newExecutor(log))

	code, err := session.Run(ctx, cfg.Editor, args[0], args[1:])
	if err != nil {
		return err
	}
	if code != 0 {
		return &runtime.ExitError{Cmd: cfg.Editor, ExitCode: code}
	}
	return nil
}
