package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pagecraft/build-layer/internal/config"
	"github.com/pagecraft/build-layer/internal/engine"
	"github.com/pagecraft/build-layer/internal/messages"
	"github.com/pagecraft/build-layer/internal/terminal"
)

var engineRun = engine.Run
var loadSettings = config.Load
var isTerminal = terminal.IsInteractive

func newInjectCmd(quiet *bool) *cobra.Command {
	var dir string
	var frameworkVersion string
	var diffLines int

	cmd := &cobra.Command{
		Use:   messages.InjectUse,
		Short: messages.InjectShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProjectDir(dir)
			if err != nil {
				return err
			}
			settings, err := loadSettings(root, os.LookupEnv)
			if err != nil {
				return err
			}
			if diffLines > 0 {
				settings.DiffMaxLines = diffLines
			}

			result, err := engineRun(engine.Options{
				ProjectDir:      root,
				DetectedVersion: frameworkVersion,
				Settings:        settings,
				System:          engine.RealSystem{},
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !result.Applied {
				_, _ = fmt.Fprintln(out, messages.InjectNotApplicable)
				return nil
			}
			// Diff previews go to interactive terminals, or anywhere when
			// explicitly requested with --diff-lines.
			showDiffs := !*quiet && (isTerminal() || diffLines > 0)
			for _, file := range result.Files {
				_, _ = fmt.Fprintf(out, messages.InjectWroteFmt, file.Path)
				if file.BackupPath != "" {
					_, _ = fmt.Fprintf(out, messages.InjectBackedUpFmt, file.BackupPath)
				}
				if !showDiffs || file.Preview == nil {
					continue
				}
				_, _ = fmt.Fprintf(out, messages.InjectDiffHeaderFmt, file.Path)
				_, _ = fmt.Fprintln(out, file.Preview.UnifiedDiff)
				if file.Preview.Truncated {
					warnColor := color.New(color.FgYellow)
					_, _ = warnColor.Fprintln(cmd.ErrOrStderr(), messages.InjectDiffTruncated)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", messages.InjectFlagDir)
	cmd.Flags().StringVar(&frameworkVersion, "framework-version", "", messages.InjectFlagVersion)
	cmd.Flags().IntVar(&diffLines, "diff-lines", 0, messages.InjectFlagDiffLines)

	return cmd
}
