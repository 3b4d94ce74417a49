package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagecraft/build-layer/internal/engine"
	"github.com/pagecraft/build-layer/internal/messages"
	"github.com/pagecraft/build-layer/internal/restore"
)

var restoreRun = restore.Run

func newRestoreCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   messages.RestoreUse,
		Short: messages.RestoreShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProjectDir(dir)
			if err != nil {
				return err
			}

			result, err := restoreRun(engine.RealSystem{}, root, []string{engine.HookFileBase, engine.ConfigFileBase})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.RestoredFiles) == 0 && len(result.RemovedLinks) == 0 {
				_, _ = fmt.Fprintln(out, messages.RestoreNoBackups)
				return nil
			}
			for _, path := range result.RestoredFiles {
				_, _ = fmt.Fprintf(out, messages.RestoredFmt, path)
			}
			for _, path := range result.RemovedLinks {
				_, _ = fmt.Fprintf(out, messages.RestoreRemovedLinkFmt, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", messages.RestoreFlagDir)

	return cmd
}
