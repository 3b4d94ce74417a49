package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagecraft/build-layer/internal/config"
	"github.com/pagecraft/build-layer/internal/envfile"
	"github.com/pagecraft/build-layer/internal/fsutil"
	"github.com/pagecraft/build-layer/internal/messages"
)

func newToggleCmd() *cobra.Command {
	var dir string
	var off bool

	cmd := &cobra.Command{
		Use:   messages.ToggleUse,
		Short: messages.ToggleShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := toggleKey(args[0])
			if err != nil {
				return err
			}
			root, err := resolveProjectDir(dir)
			if err != nil {
				return err
			}

			value := "true"
			if off {
				value = "false"
			}
			path := filepath.Join(root, config.EnvFileName)
			content, err := os.ReadFile(path)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf(messages.EnvfileFailedReadExistingFmt, path, err)
			}

			patched := envfile.Patch(string(content), map[string]string{key: value})
			if !strings.HasSuffix(patched, "\n") {
				patched += "\n"
			}
			if err := fsutil.WriteFileAtomic(path, []byte(patched), 0o644); err != nil {
				return fmt.Errorf(messages.EnvfileFailedWritePatchedFmt, path, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.ToggleUpdatedFmt, key, value, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", messages.ToggleFlagDir)
	cmd.Flags().BoolVar(&off, "off", false, messages.ToggleFlagOff)

	return cmd
}

// toggleKey maps a plugin argument to its environment toggle.
func toggleKey(plugin string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(plugin)) {
	case "builder":
		return config.EnvBuilderPlugin, nil
	case "analytics":
		return config.EnvAnalytics, nil
	default:
		return "", fmt.Errorf(messages.ToggleUnknownFmt, plugin)
	}
}
