package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pagecraft/build-layer/internal/messages"
)

func newRootCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, messages.RootFlagQuiet)

	cmd.AddCommand(newInjectCmd(&quiet))
	cmd.AddCommand(newProvisionCmd())
	cmd.AddCommand(newRestoreCmd())
	cmd.AddCommand(newToggleCmd())

	return cmd
}

// resolveProjectDir converts the --dir flag value to an absolute path.
func resolveProjectDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf(messages.ResolveProjectDirFmt, dir, err)
	}
	return abs, nil
}
