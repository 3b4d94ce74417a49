package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagecraft/build-layer/internal/engine"
	"github.com/pagecraft/build-layer/internal/messages"
	"github.com/pagecraft/build-layer/internal/plugins"
	"github.com/pagecraft/build-layer/internal/provision"
)

var provisionRun = provision.Provision

func newProvisionCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   messages.ProvisionUse,
		Short: messages.ProvisionShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProjectDir(dir)
			if err != nil {
				return err
			}
			settings, err := loadSettings(root, os.LookupEnv)
			if err != nil {
				return err
			}

			linked, err := provisionRun(engine.RealSystem{}, root, settings.PluginsDir, plugins.All())
			out := cmd.OutOrStdout()
			for _, link := range linked {
				_, _ = fmt.Fprintf(out, messages.ProvisionLinkedFmt, link.Path, link.Target)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", messages.ProvisionFlagDir)

	return cmd
}
