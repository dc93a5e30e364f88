package main

import (
	"fmt"
	"log/slog"

	"github.com/ReactPush/react-push-client/internal/config"
	"github.com/ReactPush/react-push-client/internal/helper"
	"github.com/spf13/cobra"
)

func NewResolveCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "resolve",
		Short: "Print the bundle path the app would load",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := helper.Must(cmd.Flags().GetString("name"))
			if name == "" {
				name = config.Env.BundleName
			}

			ext := helper.Must(cmd.Flags().GetString("ext"))
			if ext == "" {
				ext = config.Env.BundleExt
			}

			loc, err := newLocator()
			if err != nil {
				return err
			}

			ref, err := loc.Resolve(name, ext)
			if err != nil {
				return err
			}

			slog.Debug("Bundle resolved", "path", ref.Path, "source", ref.Source)
			fmt.Fprintln(cmd.OutOrStdout(), ref.Path)

			return nil
		},
	}

	cmd.Flags().String("name", "", "Default bundle resource name (default from BL_BUNDLE_NAME)")
	cmd.Flags().String("ext", "", "Default bundle resource extension (default from BL_BUNDLE_EXT)")

	return cmd
}
