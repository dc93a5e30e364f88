package main

import (
	"strconv"

	"github.com/ReactPush/react-push-client/internal/config"
	"github.com/ReactPush/react-push-client/pkg/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func NewStatusCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "status",
		Short: "Show bundle directory, marker and active bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := newLocator()
			if err != nil {
				return err
			}

			downloaded, ok := loc.DownloadedBundlePath()
			if !ok {
				downloaded = constants.None
			}

			// A missing default is still reported, then returned.
			resolved, resolveErr := loc.ResolveBundlePath(config.Env.BundleName, config.Env.BundleExt)
			if resolveErr != nil {
				resolved = resolveErr.Error()
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Query", "Value"})
			table.SetAutoWrapText(false)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.AppendBulk([][]string{
				{"Bundle directory", loc.BundleDirectory()},
				{"Marker file", loc.MarkerFilePath()},
				{"Downloaded bundle", downloaded},
				{"Has downloaded bundle", strconv.FormatBool(loc.HasDownloadedBundle())},
				{"Resolved bundle", resolved},
			})
			table.Render()

			return resolveErr
		},
	}

	return cmd
}
