package main

import (
	"fmt"
	"log/slog"

	"github.com/ReactPush/react-push-client/internal/config"
	"github.com/ReactPush/react-push-client/internal/helper"
	"github.com/ReactPush/react-push-client/pkg/constants"
	"github.com/ReactPush/react-push-client/pkg/locator"
	"github.com/ReactPush/react-push-client/pkg/logger"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "bundlectl",
		Short:        fmt.Sprintf("%s bundle locator, by %s", constants.Name, constants.Author),
		Long:         fmt.Sprintf("%s - %s, by %s", constants.Name, constants.Description, constants.Author),
		SilenceUsage: true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.ErrOrStderr(), "📦 %s bundle locator\n\n", constants.Name)

			debug := helper.Must(cmd.Flags().GetBool("debug"))
			logger.Init(logger.WithDebugFlag(debug), logger.WithWriter(cmd.ErrOrStderr()))

			config.Load()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "Set debug level for logging")

	cmd.AddCommand(NewResolveCmd())
	cmd.AddCommand(NewStatusCmd())

	return cmd
}

func newLocator() (*locator.Locator, error) {
	return config.Env.NewLocator(slog.Default())
}
