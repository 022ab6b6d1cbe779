package main

import (
	"fmt"
	"os/signal"
	"respire/internal/di"
	"respire/internal/providers"
	"respire/internal/structures"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "respire",
		Short: "Respire - local smoke-free ledger",
		Long: `Respire tracks time since the last cigarette, converts avoided
cigarettes into spendable credits and serves a loopback bridge for the
dashboard, bounty board, trigger log and panic protocol views.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newServeCmd(), newVersionCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	flags := &structures.CliFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the ledger bridge until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := di.InitApp(flags)
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&flags.ConfigPath, "config", "c", "config/respire.yaml", "path to the yaml config file")
	cmd.Flags().BoolVar(&flags.DebugMode, "debug", false, "enable debug logging to the console")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("%s %s\n", providers.AppName, providers.AppVersion)
		},
	}
}
