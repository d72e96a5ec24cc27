package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"timemcp/internal/app"
	"timemcp/internal/domain"
	"timemcp/internal/infra/dispatcher"
	"timemcp/internal/infra/mcpcodec"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logJSON    bool
	logger     *zap.Logger
	level      zap.AtomicLevel
}

func main() {
	opts := rootOptions{
		logJSON: true,
		logger:  zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "timemcp",
		Short: "MCP server exposing current time and date tools over stdio",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, level, err := app.NewLogger(app.LoggerOptions{
				Level: opts.logLevel,
				JSON:  opts.logJSON,
			})
			if err != nil {
				return err
			}
			opts.logger = logger
			opts.level = level
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (optional)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.logJSON, "log-json", opts.logJSON, "emit logs as JSON (console encoding when false)")

	root.AddCommand(
		newServeCmd(&opts),
		newToolsCmd(),
		newValidateCmd(&opts),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		opts.logger.Fatal("command failed", zap.Error(err))
	}
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()

			application := app.New(opts.logger, opts.level, opts.logLevel != "")
			return application.Serve(ctx, app.ServeConfig{
				ConfigPath: opts.configPath,
			})
		},
	}
}

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog as MCP tool JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := dispatcher.Catalog()
			tools := make([]json.RawMessage, 0, len(catalog))
			for _, desc := range catalog {
				raw, err := mcpcodec.MarshalTool(desc)
				if err != nil {
					return err
				}
				tools = append(tools, raw)
			}
			out, err := json.MarshalIndent(tools, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the config file without serving",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application := app.New(opts.logger, opts.level, opts.logLevel != "")
			if err := application.ValidateConfig(opts.configPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "configuration OK")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", domain.ServerName, domain.ServerVersion)
		},
	}
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
