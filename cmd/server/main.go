package main

import (
	"fmt"
	"os"

	"portfolio-api/internal/config"
	"portfolio-api/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	envFiles []string
	verbose  bool

	cfg       config.Config
	appLogger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "portfolio-api",
	Short:         "Portfolio backend: content API, chatbot and contact form",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFiles...)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		appLogger, err = logger.New(cfg.App.Environment, verbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appLogger != nil {
			_ = appLogger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv file(s) to load before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	knowledgeCmd.PersistentFlags().String("path", "", "knowledge document path (defaults to KNOWLEDGE_PATH)")
	knowledgeCmd.AddCommand(knowledgeInitCmd, knowledgeValidateCmd)

	rootCmd.AddCommand(serveCmd, knowledgeCmd, askCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
