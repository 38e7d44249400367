package cmd

import (
	"log/slog"

	"github.com/ostafen/sipstat/internal/env"
	"github.com/ostafen/sipstat/internal/logger"
	"github.com/spf13/cobra"
)

func Execute() error {
	return NewRootCommand().Execute()
}

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   env.AppName,
		Short: env.AppName + " - file status and content sampling tool",
	}

	rootCmd.PersistentFlags().String("log-level", "INFO", "minimum log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to the specified file instead of stderr")

	rootCmd.AddCommand(DefineSipCommand())
	rootCmd.AddCommand(DefineStatCommand())
	rootCmd.AddCommand(DefineVersionCommand())

	return rootCmd
}

// setupLogger builds the command logger from the persistent log flags.
// The returned cleanup function closes the log file, if any.
func setupLogger(cmd *cobra.Command) (*slog.Logger, func(), error) {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFile, _ := cmd.Flags().GetString("log-file")

	l, f, err := logger.Setup(cmd.ErrOrStderr(), logFile, logger.ParseLevel(logLevel))
	if err != nil {
		return nil, nil, err
	}
	if f == nil {
		return l, func() {}, nil
	}
	return l, func() { f.Close() }, nil
}
