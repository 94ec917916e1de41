package cmd

import (
	"fmt"
	"os"
	"strings"

	"bucket-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bucket-manager",
	Short: "Bucket Manager Service",
	Long: `Bucket Manager manages buckets and objects on MinIO or any S3-compatible store.
It runs as an HTTP API (start) or as a one-shot CLI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure. Errors are
// printed through a console zap logger since the configured one may never
// have been built.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	l.Error("Command failed", zap.String("command", failedCommand()), zap.Error(err))
	_ = l.Sync()
	os.Exit(1)
}

// failedCommand names the subcommand that was invoked, e.g. "object get".
func failedCommand() string {
	cmd, _, err := RootCmd.Find(os.Args[1:])
	if err != nil || cmd == nil {
		return RootCmd.Name()
	}
	return strings.TrimPrefix(cmd.CommandPath(), RootCmd.Name()+" ")
}

func init() {
	RootCmd.PersistentFlags().String("config", ".", "Directory containing the .env file")
}
