package cmd

import (
	"context"
	"fmt"

	"bucket-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the storage setup",
	Long:  `Checks that the default bucket exists and that the journal database is usable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd, true, true)
	},
}

// integrityBucketCmd represents the integrity bucket command
var integrityBucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Check and optionally create the default bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

// integrityDatabaseCmd represents the integrity database command
var integrityDatabaseCmd = &cobra.Command{
	Use:   "database",
	Short: "Check the journal database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(integrityBucketCmd, integrityDatabaseCmd)

	integrityBucketCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket if missing")
}

func runIntegrityChecks(cmd *cobra.Command, runBucket, runDatabase bool) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	logg := rt.logger
	svc := integrity.NewService(rt.client, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region, logg, rt.db)

	var failed bool
	if runBucket {
		failed = checkBucket(cmd.Context(), svc, logg) || failed
	}
	if runDatabase {
		failed = checkDatabase(cmd.Context(), svc, logg) || failed
	}

	if failed {
		return fmt.Errorf("integrity checks failed")
	}
	return nil
}

// checkBucket reports whether the bucket check failed.
func checkBucket(ctx context.Context, svc *integrity.Service, logg *zap.Logger) bool {
	logg.Info("Checking default bucket...", zap.String("bucket", svc.Bucket()))
	report, err := svc.CheckBucket(ctx)
	if err != nil {
		logg.Error("Bucket check failed", zap.Error(err))
		return true
	}

	if report.Exists {
		logg.Info("Bucket is present.")
		return false
	}

	logg.Warn("Default bucket is missing", zap.String("bucket", report.Bucket))
	if !fixFlag {
		logg.Info("Run with --fix to create the bucket.")
		return true
	}

	logg.Info("Creating bucket...")
	if err := svc.FixBucket(ctx); err != nil {
		logg.Error("Failed to create bucket", zap.Error(err))
		return true
	}
	logg.Info("Bucket created successfully.")
	return false
}

// checkDatabase reports whether the database check failed.
func checkDatabase(ctx context.Context, svc *integrity.Service, logg *zap.Logger) bool {
	logg.Info("Checking journal database...")
	report, err := svc.CheckDatabase(ctx)
	if err != nil {
		logg.Error("Database check failed", zap.Error(err))
		return true
	}

	switch report.Status {
	case "disabled":
		logg.Info("Journal database is disabled.")
	case "ok":
		logg.Info("Journal database is healthy.")
	default:
		if !report.Reachable {
			logg.Error("Journal database is unreachable", zap.String("error", report.Error))
		}
		if len(report.MissingTables) > 0 {
			logg.Warn("Missing tables", zap.Strings("tables", report.MissingTables))
		}
		return true
	}
	return false
}
