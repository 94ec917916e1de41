package cmd

import (
	"errors"
	"fmt"

	"bucket-manager/core/config"
	"bucket-manager/core/database"
	"bucket-manager/core/logger"
	"bucket-manager/core/storage"
	"bucket-manager/feature/audit"
	"bucket-manager/feature/objectstore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds what every command needs once configuration is loaded.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
	db     *gorm.DB
	store  *audit.Store
}

// setup loads configuration, builds the logger and storage client, and connects
// the optional journal database.
func setup(cmd *cobra.Command) (*runtime, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = "."
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: logg, client: client}

	// Connect to Database (Optional)
	conn, err := database.Connect(cfg.Database)
	switch {
	case errors.Is(err, database.ErrDisabled):
	case err != nil:
		logg.Warn("Optional database connection failed", zap.Error(err))
	default:
		store := audit.NewStore(conn)
		if err := store.Migrate(); err != nil {
			logg.Warn("Journal migration failed, journal disabled", zap.Error(err))
			_ = database.Close(conn)
		} else {
			rt.db = conn
			rt.store = store
			logg = logg.With(zap.String("driver", cfg.Database.Driver))
			rt.logger = logg
		}
	}

	return rt, nil
}

// journal returns the store as a Journal, or nil when there is no database.
func (r *runtime) journal() objectstore.Journal {
	if r.store == nil {
		return nil
	}
	return r.store
}

// facade builds the storage facade.
func (r *runtime) facade() *objectstore.Service {
	return objectstore.NewService(r.client, r.logger, r.journal())
}

// bucketFlag returns --bucket, falling back to the configured default bucket.
func (r *runtime) bucketFlag(cmd *cobra.Command) string {
	if b, _ := cmd.Flags().GetString("bucket"); b != "" {
		return b
	}
	return r.cfg.Storage.Bucket
}

func (r *runtime) close() {
	_ = database.Close(r.db)
	_ = r.logger.Sync()
}
