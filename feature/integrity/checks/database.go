package checks

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// DatabaseReport is the result of a database check.
type DatabaseReport struct {
	Enabled       bool     `json:"enabled"`
	Reachable     bool     `json:"reachable"`
	MissingTables []string `json:"missing_tables"`
	Status        string   `json:"status"` // "ok", "disabled", "error"
	Error         string   `json:"error,omitempty"`
}

// CheckDatabase pings the database and looks for the given tables.
// A nil db yields a "disabled" report.
func CheckDatabase(ctx context.Context, db *gorm.DB, tables ...string) (*DatabaseReport, error) {
	report := &DatabaseReport{MissingTables: []string{}, Status: "disabled"}
	if db == nil {
		return report, nil
	}
	report.Enabled = true

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		report.Status = "error"
		report.Error = err.Error()
		return report, nil
	}
	report.Reachable = true

	migrator := db.WithContext(ctx).Migrator()
	for _, table := range tables {
		if !migrator.HasTable(table) {
			report.MissingTables = append(report.MissingTables, table)
		}
	}

	report.Status = "ok"
	if len(report.MissingTables) > 0 {
		report.Status = "error"
	}
	return report, nil
}
