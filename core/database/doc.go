// Package database opens the optional database that backs the operation journal.
//
// Connect supports MySQL (go-sql-driver through gorm.io/driver/mysql) and SQLite
// (gorm.io/driver/sqlite). It returns ErrDisabled unless the database is enabled in
// configuration; callers log the failure and keep running without a journal.
package database
