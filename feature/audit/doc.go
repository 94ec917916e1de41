// Package audit records bucket and object mutations in a SQL database.
//
// The Store implements objectstore.Journal. It is only wired when the database
// section of the configuration is enabled; both MySQL and SQLite are supported
// through gorm.
//
// # HTTP Endpoints
//
//   - GET /audit?limit=N : Recent entries, newest first (default 50, max 500).
package audit
