// Package integrity provides health checks for the storage setup.
//
// # Checks Provided
//
//   - Bucket: Checks that the configured default bucket exists. Can create it.
//   - Database: Checks that the journal database is reachable and the audit table exists.
//     Reported as "disabled" when no database is configured.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/bucket : Runs the bucket check (supports ?fix=true).
//   - GET /integrity/database : Runs the database check.
package integrity
