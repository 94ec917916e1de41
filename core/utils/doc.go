// Package utils provides small parsing helpers shared by the HTTP handlers and
// the CLI, such as turning "h" or "days" into a time.Duration for presigned URLs.
package utils
