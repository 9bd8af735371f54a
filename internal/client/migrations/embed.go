// Package migrations embeds the SQL migrations for the local client
// database, applied by goose at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
