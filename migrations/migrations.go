// Package migrations embeds the database schema migrations.
package migrations

import "embed"

// Files holds the SQL migration scripts applied at startup.
//
//go:embed *.sql
var Files embed.FS
