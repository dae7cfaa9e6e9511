// Package migrations embeds the versioned PostgreSQL schema applied by goose.
package migrations

import "embed"

// FS holds the goose SQL migrations.
//
//go:embed *.sql
var FS embed.FS
