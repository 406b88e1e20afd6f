// Package sqlitemigrations embeds the goose migrations for the embedded
// (SQLite) store.
package sqlitemigrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
