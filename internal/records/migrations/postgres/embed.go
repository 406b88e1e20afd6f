// Package pgmigrations embeds the goose migrations for the hosted
// (Postgres) store.
package pgmigrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
