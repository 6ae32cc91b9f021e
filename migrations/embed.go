// Package migrations holds the goose SQL migrations of the directory schema.
package migrations

import "embed"

// FS contains every *.sql migration file.
//
//go:embed *.sql
var FS embed.FS
