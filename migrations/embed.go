package migrations

import "embed"

// Files stores forward-only SQL migrations for the local cache database.
//
//go:embed *.sql
var Files embed.FS
