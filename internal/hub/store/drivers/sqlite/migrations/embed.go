package migrations

import "embed"

// Migrations holds the embedded SQL migration files. They are applied in
// lexical order by golang-migrate.
//
//go:embed *.sql
var Migrations embed.FS
