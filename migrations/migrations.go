// Package migrations embeds the SQL schema so binaries can migrate without the source tree.
package migrations

import "embed"

// Postgres holds the postgres/*.sql migration files.
//
//go:embed postgres/*.sql
var Postgres embed.FS

// PostgresDir is the directory inside Postgres holding the migrations.
const PostgresDir = "postgres"
