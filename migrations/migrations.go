// Package migrations embeds the versioned Postgres schema applied by db:migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
