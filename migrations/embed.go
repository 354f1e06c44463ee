// Package migrations embeds the SQL migration files for every supported
// database backend.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
