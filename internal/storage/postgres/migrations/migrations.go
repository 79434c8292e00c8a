// Package migrations embeds the ordered SQL migration steps applied by goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
