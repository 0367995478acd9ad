// Package schemas provides embedded SQL migration files for the phrase_cards store.
package schemas

import "embed"

// Migrations contains all SQL migration files, applied in file name order.
//
//go:embed migrations/*.sql
var Migrations embed.FS
