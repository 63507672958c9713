// Package db embeds the SQL migrations applied by golang-migrate.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the path of the SQL files inside Migrations.
const MigrationsDir = "migrations"
