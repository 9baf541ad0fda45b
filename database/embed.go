package database

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationsFS returns the embedded migration files rooted at migrations/.
func MigrationsFS() fs.FS {
	subFS, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		panic("failed to create migrations sub filesystem: " + err.Error())
	}
	return subFS
}
