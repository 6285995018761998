package migration

import (
	"context"

	"github.com/minerush/backend/internal/entity"
)

// Migrators maps a version name to a manual migration. AutoMigrate covers
// schema changes; entries here are for data backfills.
var Migrators = map[string]func(context.Context) error{}

func AutoMigrate(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}
