package migrate

import (
	"fmt"

	"gorm.io/gorm"
)

func init() {
	RegisterBeforeAutoMigration(Migration{
		Version: 1,
		Up:      migrateLegacyModelsTable,
	})
}

// 001:
// - early releases cached the catalog in a "models" table; it was renamed to
//   catalog_models when the wire types grew their own structs. Carry the
//   cached rows over so --offline keeps working after an upgrade.
func migrateLegacyModelsTable(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("db is nil")
	}

	if !db.Migrator().HasTable("models") || db.Migrator().HasTable("catalog_models") {
		return nil
	}

	if err := db.Migrator().RenameTable("models", "catalog_models"); err != nil {
		return fmt.Errorf("failed to rename models to catalog_models: %w", err)
	}
	return nil
}
