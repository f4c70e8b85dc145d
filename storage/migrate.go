package storage

import (
	"fmt"

	"github.com/andrewpaige1/revision-api/models"
	"gorm.io/gorm"
)

// foreignKeys are created by hand on postgres so they can be DEFERRABLE,
// which gorm's constraint tags cannot express.
var foreignKeys = []struct {
	table, name, column, ref string
}{
	{"deck", "fk_deck_client", "client_id", "client"},
	{"card", "fk_card_deck", "deck_id", "deck"},
	{"card", "fk_card_category", "category_id", "revision_category"},
	{"session", "fk_session_deck", "deck_id", "deck"},
}

// Migrate creates or updates the schema and seeds the default categories.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Client{},
		&models.Deck{},
		&models.RevisionCategory{},
		&models.Card{},
		&models.Session{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if db.Dialector.Name() == "postgres" {
		for _, fk := range foreignKeys {
			drop := fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, fk.table, fk.name)
			add := fmt.Sprintf(
				`ALTER TABLE %q ADD CONSTRAINT %q FOREIGN KEY (%q) REFERENCES %q (id) DEFERRABLE INITIALLY IMMEDIATE`,
				fk.table, fk.name, fk.column, fk.ref,
			)
			if err := db.Exec(drop).Error; err != nil {
				return fmt.Errorf("drop foreign key %s: %w", fk.name, err)
			}
			if err := db.Exec(add).Error; err != nil {
				return fmt.Errorf("add foreign key %s: %w", fk.name, err)
			}
		}
	}

	return Seed(db)
}

// Seed inserts the two starting categories when none exist, so that the
// protected category and the two-category minimum hold from the first boot.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.RevisionCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []models.RevisionCategory{
		{ID: models.DefaultCategoryID, CategoryName: "Not categorized", DifficultyOrder: 0},
		{ID: 2, CategoryName: "To review", DifficultyOrder: 1},
	}
	if err := db.Create(&seed).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	if db.Dialector.Name() == "postgres" {
		// explicit ids do not advance the serial sequence
		return db.Exec(`SELECT setval(pg_get_serial_sequence('revision_category', 'id'), (SELECT MAX(id) FROM revision_category))`).Error
	}
	return nil
}
