package storage

import (
	"context"
	"errors"

	"github.com/andrewpaige1/revision-api/logger"
	"gorm.io/gorm"
)

// Store is the handle every handler queries through. Inside Transaction it is
// bound to the transaction.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, log *logger.Logger) *Store {
	return &Store{db: db, log: log.With("component", "Store")}
}

func (s *Store) DB() *gorm.DB { return s.db }

// Transaction runs fn as one unit of work with foreign-key checks deferred to
// commit, so parents and children can be deleted in any order. Any error
// returned by fn rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deferConstraints(tx); err != nil {
			return err
		}
		return fn(&Store{db: tx, log: s.log})
	})
}

func deferConstraints(tx *gorm.DB) error {
	switch tx.Dialector.Name() {
	case "postgres":
		return tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error
	case "sqlite":
		return tx.Exec("PRAGMA defer_foreign_keys = ON").Error
	default:
		return nil
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
