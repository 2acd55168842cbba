// internal/models/caller.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Caller is the authenticated identity a request acts as. Every registry and
// ledger call takes one explicitly.
type Caller struct {
	UserID    uuid.UUID
	Superuser bool
}

func (c Caller) CanAccess(ownerID uuid.UUID) bool {
	return c.Superuser || c.UserID == ownerID
}

// OwnerScope restricts a query on table to rows owned by the caller unless
// the caller is a superuser.
func (c Caller) OwnerScope(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if c.Superuser {
			return db
		}
		return db.Where(table+".owner_id = ?", c.UserID)
	}
}
