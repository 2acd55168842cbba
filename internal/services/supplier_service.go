// internal/services/supplier_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elnet/electronics-network/internal/models"
)

// SupplierService answers which party supplies whom.
type SupplierService struct {
	db *gorm.DB
}

func NewSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{db: db}
}

// SupplierOf returns the single upstream supplier of the party, or nil for a
// manufacturer or a party whose supplier link does not match its level. The
// party must be visible to the caller; the supplier need not be.
func (s *SupplierService) SupplierOf(caller models.Caller, ref models.PartyRef) (models.Participant, error) {
	party, err := loadScopedParty(s.db, caller, ref)
	if err != nil {
		return nil, err
	}

	supplierRef := party.Supplier()
	if supplierRef == nil {
		return nil, nil
	}

	supplier, err := loadParty(s.db, *supplierRef)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return supplier, err
}

// SupplierLevelsOf lists the level of the product's manufacturer followed by
// the level of each linked retailer and entrepreneur. Repeats are kept.
func (s *SupplierService) SupplierLevelsOf(caller models.Caller, productID uuid.UUID) ([]int, error) {
	product, err := findScoped[models.Product](s.db, caller, "products", productID, preloadProductSuppliers)
	if err != nil {
		return nil, err
	}
	return product.SupplierLevels(), nil
}
