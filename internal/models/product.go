// internal/models/product.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	BaseModel
	OwnerID        uuid.UUID  `json:"owner" gorm:"type:uuid;not null;index"`
	Name           string     `json:"name" gorm:"size:255;not null"`
	Model          string     `json:"model" gorm:"size:255;not null"`
	ReleaseDate    time.Time  `json:"release_date" gorm:"type:date;not null"`
	ManufacturerID *uuid.UUID `json:"manufacturer" gorm:"type:uuid;index"`

	// Relationships
	Manufacturer  *Manufacturer            `json:"-" gorm:"foreignKey:ManufacturerID;constraint:OnDelete:CASCADE"`
	Retailers     []RetailNetwork          `json:"-" gorm:"many2many:product_retailers;constraint:OnDelete:CASCADE"`
	Entrepreneurs []IndividualEntrepreneur `json:"-" gorm:"many2many:product_entrepreneurs;constraint:OnDelete:CASCADE"`
}

func (p *Product) DisplayName() string {
	return p.Name + " - " + p.Model
}

// SupplierSet lists every party allowed to sell the product: its manufacturer
// plus the linked retail networks and entrepreneurs. Retailers and
// Entrepreneurs must be preloaded.
func (p *Product) SupplierSet() []PartyRef {
	set := make([]PartyRef, 0, 1+len(p.Retailers)+len(p.Entrepreneurs))
	if p.ManufacturerID != nil {
		set = append(set, ManufacturerRef(*p.ManufacturerID))
	}
	for _, r := range p.Retailers {
		set = append(set, RetailNetworkRef(r.ID))
	}
	for _, e := range p.Entrepreneurs {
		set = append(set, IndividualEntrepreneurRef(e.ID))
	}
	return set
}

func (p *Product) HasSupplier(ref PartyRef) bool {
	if ref.IsZero() {
		return false
	}
	for _, s := range p.SupplierSet() {
		if s == ref {
			return true
		}
	}
	return false
}

// SupplierLevels reports the level of the manufacturer followed by every
// linked retailer and entrepreneur, in link order. Repeats are kept.
func (p *Product) SupplierLevels() []int {
	levels := make([]int, 0, 1+len(p.Retailers)+len(p.Entrepreneurs))
	if p.Manufacturer != nil {
		levels = append(levels, p.Manufacturer.Level)
	} else if p.ManufacturerID != nil {
		levels = append(levels, LevelManufacturer)
	}
	for _, r := range p.Retailers {
		levels = append(levels, r.Level)
	}
	for _, e := range p.Entrepreneurs {
		levels = append(levels, e.Level)
	}
	return levels
}
