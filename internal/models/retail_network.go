// internal/models/retail_network.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RetailNetwork buys either from a manufacturer (level 1) or from another
// retail network (level 2).
type RetailNetwork struct {
	BaseModel
	PartyDetails
	Level           int        `json:"level" gorm:"not null;default:1"`
	ManufacturerID  *uuid.UUID `json:"manufacturer" gorm:"type:uuid;index"`
	RetailNetworkID *uuid.UUID `json:"retail_network" gorm:"type:uuid;index"`

	// Relationships
	Manufacturer  *Manufacturer  `json:"-" gorm:"foreignKey:ManufacturerID;constraint:OnDelete:CASCADE"`
	RetailNetwork *RetailNetwork `json:"-" gorm:"foreignKey:RetailNetworkID;constraint:OnDelete:CASCADE"`
}

func (r *RetailNetwork) Validate() error {
	if err := validateSupplierLinks(r.Level, r.ManufacturerID != nil, r.RetailNetworkID != nil); err != nil {
		return err
	}
	if r.RetailNetworkID != nil && r.ID != uuid.Nil && *r.RetailNetworkID == r.ID {
		return newValidationError(KindSelfSupplier, "a retail network cannot be its own supplier")
	}
	return nil
}

// BeforeSave re-runs the hierarchy rule on every write path, including
// programmatic saves that never went through a request struct.
func (r *RetailNetwork) BeforeSave(tx *gorm.DB) error {
	return r.Validate()
}

func (r *RetailNetwork) Ref() PartyRef       { return RetailNetworkRef(r.ID) }
func (r *RetailNetwork) Tier() int           { return r.Level }
func (r *RetailNetwork) DisplayName() string { return r.Name }
func (r *RetailNetwork) OwnedBy() uuid.UUID  { return r.OwnerID }

// Supplier prefers the manufacturer link and falls back to the parent network.
func (r *RetailNetwork) Supplier() *PartyRef {
	if r.ManufacturerID != nil {
		ref := ManufacturerRef(*r.ManufacturerID)
		return &ref
	}
	if r.RetailNetworkID != nil {
		ref := RetailNetworkRef(*r.RetailNetworkID)
		return &ref
	}
	return nil
}
