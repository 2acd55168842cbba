// internal/models/individual_entrepreneur.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IndividualEntrepreneur follows the same single-supplier rule as RetailNetwork,
// but its suppliers are manufacturers and retail networks.
type IndividualEntrepreneur struct {
	BaseModel
	PartyDetails
	Level           int        `json:"level" gorm:"not null"`
	ManufacturerID  *uuid.UUID `json:"manufacturer" gorm:"type:uuid;index"`
	RetailNetworkID *uuid.UUID `json:"retail_network" gorm:"type:uuid;index"`

	// Relationships
	Manufacturer  *Manufacturer  `json:"-" gorm:"foreignKey:ManufacturerID;constraint:OnDelete:CASCADE"`
	RetailNetwork *RetailNetwork `json:"-" gorm:"foreignKey:RetailNetworkID;constraint:OnDelete:CASCADE"`
}

func (e *IndividualEntrepreneur) Validate() error {
	return validateSupplierLinks(e.Level, e.ManufacturerID != nil, e.RetailNetworkID != nil)
}

func (e *IndividualEntrepreneur) BeforeSave(tx *gorm.DB) error {
	return e.Validate()
}

func (e *IndividualEntrepreneur) Ref() PartyRef       { return IndividualEntrepreneurRef(e.ID) }
func (e *IndividualEntrepreneur) Tier() int           { return e.Level }
func (e *IndividualEntrepreneur) DisplayName() string { return e.Name }
func (e *IndividualEntrepreneur) OwnedBy() uuid.UUID  { return e.OwnerID }

// Supplier follows the declared level, not whichever link happens to be set.
func (e *IndividualEntrepreneur) Supplier() *PartyRef {
	switch e.Level {
	case LevelFirst:
		if e.ManufacturerID != nil {
			ref := ManufacturerRef(*e.ManufacturerID)
			return &ref
		}
	case LevelSecond:
		if e.RetailNetworkID != nil {
			ref := RetailNetworkRef(*e.RetailNetworkID)
			return &ref
		}
	}
	return nil
}
