// internal/models/manufacturer.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Manufacturer is the root of the supply chain. It never has a supplier.
type Manufacturer struct {
	BaseModel
	PartyDetails
	Level int `json:"level" gorm:"not null;default:0"`
}

func (m *Manufacturer) Validate() error {
	return validateManufacturerLevel(m.Level)
}

func (m *Manufacturer) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}

func (m *Manufacturer) Ref() PartyRef       { return ManufacturerRef(m.ID) }
func (m *Manufacturer) Tier() int           { return m.Level }
func (m *Manufacturer) Supplier() *PartyRef { return nil }
func (m *Manufacturer) DisplayName() string { return m.Name }
func (m *Manufacturer) OwnedBy() uuid.UUID  { return m.OwnerID }
