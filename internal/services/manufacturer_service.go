// internal/services/manufacturer_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/elnet/electronics-network/internal/metrics"
	"github.com/elnet/electronics-network/internal/models"
	"github.com/elnet/electronics-network/internal/utils"
)

type ManufacturerService struct {
	db *gorm.DB
}

type ManufacturerRequest struct {
	PartyDetailsRequest
	Level int `json:"level"`
}

func NewManufacturerService(db *gorm.DB) *ManufacturerService {
	return &ManufacturerService{db: db}
}

func (s *ManufacturerService) CreateManufacturer(caller models.Caller, req *ManufacturerRequest) (*models.Manufacturer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	manufacturer := &models.Manufacturer{
		PartyDetails: req.details(caller.UserID),
		Level:        req.Level,
	}

	if err := s.db.Create(manufacturer).Error; err != nil {
		rejected(err, "manufacturer", caller)
		return nil, fmt.Errorf("failed to create manufacturer: %w", err)
	}

	metrics.RecordRegistryOperation("manufacturer", "create")
	return manufacturer, nil
}

func (s *ManufacturerService) GetManufacturer(caller models.Caller, id uuid.UUID) (*models.Manufacturer, error) {
	return findScoped[models.Manufacturer](s.db, caller, "manufacturers", id)
}

func (s *ManufacturerService) ListManufacturers(caller models.Caller, params utils.PaginationParams) ([]models.Manufacturer, int64, error) {
	return listScoped[models.Manufacturer](s.db, caller, "manufacturers", params)
}

// UpdateManufacturer replaces every writable field. The updating caller
// becomes the owner.
func (s *ManufacturerService) UpdateManufacturer(caller models.Caller, id uuid.UUID, req *ManufacturerRequest) (*models.Manufacturer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var manufacturer *models.Manufacturer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		manufacturer, err = findScoped[models.Manufacturer](tx, caller, "manufacturers", id, lockForUpdate)
		if err != nil {
			return err
		}

		manufacturer.PartyDetails = req.details(caller.UserID)
		manufacturer.Level = req.Level

		return tx.Save(manufacturer).Error
	})
	if err != nil {
		rejected(err, "manufacturer", caller)
		return nil, err
	}

	metrics.RecordRegistryOperation("manufacturer", "update")
	return manufacturer, nil
}

// DeleteManufacturer removes the manufacturer, the parties it supplies, its
// products and every transaction involving any of them.
func (s *ManufacturerService) DeleteManufacturer(caller models.Caller, id uuid.UUID) error {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findScoped[models.Manufacturer](tx, caller, "manufacturers", id, lockForUpdate); err != nil {
			return err
		}
		c := newCascade(tx)
		if err := c.party(models.ManufacturerRef(id)); err != nil {
			return err
		}
		deleted = c.deleted
		return nil
	})
	if err != nil {
		return err
	}

	logCascade(caller, "manufacturer", id, deleted)
	metrics.RecordRegistryOperation("manufacturer", "delete")
	return nil
}

func lockForUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// rejected logs domain validation failures and counts them by kind.
func rejected(err error, entity string, caller models.Caller) {
	if kind, ok := validationKind(err); ok {
		metrics.RecordValidationFailure(err)
		logrus.WithFields(logrus.Fields{
			"entity":  entity,
			"kind":    kind,
			"user_id": caller.UserID,
		}).Info("Write rejected by validation")
	}
}
