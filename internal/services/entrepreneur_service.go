// internal/services/entrepreneur_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/elnet/electronics-network/internal/metrics"
	"github.com/elnet/electronics-network/internal/models"
	"github.com/elnet/electronics-network/internal/utils"
)

type EntrepreneurService struct {
	db *gorm.DB
}

type EntrepreneurRequest struct {
	PartyDetailsRequest
	Level           int        `json:"level"`
	ManufacturerID  *uuid.UUID `json:"manufacturer_id"`
	RetailNetworkID *uuid.UUID `json:"retail_network_id"`
}

func NewEntrepreneurService(db *gorm.DB) *EntrepreneurService {
	return &EntrepreneurService{db: db}
}

func (s *EntrepreneurService) CreateEntrepreneur(caller models.Caller, req *EntrepreneurRequest) (*models.IndividualEntrepreneur, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entrepreneur := &models.IndividualEntrepreneur{
		PartyDetails:    req.details(caller.UserID),
		Level:           req.Level,
		ManufacturerID:  req.ManufacturerID,
		RetailNetworkID: req.RetailNetworkID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := entrepreneur.Validate(); err != nil {
			return err
		}
		if err := ensureSupplierLinks(tx, entrepreneur.ManufacturerID, entrepreneur.RetailNetworkID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(entrepreneur).Error
	})
	if err != nil {
		rejected(err, "individual_entrepreneur", caller)
		return nil, err
	}

	metrics.RecordRegistryOperation("individual_entrepreneur", "create")
	return s.reload(entrepreneur.ID)
}

func (s *EntrepreneurService) GetEntrepreneur(caller models.Caller, id uuid.UUID) (*models.IndividualEntrepreneur, error) {
	return findScoped[models.IndividualEntrepreneur](s.db, caller, "individual_entrepreneurs", id, preloadSuppliers)
}

func (s *EntrepreneurService) ListEntrepreneurs(caller models.Caller, params utils.PaginationParams) ([]models.IndividualEntrepreneur, int64, error) {
	return listScoped[models.IndividualEntrepreneur](s.db, caller, "individual_entrepreneurs", params, preloadSuppliers)
}

func (s *EntrepreneurService) UpdateEntrepreneur(caller models.Caller, id uuid.UUID, req *EntrepreneurRequest) (*models.IndividualEntrepreneur, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		entrepreneur, err := findScoped[models.IndividualEntrepreneur](tx, caller, "individual_entrepreneurs", id, lockForUpdate)
		if err != nil {
			return err
		}

		entrepreneur.PartyDetails = req.details(caller.UserID)
		entrepreneur.Level = req.Level
		entrepreneur.ManufacturerID = req.ManufacturerID
		entrepreneur.RetailNetworkID = req.RetailNetworkID

		if err := entrepreneur.Validate(); err != nil {
			return err
		}
		if err := ensureSupplierLinks(tx, entrepreneur.ManufacturerID, entrepreneur.RetailNetworkID); err != nil {
			return err
		}
		// BeforeSave validates again on this path too.
		return tx.Omit(clause.Associations).Save(entrepreneur).Error
	})
	if err != nil {
		rejected(err, "individual_entrepreneur", caller)
		return nil, err
	}

	metrics.RecordRegistryOperation("individual_entrepreneur", "update")
	return s.reload(id)
}

func (s *EntrepreneurService) DeleteEntrepreneur(caller models.Caller, id uuid.UUID) error {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findScoped[models.IndividualEntrepreneur](tx, caller, "individual_entrepreneurs", id, lockForUpdate); err != nil {
			return err
		}
		c := newCascade(tx)
		if err := c.party(models.IndividualEntrepreneurRef(id)); err != nil {
			return err
		}
		deleted = c.deleted
		return nil
	})
	if err != nil {
		return err
	}

	logCascade(caller, "individual_entrepreneur", id, deleted)
	metrics.RecordRegistryOperation("individual_entrepreneur", "delete")
	return nil
}

func (s *EntrepreneurService) reload(id uuid.UUID) (*models.IndividualEntrepreneur, error) {
	var entrepreneur models.IndividualEntrepreneur
	if err := preloadSuppliers(s.db).First(&entrepreneur, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to load individual entrepreneur: %w", err)
	}
	return &entrepreneur, nil
}
