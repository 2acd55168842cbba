// internal/services/retail_network_service.go
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

type RetailNetworkService struct {
	db *gorm.DB
}

// RetailNetworkRequest creates or replaces a retail network. Level defaults to 1.
type RetailNetworkRequest struct {
	PartyDetailsRequest
	Level           *int       `json:"level"`
	ManufacturerID  *uuid.UUID `json:"manufacturer_id"`
	RetailNetworkID *uuid.UUID `json:"retail_network_id"`
}

func (r *RetailNetworkRequest) level() int {
	if r.Level == nil {
		return models.LevelFirst
	}
	return *r.Level
}

func NewRetailNetworkService(db *gorm.DB) *RetailNetworkService {
	return &RetailNetworkService{db: db}
}

func (s *RetailNetworkService) CreateRetailNetwork(caller models.Caller, req *RetailNetworkRequest) (*models.RetailNetwork, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	network := &models.RetailNetwork{
		PartyDetails:    req.details(caller.UserID),
		Level:           req.level(),
		ManufacturerID:  req.ManufacturerID,
		RetailNetworkID: req.RetailNetworkID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.check(tx, network); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(network).Error
	})
	if err != nil {
		rejected(err, "retail_network", caller)
		return nil, err
	}

	metrics.RecordRegistryOperation("retail_network", "create")
	return s.reload(network.ID)
}

func (s *RetailNetworkService) GetRetailNetwork(caller models.Caller, id uuid.UUID) (*models.RetailNetwork, error) {
	return findScoped[models.RetailNetwork](s.db, caller, "retail_networks", id, preloadSuppliers)
}

func (s *RetailNetworkService) ListRetailNetworks(caller models.Caller, params utils.PaginationParams) ([]models.RetailNetwork, int64, error) {
	return listScoped[models.RetailNetwork](s.db, caller, "retail_networks", params, preloadSuppliers)
}

// UpdateRetailNetwork replaces the record, supplier links included, and
// re-runs the hierarchy rule.
func (s *RetailNetworkService) UpdateRetailNetwork(caller models.Caller, id uuid.UUID, req *RetailNetworkRequest) (*models.RetailNetwork, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		network, err := findScoped[models.RetailNetwork](tx, caller, "retail_networks", id, lockForUpdate)
		if err != nil {
			return err
		}

		network.PartyDetails = req.details(caller.UserID)
		network.Level = req.level()
		network.ManufacturerID = req.ManufacturerID
		network.RetailNetworkID = req.RetailNetworkID

		if err := s.check(tx, network); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(network).Error
	})
	if err != nil {
		rejected(err, "retail_network", caller)
		return nil, err
	}

	metrics.RecordRegistryOperation("retail_network", "update")
	return s.reload(id)
}

// DeleteRetailNetwork removes the network, the networks and entrepreneurs it
// supplies, its product links and every transaction involving any of them.
func (s *RetailNetworkService) DeleteRetailNetwork(caller models.Caller, id uuid.UUID) error {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findScoped[models.RetailNetwork](tx, caller, "retail_networks", id, lockForUpdate); err != nil {
			return err
		}
		c := newCascade(tx)
		if err := c.party(models.RetailNetworkRef(id)); err != nil {
			return err
		}
		deleted = c.deleted
		return nil
	})
	if err != nil {
		return err
	}

	logCascade(caller, "retail_network", id, deleted)
	metrics.RecordRegistryOperation("retail_network", "delete")
	return nil
}

// check runs the hierarchy rule before the referenced suppliers are looked up.
func (s *RetailNetworkService) check(tx *gorm.DB, network *models.RetailNetwork) error {
	if err := network.Validate(); err != nil {
		return err
	}
	return ensureSupplierLinks(tx, network.ManufacturerID, network.RetailNetworkID)
}

func (s *RetailNetworkService) reload(id uuid.UUID) (*models.RetailNetwork, error) {
	var network models.RetailNetwork
	if err := preloadSuppliers(s.db).First(&network, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to load retail network: %w", err)
	}
	return &network, nil
}
