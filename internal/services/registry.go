// internal/services/registry.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elnet/electronics-network/internal/models"
	"github.com/elnet/electronics-network/internal/utils"
)

type scope = func(*gorm.DB) *gorm.DB

// PartyDetailsRequest carries the contact fields shared by every party.
type PartyDetailsRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Country     string `json:"country" validate:"required,max=255"`
	City        string `json:"city" validate:"required,max=255"`
	Street      string `json:"street" validate:"required,max=255"`
	HouseNumber string `json:"house_number" validate:"required,max=20"`
}

func (r *PartyDetailsRequest) details(ownerID uuid.UUID) models.PartyDetails {
	return models.PartyDetails{
		OwnerID:     ownerID,
		Name:        r.Name,
		Email:       r.Email,
		Country:     r.Country,
		City:        r.City,
		Street:      r.Street,
		HouseNumber: r.HouseNumber,
	}
}

// findScoped loads one record of T by id, hiding records the caller does not own.
func findScoped[T any](db *gorm.DB, caller models.Caller, table string, id uuid.UUID, scopes ...scope) (*T, error) {
	var record T
	err := db.Scopes(caller.OwnerScope(table)).Scopes(scopes...).
		First(&record, table+".id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &record, nil
}

// listScoped returns one page of the caller's records in creation order.
func listScoped[T any](db *gorm.DB, caller models.Caller, table string, params utils.PaginationParams, scopes ...scope) ([]T, int64, error) {
	base := func() *gorm.DB {
		return db.Model(new(T)).Scopes(caller.OwnerScope(table))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	var records []T
	query := utils.ApplyPagination(base().Scopes(scopes...), params).
		Order(table + ".created_at").Order(table + ".id")
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", table, err)
	}

	return records, total, nil
}

func modelFor(kind models.PartyKind) (interface{}, error) {
	switch kind {
	case models.PartyKindManufacturer:
		return &models.Manufacturer{}, nil
	case models.PartyKindRetailNetwork:
		return &models.RetailNetwork{}, nil
	case models.PartyKindIndividualEntrepreneur:
		return &models.IndividualEntrepreneur{}, nil
	}
	return nil, fmt.Errorf("unknown party kind %q", kind)
}

func tableFor(kind models.PartyKind) string {
	switch kind {
	case models.PartyKindManufacturer:
		return "manufacturers"
	case models.PartyKindRetailNetwork:
		return "retail_networks"
	default:
		return "individual_entrepreneurs"
	}
}

// ensurePartyExists checks a referenced party regardless of its owner.
func ensurePartyExists(db *gorm.DB, ref models.PartyRef) error {
	model, err := modelFor(ref.Kind)
	if err != nil {
		return err
	}

	var count int64
	if err := db.Model(model).Where("id = ?", ref.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: %s", ErrReferenceNotFound, ref)
	}
	return nil
}

// ensureSupplierLinks checks that the supplier ids of a retail network or
// entrepreneur point at stored records.
func ensureSupplierLinks(db *gorm.DB, manufacturerID, retailNetworkID *uuid.UUID) error {
	if manufacturerID != nil {
		if err := ensurePartyExists(db, models.ManufacturerRef(*manufacturerID)); err != nil {
			return err
		}
	}
	if retailNetworkID != nil {
		if err := ensurePartyExists(db, models.RetailNetworkRef(*retailNetworkID)); err != nil {
			return err
		}
	}
	return nil
}

// loadParty resolves a reference to its stored record regardless of owner.
func loadParty(db *gorm.DB, ref models.PartyRef) (models.Participant, error) {
	var (
		party models.Participant
		err   error
	)

	switch ref.Kind {
	case models.PartyKindManufacturer:
		var m models.Manufacturer
		err = db.First(&m, "id = ?", ref.ID).Error
		party = &m
	case models.PartyKindRetailNetwork:
		var r models.RetailNetwork
		err = db.First(&r, "id = ?", ref.ID).Error
		party = &r
	case models.PartyKindIndividualEntrepreneur:
		var e models.IndividualEntrepreneur
		err = db.First(&e, "id = ?", ref.ID).Error
		party = &e
	default:
		return nil, fmt.Errorf("unknown party kind %q", ref.Kind)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return party, nil
}

// loadScopedParty is loadParty restricted to the caller's records.
func loadScopedParty(db *gorm.DB, caller models.Caller, ref models.PartyRef) (models.Participant, error) {
	party, err := loadParty(db, ref)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(party.OwnedBy()) {
		return nil, ErrNotFound
	}
	return party, nil
}

func preloadSuppliers(db *gorm.DB) *gorm.DB {
	return db.Preload("Manufacturer").Preload("RetailNetwork")
}
