// internal/services/product_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/elnet/electronics-network/internal/metrics"
	"github.com/elnet/electronics-network/internal/models"
	"github.com/elnet/electronics-network/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

// ProductRequest creates or replaces a product and its seller links.
type ProductRequest struct {
	Name            string      `json:"name" validate:"required,max=255"`
	Model           string      `json:"model" validate:"required,max=255"`
	ReleaseDate     string      `json:"release_date" validate:"required,datetime=2006-01-02"`
	ManufacturerID  *uuid.UUID  `json:"manufacturer_id"`
	RetailerIDs     []uuid.UUID `json:"retailer_ids"`
	EntrepreneurIDs []uuid.UUID `json:"entrepreneur_ids"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) CreateProduct(caller models.Caller, req *ProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	releaseDate, err := time.Parse(dateLayout, req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		OwnerID:        caller.UserID,
		Name:           req.Name,
		Model:          req.Model,
		ReleaseDate:    releaseDate,
		ManufacturerID: req.ManufacturerID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureSupplierLinks(tx, product.ManufacturerID, nil); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		return replaceSellerLinks(tx, product.ID, req.RetailerIDs, req.EntrepreneurIDs)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordRegistryOperation("product", "create")
	return s.reload(product.ID)
}

func (s *ProductService) GetProduct(caller models.Caller, id uuid.UUID) (*models.Product, error) {
	return findScoped[models.Product](s.db, caller, "products", id, preloadProductSuppliers)
}

func (s *ProductService) ListProducts(caller models.Caller, params utils.PaginationParams) ([]models.Product, int64, error) {
	return listScoped[models.Product](s.db, caller, "products", params, preloadProductSuppliers)
}

// UpdateProduct replaces the product fields and its whole seller link set.
// Existing transactions are not re-checked against the new supplier set.
func (s *ProductService) UpdateProduct(caller models.Caller, id uuid.UUID, req *ProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	releaseDate, err := time.Parse(dateLayout, req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		product, err := findScoped[models.Product](tx, caller, "products", id, lockForUpdate)
		if err != nil {
			return err
		}

		product.OwnerID = caller.UserID
		product.Name = req.Name
		product.Model = req.Model
		product.ReleaseDate = releaseDate
		product.ManufacturerID = req.ManufacturerID

		if err := ensureSupplierLinks(tx, product.ManufacturerID, nil); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(product).Error; err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		return replaceSellerLinks(tx, product.ID, req.RetailerIDs, req.EntrepreneurIDs)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordRegistryOperation("product", "update")
	return s.reload(id)
}

// DeleteProduct removes the product, its seller links and its transactions.
func (s *ProductService) DeleteProduct(caller models.Caller, id uuid.UUID) error {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findScoped[models.Product](tx, caller, "products", id, lockForUpdate); err != nil {
			return err
		}
		c := newCascade(tx)
		if err := c.product(id); err != nil {
			return err
		}
		deleted = c.deleted
		return nil
	})
	if err != nil {
		return err
	}

	logCascade(caller, "product", id, deleted)
	metrics.RecordRegistryOperation("product", "delete")
	return nil
}

func (s *ProductService) reload(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := preloadProductSuppliers(s.db).First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return &product, nil
}

// replaceSellerLinks rewrites the product's retailer and entrepreneur links.
// Every id must name a stored party.
func replaceSellerLinks(tx *gorm.DB, productID uuid.UUID, retailerIDs, entrepreneurIDs []uuid.UUID) error {
	links := []struct {
		table  string
		column string
		kind   models.PartyKind
		ids    []uuid.UUID
	}{
		{"product_retailers", "retail_network_id", models.PartyKindRetailNetwork, uniqueIDs(retailerIDs)},
		{"product_entrepreneurs", "individual_entrepreneur_id", models.PartyKindIndividualEntrepreneur, uniqueIDs(entrepreneurIDs)},
	}

	for _, link := range links {
		for _, id := range link.ids {
			if err := ensurePartyExists(tx, models.PartyRef{Kind: link.kind, ID: id}); err != nil {
				return err
			}
		}

		if err := tx.Exec("DELETE FROM "+link.table+" WHERE product_id = ?", productID).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", link.table, err)
		}
		for _, id := range link.ids {
			insert := "INSERT INTO " + link.table + " (product_id, " + link.column + ") VALUES (?, ?)"
			if err := tx.Exec(insert, productID, id).Error; err != nil {
				return fmt.Errorf("failed to link %s: %w", link.table, err)
			}
		}
	}
	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
