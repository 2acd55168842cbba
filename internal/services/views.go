// internal/services/views.go
package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elnet/electronics-network/internal/models"
)

const dateLayout = "2006-01-02"

// PartyView is the read model of a manufacturer, retail network or
// individual entrepreneur.
type PartyView struct {
	ID              uuid.UUID            `json:"id"`
	Kind            models.PartyKind     `json:"kind"`
	Owner           uuid.UUID            `json:"owner"`
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Country         string               `json:"country"`
	City            string               `json:"city"`
	Street          string               `json:"street"`
	HouseNumber     string               `json:"house_number"`
	Level           int                  `json:"level"`
	ManufacturerID  *uuid.UUID           `json:"manufacturer_id,omitempty"`
	RetailNetworkID *uuid.UUID           `json:"retail_network_id,omitempty"`
	Supplier        *models.PartySummary `json:"supplier"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func newPartyView(base models.BaseModel, kind models.PartyKind, d models.PartyDetails, level int) PartyView {
	return PartyView{
		ID:          base.ID,
		Kind:        kind,
		Owner:       d.OwnerID,
		Name:        d.Name,
		Email:       d.Email,
		Country:     d.Country,
		City:        d.City,
		Street:      d.Street,
		HouseNumber: d.HouseNumber,
		Level:       level,
		CreatedAt:   base.CreatedAt,
		UpdatedAt:   base.UpdatedAt,
	}
}

func ManufacturerView(m *models.Manufacturer) PartyView {
	return newPartyView(m.BaseModel, models.PartyKindManufacturer, m.PartyDetails, m.Level)
}

// RetailNetworkView expects the Manufacturer and RetailNetwork associations
// to be preloaded for the supplier name.
func RetailNetworkView(r *models.RetailNetwork) PartyView {
	v := newPartyView(r.BaseModel, models.PartyKindRetailNetwork, r.PartyDetails, r.Level)
	v.ManufacturerID = r.ManufacturerID
	v.RetailNetworkID = r.RetailNetworkID
	v.Supplier = supplierSummary(r.Supplier(), r.Manufacturer, r.RetailNetwork)
	return v
}

func IndividualEntrepreneurView(e *models.IndividualEntrepreneur) PartyView {
	v := newPartyView(e.BaseModel, models.PartyKindIndividualEntrepreneur, e.PartyDetails, e.Level)
	v.ManufacturerID = e.ManufacturerID
	v.RetailNetworkID = e.RetailNetworkID
	v.Supplier = supplierSummary(e.Supplier(), e.Manufacturer, e.RetailNetwork)
	return v
}

func supplierSummary(ref *models.PartyRef, m *models.Manufacturer, r *models.RetailNetwork) *models.PartySummary {
	if ref == nil {
		return nil
	}
	switch {
	case ref.Kind == models.PartyKindManufacturer && m != nil:
		return models.SummaryOf(m)
	case ref.Kind == models.PartyKindRetailNetwork && r != nil:
		return models.SummaryOf(r)
	}
	id := ref.ID
	return &models.PartySummary{Kind: ref.Kind, ID: &id}
}

// ProductView is the read model of a product with its supplier set.
type ProductView struct {
	ID             uuid.UUID             `json:"id"`
	Owner          uuid.UUID             `json:"owner"`
	Name           string                `json:"name"`
	Model          string                `json:"model"`
	ReleaseDate    string                `json:"release_date"`
	ManufacturerID *uuid.UUID            `json:"manufacturer_id"`
	Manufacturer   *models.PartySummary  `json:"manufacturer"`
	Retailers      []models.PartySummary `json:"retailers"`
	Entrepreneurs  []models.PartySummary `json:"entrepreneurs"`
	SupplierLevels []int                 `json:"supplier_levels"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func NewProductView(p *models.Product) ProductView {
	v := ProductView{
		ID:             p.ID,
		Owner:          p.OwnerID,
		Name:           p.Name,
		Model:          p.Model,
		ReleaseDate:    p.ReleaseDate.Format(dateLayout),
		ManufacturerID: p.ManufacturerID,
		Retailers:      make([]models.PartySummary, 0, len(p.Retailers)),
		Entrepreneurs:  make([]models.PartySummary, 0, len(p.Entrepreneurs)),
		SupplierLevels: p.SupplierLevels(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.Manufacturer != nil {
		v.Manufacturer = models.SummaryOf(p.Manufacturer)
	}
	for i := range p.Retailers {
		v.Retailers = append(v.Retailers, *models.SummaryOf(&p.Retailers[i]))
	}
	for i := range p.Entrepreneurs {
		v.Entrepreneurs = append(v.Entrepreneurs, *models.SummaryOf(&p.Entrepreneurs[i]))
	}
	return v
}

// TransactionView is the read model of a transaction. Seller and Buyer fall
// back to the unknown sentinels when no party can be resolved.
type TransactionView struct {
	ID        uuid.UUID           `json:"id"`
	Owner     uuid.UUID           `json:"owner"`
	ProductID uuid.UUID           `json:"product_id"`
	Product   string              `json:"product"`
	Seller    models.PartySummary `json:"seller"`
	Buyer     models.PartySummary `json:"buyer"`

	SellerManufacturerID           *uuid.UUID `json:"seller_manufacturer"`
	SellerRetailNetworkID          *uuid.UUID `json:"seller_retail_network"`
	SellerIndividualEntrepreneurID *uuid.UUID `json:"seller_individual_entrepreneur"`
	BuyerManufacturerID            *uuid.UUID `json:"buyer_manufacturer"`
	BuyerRetailNetworkID           *uuid.UUID `json:"buyer_retail_network"`
	BuyerIndividualEntrepreneurID  *uuid.UUID `json:"buyer_individual_entrepreneur"`

	Amount    int       `json:"amount"`
	Debt      string    `json:"debt"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTransactionView expects the product and party associations preloaded.
func NewTransactionView(t *models.Transaction) TransactionView {
	v := TransactionView{
		ID:                             t.ID,
		Owner:                          t.OwnerID,
		ProductID:                      t.ProductID,
		Seller:                         displayParty(activeParty(t.SellerManufacturer, t.SellerRetailNetwork, t.SellerIndividualEntrepreneur), models.UnknownSeller),
		Buyer:                          displayParty(activeParty(t.BuyerManufacturer, t.BuyerRetailNetwork, t.BuyerIndividualEntrepreneur), models.UnknownBuyer),
		SellerManufacturerID:           t.SellerManufacturerID,
		SellerRetailNetworkID:          t.SellerRetailNetworkID,
		SellerIndividualEntrepreneurID: t.SellerIndividualEntrepreneurID,
		BuyerManufacturerID:            t.BuyerManufacturerID,
		BuyerRetailNetworkID:           t.BuyerRetailNetworkID,
		BuyerIndividualEntrepreneurID:  t.BuyerIndividualEntrepreneurID,
		Amount:                         t.Amount,
		Debt:                           t.Debt.StringFixed(2),
		CreatedAt:                      t.CreatedAt,
		UpdatedAt:                      t.UpdatedAt,
	}
	if t.Product != nil {
		v.Product = t.Product.DisplayName()
	}
	return v
}

// activeParty returns the first loaded party of a role triple, or nil.
func activeParty(m *models.Manufacturer, r *models.RetailNetwork, e *models.IndividualEntrepreneur) models.Participant {
	switch {
	case m != nil:
		return m
	case r != nil:
		return r
	case e != nil:
		return e
	}
	return nil
}

func displayParty(p models.Participant, unknown string) models.PartySummary {
	if p == nil {
		return models.PartySummary{Name: unknown}
	}
	return *models.SummaryOf(p)
}

func preloadTransactionParties(db *gorm.DB) *gorm.DB {
	return db.Preload("Product").
		Preload("SellerManufacturer").Preload("SellerRetailNetwork").Preload("SellerIndividualEntrepreneur").
		Preload("BuyerManufacturer").Preload("BuyerRetailNetwork").Preload("BuyerIndividualEntrepreneur")
}

func preloadProductSuppliers(db *gorm.DB) *gorm.DB {
	return db.Preload("Manufacturer").
		Preload("Retailers", func(db *gorm.DB) *gorm.DB {
			return db.Order("retail_networks.created_at")
		}).
		Preload("Entrepreneurs", func(db *gorm.DB) *gorm.DB {
			return db.Order("individual_entrepreneurs.created_at")
		})
}
