// internal/models/transaction.go
package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxDebt mirrors the decimal(10,2) column: eight integer digits.
var maxDebt = decimal.New(1, 8)

type Transaction struct {
	BaseModel
	OwnerID   uuid.UUID `json:"owner" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product" gorm:"type:uuid;not null;index"`

	SellerManufacturerID           *uuid.UUID `json:"seller_manufacturer" gorm:"type:uuid;index"`
	SellerRetailNetworkID          *uuid.UUID `json:"seller_retail_network" gorm:"type:uuid;index"`
	SellerIndividualEntrepreneurID *uuid.UUID `json:"seller_individual_entrepreneur" gorm:"type:uuid;index"`

	BuyerManufacturerID           *uuid.UUID `json:"buyer_manufacturer" gorm:"type:uuid;index"`
	BuyerRetailNetworkID          *uuid.UUID `json:"buyer_retail_network" gorm:"type:uuid;index"`
	BuyerIndividualEntrepreneurID *uuid.UUID `json:"buyer_individual_entrepreneur" gorm:"type:uuid;index"`

	Amount int             `json:"amount" gorm:"not null;default:1"`
	Debt   decimal.Decimal `json:"debt" gorm:"type:decimal(10,2);not null;default:0"`

	// Relationships
	Product                      *Product                `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	SellerManufacturer           *Manufacturer           `json:"-" gorm:"foreignKey:SellerManufacturerID;constraint:OnDelete:CASCADE"`
	SellerRetailNetwork          *RetailNetwork          `json:"-" gorm:"foreignKey:SellerRetailNetworkID;constraint:OnDelete:CASCADE"`
	SellerIndividualEntrepreneur *IndividualEntrepreneur `json:"-" gorm:"foreignKey:SellerIndividualEntrepreneurID;constraint:OnDelete:CASCADE"`
	BuyerManufacturer            *Manufacturer           `json:"-" gorm:"foreignKey:BuyerManufacturerID;constraint:OnDelete:CASCADE"`
	BuyerRetailNetwork           *RetailNetwork          `json:"-" gorm:"foreignKey:BuyerRetailNetworkID;constraint:OnDelete:CASCADE"`
	BuyerIndividualEntrepreneur  *IndividualEntrepreneur `json:"-" gorm:"foreignKey:BuyerIndividualEntrepreneurID;constraint:OnDelete:CASCADE"`
}

// Seller returns the single seller reference; ok is false when zero or
// several seller columns are set.
func (t *Transaction) Seller() (PartyRef, bool) {
	return PartyFromFields(t.SellerManufacturerID, t.SellerRetailNetworkID, t.SellerIndividualEntrepreneurID)
}

func (t *Transaction) Buyer() (PartyRef, bool) {
	return PartyFromFields(t.BuyerManufacturerID, t.BuyerRetailNetworkID, t.BuyerIndividualEntrepreneurID)
}

// SetSeller overwrites all three seller columns so exactly one is set.
func (t *Transaction) SetSeller(ref PartyRef) {
	t.SellerManufacturerID, t.SellerRetailNetworkID, t.SellerIndividualEntrepreneurID = ref.Fields()
}

func (t *Transaction) SetBuyer(ref PartyRef) {
	t.BuyerManufacturerID, t.BuyerRetailNetworkID, t.BuyerIndividualEntrepreneurID = ref.Fields()
}

// ValidateParties checks the seller and buyer columns in that order.
func (t *Transaction) ValidateParties() (seller, buyer PartyRef, err error) {
	seller, ok := t.Seller()
	if !ok {
		return PartyRef{}, PartyRef{}, newValidationError(KindAmbiguousSeller,
			"exactly one seller field must be set")
	}
	buyer, ok = t.Buyer()
	if !ok {
		return PartyRef{}, PartyRef{}, newValidationError(KindAmbiguousBuyer,
			"exactly one buyer field must be set")
	}
	return seller, buyer, nil
}

// ValidateAgainst runs every transaction rule given the referenced product
// with its Retailers and Entrepreneurs preloaded.
func (t *Transaction) ValidateAgainst(product *Product) error {
	seller, _, err := t.ValidateParties()
	if err != nil {
		return err
	}

	if !product.HasSupplier(seller) {
		return newValidationError(KindSellerNotAuthorizedForProduct,
			fmt.Sprintf("seller %s is not a supplier of product %s", seller, product.ID))
	}

	return t.validateQuantities()
}

func (t *Transaction) validateQuantities() error {
	if t.Amount < 1 {
		return newValidationError(KindInvalidAmount,
			fmt.Sprintf("amount must be a positive integer, got %d", t.Amount))
	}
	if t.Debt.IsNegative() {
		return newValidationError(KindInvalidDebt, "debt must not be negative")
	}
	if !t.Debt.Equal(t.Debt.Round(2)) {
		return newValidationError(KindInvalidDebt, "debt must have at most 2 fractional digits")
	}
	if t.Debt.GreaterThanOrEqual(maxDebt) {
		return newValidationError(KindInvalidDebt, "debt must have at most 8 integer digits")
	}
	return nil
}

// BeforeSave re-validates against the stored product inside the current
// database transaction.
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	if _, _, err := t.ValidateParties(); err != nil {
		return err
	}

	var product Product
	if err := tx.Session(&gorm.Session{NewDB: true}).
		Preload("Retailers").Preload("Entrepreneurs").
		First(&product, "id = ?", t.ProductID).Error; err != nil {
		return fmt.Errorf("product %s: %w", t.ProductID, err)
	}

	return t.ValidateAgainst(&product)
}
