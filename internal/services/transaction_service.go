// internal/services/transaction_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/elnet/electronics-network/internal/metrics"
	"github.com/elnet/electronics-network/internal/models"
	"github.com/elnet/electronics-network/internal/utils"
)

type TransactionService struct {
	db *gorm.DB
}

// TransactionRequest creates or replaces a transaction. Exactly one seller
// field and exactly one buyer field must be set. Amount defaults to 1 and
// debt to 0; debt accepts a JSON string or number.
type TransactionRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`

	SellerManufacturerID           *uuid.UUID `json:"seller_manufacturer"`
	SellerRetailNetworkID          *uuid.UUID `json:"seller_retail_network"`
	SellerIndividualEntrepreneurID *uuid.UUID `json:"seller_individual_entrepreneur"`

	BuyerManufacturerID           *uuid.UUID `json:"buyer_manufacturer"`
	BuyerRetailNetworkID          *uuid.UUID `json:"buyer_retail_network"`
	BuyerIndividualEntrepreneurID *uuid.UUID `json:"buyer_individual_entrepreneur"`

	Amount *int             `json:"amount"`
	Debt   *decimal.Decimal `json:"debt"`
}

func (r *TransactionRequest) apply(t *models.Transaction, ownerID uuid.UUID) {
	t.OwnerID = ownerID
	t.ProductID = r.ProductID
	t.SellerManufacturerID = r.SellerManufacturerID
	t.SellerRetailNetworkID = r.SellerRetailNetworkID
	t.SellerIndividualEntrepreneurID = r.SellerIndividualEntrepreneurID
	t.BuyerManufacturerID = r.BuyerManufacturerID
	t.BuyerRetailNetworkID = r.BuyerRetailNetworkID
	t.BuyerIndividualEntrepreneurID = r.BuyerIndividualEntrepreneurID

	t.Amount = 1
	if r.Amount != nil {
		t.Amount = *r.Amount
	}
	t.Debt = decimal.Zero
	if r.Debt != nil {
		t.Debt = *r.Debt
	}
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

func (s *TransactionService) CreateTransaction(caller models.Caller, req *TransactionRequest) (*models.Transaction, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	transaction := &models.Transaction{}
	req.apply(transaction, caller.UserID)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.validate(tx, transaction); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(transaction).Error
	})
	if err != nil {
		rejected(err, "transaction", caller)
		return nil, err
	}

	metrics.RecordRegistryOperation("transaction", "create")
	return s.reload(transaction.ID)
}

func (s *TransactionService) GetTransaction(caller models.Caller, id uuid.UUID) (*models.Transaction, error) {
	return findScoped[models.Transaction](s.db, caller, "transactions", id, preloadTransactionParties)
}

func (s *TransactionService) ListTransactions(caller models.Caller, params utils.PaginationParams) ([]models.Transaction, int64, error) {
	return listScoped[models.Transaction](s.db, caller, "transactions", params, preloadTransactionParties)
}

func (s *TransactionService) UpdateTransaction(caller models.Caller, id uuid.UUID, req *TransactionRequest) (*models.Transaction, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		transaction, err := findScoped[models.Transaction](tx, caller, "transactions", id, lockForUpdate)
		if err != nil {
			return err
		}

		req.apply(transaction, caller.UserID)

		if err := s.validate(tx, transaction); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(transaction).Error
	})
	if err != nil {
		rejected(err, "transaction", caller)
		return nil, err
	}

	metrics.RecordRegistryOperation("transaction", "update")
	return s.reload(id)
}

func (s *TransactionService) DeleteTransaction(caller models.Caller, id uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findScoped[models.Transaction](tx, caller, "transactions", id); err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Transaction{}).Error
	})
	if err != nil {
		return err
	}

	metrics.RecordRegistryOperation("transaction", "delete")
	return nil
}

// validate applies the transaction rules in order: seller and buyer
// cardinality, seller membership in the product's supplier set, then amount
// and debt. The product row stays locked until the surrounding database
// transaction ends, so its supplier set cannot change underneath the check.
func (s *TransactionService) validate(tx *gorm.DB, transaction *models.Transaction) error {
	seller, buyer, err := transaction.ValidateParties()
	if err != nil {
		return err
	}

	var product models.Product
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Retailers").Preload("Entrepreneurs").
		First(&product, "id = ?", transaction.ProductID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %s", ErrReferenceNotFound, transaction.ProductID)
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := transaction.ValidateAgainst(&product); err != nil {
		return err
	}

	if err := ensurePartyExists(tx, seller); err != nil {
		return err
	}
	return ensurePartyExists(tx, buyer)
}

func (s *TransactionService) reload(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := preloadTransactionParties(s.db).First(&transaction, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	return &transaction, nil
}
