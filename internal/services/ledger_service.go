// internal/services/ledger_service.go
package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/elnet/electronics-network/internal/metrics"
	"github.com/elnet/electronics-network/internal/models"
)

// LedgerService aggregates and clears buyer debt.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// buyerColumn is the transaction column holding a buyer of the given kind.
func buyerColumn(kind models.PartyKind) string {
	return "buyer_" + string(kind) + "_id"
}

// TotalDebt sums debt over every transaction where the party is the buyer.
// The party must be visible to the caller; the transactions are counted
// whoever recorded them.
func (s *LedgerService) TotalDebt(caller models.Caller, ref models.PartyRef) (decimal.Decimal, error) {
	if _, err := loadScopedParty(s.db, caller, ref); err != nil {
		return decimal.Zero, err
	}
	return sumBuyerDebt(s.db, ref)
}

// PartyDebt is the rendered total debt of one buyer.
type PartyDebt struct {
	Party     models.PartySummary `json:"party"`
	TotalDebt string              `json:"total_debt"`
}

// DebtOf is TotalDebt with the party summary attached.
func (s *LedgerService) DebtOf(caller models.Caller, ref models.PartyRef) (*PartyDebt, error) {
	party, err := loadScopedParty(s.db, caller, ref)
	if err != nil {
		return nil, err
	}
	total, err := sumBuyerDebt(s.db, ref)
	if err != nil {
		return nil, err
	}
	return &PartyDebt{Party: *models.SummaryOf(party), TotalDebt: total.StringFixed(2)}, nil
}

func sumBuyerDebt(db *gorm.DB, ref models.PartyRef) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(debt), 0)").
		Where(buyerColumn(ref.Kind)+" = ?", ref.ID).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum debt of %s: %w", ref, err)
	}
	return total.Round(2), nil
}

// ClearDebt sets debt to zero on every transaction bought by any of the
// parties, in one UPDATE statement. It returns the number of rows touched.
func (s *LedgerService) ClearDebt(caller models.Caller, parties []models.PartyRef) (int64, error) {
	if !caller.Superuser {
		return 0, ErrForbidden
	}
	if len(parties) == 0 {
		return 0, nil
	}

	ids := make(map[models.PartyKind][]interface{})
	for _, p := range parties {
		if !p.Kind.Valid() {
			return 0, fmt.Errorf("unknown party kind %q", p.Kind)
		}
		ids[p.Kind] = append(ids[p.Kind], p.ID)
	}

	var cond *gorm.DB
	for _, kind := range []models.PartyKind{
		models.PartyKindManufacturer,
		models.PartyKindRetailNetwork,
		models.PartyKindIndividualEntrepreneur,
	} {
		if len(ids[kind]) == 0 {
			continue
		}
		expr := buyerColumn(kind) + " IN ?"
		if cond == nil {
			cond = s.db.Where(expr, ids[kind])
		} else {
			cond = cond.Or(expr, ids[kind])
		}
	}

	// UpdateColumn skips the save hooks, which would re-validate every row.
	result := s.db.Model(&models.Transaction{}).Where(cond).UpdateColumn("debt", decimal.Zero)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear debt: %w", result.Error)
	}

	metrics.RecordDebtCleared(result.RowsAffected)
	logrus.WithFields(logrus.Fields{
		"user_id":      caller.UserID,
		"parties":      len(parties),
		"rows_cleared": result.RowsAffected,
	}).Warn("Debt cleared")

	return result.RowsAffected, nil
}
