package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartyFromFields(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	ref, ok := PartyFromFields(&a, nil, nil)
	require.True(t, ok)
	assert.Equal(t, ManufacturerRef(a), ref)

	ref, ok = PartyFromFields(nil, nil, &b)
	require.True(t, ok)
	assert.Equal(t, IndividualEntrepreneurRef(b), ref)

	_, ok = PartyFromFields(nil, nil, nil)
	assert.False(t, ok)
	_, ok = PartyFromFields(&a, &b, nil)
	assert.False(t, ok)

	m, r, e := RetailNetworkRef(a).Fields()
	assert.Nil(t, m)
	assert.Equal(t, &a, r)
	assert.Nil(t, e)

	m, r, e = PartyRef{}.Fields()
	assert.Nil(t, m)
	assert.Nil(t, r)
	assert.Nil(t, e)
}

func testProduct() (*Product, *Manufacturer, *RetailNetwork) {
	m := &Manufacturer{BaseModel: BaseModel{ID: uuid.New()}, PartyDetails: PartyDetails{Name: "M"}}
	r1 := &RetailNetwork{BaseModel: BaseModel{ID: uuid.New()}, PartyDetails: PartyDetails{Name: "R1"}, Level: 1, ManufacturerID: &m.ID}
	p := &Product{
		BaseModel:      BaseModel{ID: uuid.New()},
		Name:           "Phone",
		Model:          "X1",
		ManufacturerID: &m.ID,
		Manufacturer:   m,
		Retailers:      []RetailNetwork{*r1},
	}
	return p, m, r1
}

func TestTransactionValidateAgainst(t *testing.T) {
	p, m, r1 := testProduct()
	r2 := RetailNetworkRef(uuid.New())

	tx := &Transaction{ProductID: p.ID, Amount: 1, Debt: decimal.Zero}
	tx.SetSeller(r2)
	tx.SetBuyer(r1.Ref())
	assert.ErrorIs(t, tx.ValidateAgainst(p), ErrSellerNotAuthorizedForProduct)

	tx.SetSeller(m.Ref())
	assert.NoError(t, tx.ValidateAgainst(p))

	// both seller columns set is rejected whatever the supplier set holds
	tx.SellerRetailNetworkID = &r1.ID
	assert.ErrorIs(t, tx.ValidateAgainst(p), ErrAmbiguousSeller)

	tx.SetSeller(m.Ref())
	tx.SetBuyer(PartyRef{})
	assert.ErrorIs(t, tx.ValidateAgainst(p), ErrAmbiguousBuyer)
}

func TestTransactionQuantities(t *testing.T) {
	p, m, r1 := testProduct()

	tests := []struct {
		amount int
		debt   string
		want   error
	}{
		{1, "0", nil},
		{5, "99999999.99", nil},
		{1, "150.5", nil},
		{0, "0", ErrInvalidAmount},
		{-3, "0", ErrInvalidAmount},
		{1, "-0.01", ErrInvalidDebt},
		{1, "0.001", ErrInvalidDebt},
		{1, "100000000", ErrInvalidDebt},
	}

	for _, tt := range tests {
		tx := &Transaction{ProductID: p.ID, Amount: tt.amount, Debt: decimal.RequireFromString(tt.debt)}
		tx.SetSeller(m.Ref())
		tx.SetBuyer(r1.Ref())

		if tt.want == nil {
			assert.NoError(t, tx.ValidateAgainst(p), "amount=%d debt=%s", tt.amount, tt.debt)
		} else {
			assert.ErrorIs(t, tx.ValidateAgainst(p), tt.want, "amount=%d debt=%s", tt.amount, tt.debt)
		}
	}
}

func TestProductSupplierSetAndLevels(t *testing.T) {
	p, m, r1 := testProduct()
	e := IndividualEntrepreneur{BaseModel: BaseModel{ID: uuid.New()}, Level: 2}
	p.Entrepreneurs = []IndividualEntrepreneur{e}
	p.Retailers = append(p.Retailers, *r1)

	assert.Equal(t, []PartyRef{m.Ref(), r1.Ref(), r1.Ref(), e.Ref()}, p.SupplierSet())
	assert.Equal(t, []int{0, 1, 1, 2}, p.SupplierLevels())
	assert.True(t, p.HasSupplier(e.Ref()))
	assert.False(t, p.HasSupplier(PartyRef{}))
	assert.Equal(t, "Phone - X1", p.DisplayName())

	empty := &Product{}
	assert.Empty(t, empty.SupplierSet())
	assert.Empty(t, empty.SupplierLevels())
}

func TestSummaryOf(t *testing.T) {
	assert.Nil(t, SummaryOf(nil))

	m := &Manufacturer{BaseModel: BaseModel{ID: uuid.New()}, PartyDetails: PartyDetails{Name: "Gamma"}}
	s := SummaryOf(m)
	assert.Equal(t, PartyKindManufacturer, s.Kind)
	assert.Equal(t, m.ID, *s.ID)
	assert.Equal(t, "Gamma", s.Name)
}
