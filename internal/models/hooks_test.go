package models_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"

	"github.com/elnet/electronics-network/internal/models"
	"github.com/elnet/electronics-network/internal/testutil"
)

func details(name string, owner *models.User) models.PartyDetails {
	return models.PartyDetails{
		OwnerID: owner.ID, Name: name, Email: "x@example.com",
		Country: "RU", City: "Kazan", Street: "Baumana", HouseNumber: "7",
	}
}

// Saves that bypass the service layer still run the hierarchy and
// transaction rules.
func TestSaveHooksValidate(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.NewUser(t, db, "owner", false)

	m := &models.Manufacturer{PartyDetails: details("M", owner)}
	require.NoError(t, db.Create(m).Error)

	r1 := &models.RetailNetwork{PartyDetails: details("R1", owner), Level: 1, ManufacturerID: &m.ID}
	require.NoError(t, db.Create(r1).Error)

	e := &models.IndividualEntrepreneur{PartyDetails: details("IE", owner), Level: 2, RetailNetworkID: &r1.ID}
	require.NoError(t, db.Create(e).Error)

	// programmatic update adding a second supplier
	e.ManufacturerID = &m.ID
	assert.ErrorIs(t, db.Save(e).Error, models.ErrAmbiguousSupplier)

	var stored models.IndividualEntrepreneur
	require.NoError(t, db.First(&stored, "id = ?", e.ID).Error)
	assert.Nil(t, stored.ManufacturerID)

	bad := &models.RetailNetwork{PartyDetails: details("R2", owner), Level: 2, ManufacturerID: &m.ID}
	assert.ErrorIs(t, db.Create(bad).Error, models.ErrMissingSupplierForTier)

	product := &models.Product{
		OwnerID: owner.ID, Name: "Phone", Model: "X1",
		ReleaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ManufacturerID: &m.ID,
	}
	require.NoError(t, db.Omit(clause.Associations).Create(product).Error)

	sale := &models.Transaction{OwnerID: owner.ID, ProductID: product.ID, Amount: 1, Debt: decimal.NewFromInt(10)}
	sale.SetSeller(r1.Ref())
	sale.SetBuyer(e.Ref())
	assert.ErrorIs(t, db.Omit(clause.Associations).Create(sale).Error, models.ErrSellerNotAuthorizedForProduct)

	sale.SetSeller(m.Ref())
	require.NoError(t, db.Omit(clause.Associations).Create(sale).Error)

	sale.Amount = 0
	assert.ErrorIs(t, db.Omit(clause.Associations).Save(sale).Error, models.ErrInvalidAmount)
}

func TestSavingValidRecordUnchangedIsNoop(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.NewUser(t, db, "owner", false)

	m := &models.Manufacturer{PartyDetails: details("M", owner)}
	require.NoError(t, db.Create(m).Error)
	r1 := &models.RetailNetwork{PartyDetails: details("R1", owner), Level: 1, ManufacturerID: &m.ID}
	require.NoError(t, db.Create(r1).Error)

	var before models.RetailNetwork
	require.NoError(t, db.First(&before, "id = ?", r1.ID).Error)

	require.NoError(t, r1.Validate())
	require.NoError(t, db.Omit(clause.Associations).Save(r1).Error)

	var after models.RetailNetwork
	require.NoError(t, db.First(&after, "id = ?", r1.ID).Error)
	assert.Equal(t, before.PartyDetails, after.PartyDetails)
	assert.Equal(t, before.Level, after.Level)
	assert.Equal(t, before.ManufacturerID, after.ManufacturerID)
	assert.Nil(t, after.RetailNetworkID)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
}

func TestRetailNetworkCannotSupplyItself(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.NewUser(t, db, "owner", false)

	m := &models.Manufacturer{PartyDetails: details("M", owner)}
	require.NoError(t, db.Create(m).Error)
	r1 := &models.RetailNetwork{PartyDetails: details("R1", owner), Level: 1, ManufacturerID: &m.ID}
	require.NoError(t, db.Create(r1).Error)
	r2 := &models.RetailNetwork{PartyDetails: details("R2", owner), Level: 2, RetailNetworkID: &r1.ID}
	require.NoError(t, db.Create(r2).Error)

	r2.RetailNetworkID = &r2.ID
	assert.ErrorIs(t, db.Omit(clause.Associations).Save(r2).Error, models.ErrSelfSupplier)

	var stored models.RetailNetwork
	require.NoError(t, db.First(&stored, "id = ?", r2.ID).Error)
	require.NotNil(t, stored.RetailNetworkID)
	assert.Equal(t, r1.ID, *stored.RetailNetworkID)
}
