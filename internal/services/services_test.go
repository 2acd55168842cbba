package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/elnet/electronics-network/internal/models"
	"github.com/elnet/electronics-network/internal/services"
	"github.com/elnet/electronics-network/internal/testutil"
	"github.com/elnet/electronics-network/internal/utils"
)

type ServicesTestSuite struct {
	suite.Suite
	db *gorm.DB

	owner models.Caller
	other models.Caller
	admin models.Caller

	manufacturers *services.ManufacturerService
	networks      *services.RetailNetworkService
	entrepreneurs *services.EntrepreneurService
	products      *services.ProductService
	transactions  *services.TransactionService
	suppliers     *services.SupplierService
	ledger        *services.LedgerService
}

func (suite *ServicesTestSuite) SetupTest() {
	suite.db = testutil.NewDB(suite.T())

	suite.owner = testutil.NewUser(suite.T(), suite.db, "owner", false).Caller()
	suite.other = testutil.NewUser(suite.T(), suite.db, "other", false).Caller()
	suite.admin = testutil.NewUser(suite.T(), suite.db, "admin", true).Caller()

	suite.manufacturers = services.NewManufacturerService(suite.db)
	suite.networks = services.NewRetailNetworkService(suite.db)
	suite.entrepreneurs = services.NewEntrepreneurService(suite.db)
	suite.products = services.NewProductService(suite.db)
	suite.transactions = services.NewTransactionService(suite.db)
	suite.suppliers = services.NewSupplierService(suite.db)
	suite.ledger = services.NewLedgerService(suite.db)
}

func TestServicesTestSuite(t *testing.T) {
	suite.Run(t, new(ServicesTestSuite))
}

func details(name string) services.PartyDetailsRequest {
	return services.PartyDetailsRequest{
		Name:        name,
		Email:       "contact@example.com",
		Country:     "Russia",
		City:        "Moscow",
		Street:      "Tverskaya",
		HouseNumber: "1",
	}
}

func intPtr(v int) *int { return &v }

func decimalPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// chain is M (level 0) -> R1 (level 1) -> R2 (level 2) and product P sold by M and R1.
type chain struct {
	m       *models.Manufacturer
	r1, r2  *models.RetailNetwork
	product *models.Product
}

func (suite *ServicesTestSuite) buildChain(caller models.Caller) chain {
	require := suite.Require()

	m, err := suite.manufacturers.CreateManufacturer(caller, &services.ManufacturerRequest{PartyDetailsRequest: details("M")})
	require.NoError(err)

	r1, err := suite.networks.CreateRetailNetwork(caller, &services.RetailNetworkRequest{
		PartyDetailsRequest: details("R1"),
		Level:               intPtr(1),
		ManufacturerID:      &m.ID,
	})
	require.NoError(err)

	r2, err := suite.networks.CreateRetailNetwork(caller, &services.RetailNetworkRequest{
		PartyDetailsRequest: details("R2"),
		Level:               intPtr(2),
		RetailNetworkID:     &r1.ID,
	})
	require.NoError(err)

	product, err := suite.products.CreateProduct(caller, &services.ProductRequest{
		Name:           "Phone",
		Model:          "X1",
		ReleaseDate:    "2024-01-15",
		ManufacturerID: &m.ID,
		RetailerIDs:    []uuid.UUID{r1.ID},
	})
	require.NoError(err)

	return chain{m: m, r1: r1, r2: r2, product: product}
}

func (suite *ServicesTestSuite) sale(c chain, seller, buyer models.PartyRef, debt string) (*models.Transaction, error) {
	req := &services.TransactionRequest{ProductID: c.product.ID, Debt: decimalPtr(debt)}
	req.SellerManufacturerID, req.SellerRetailNetworkID, req.SellerIndividualEntrepreneurID = seller.Fields()
	req.BuyerManufacturerID, req.BuyerRetailNetworkID, req.BuyerIndividualEntrepreneurID = buyer.Fields()
	return suite.transactions.CreateTransaction(suite.owner, req)
}

func (suite *ServicesTestSuite) TestRetailNetworkHierarchy() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	assert.Equal(t, models.LevelFirst, c.r1.Level)
	require.NotNil(t, c.r2.Supplier())
	assert.Equal(t, c.r1.Ref(), *c.r2.Supplier())

	// level 2 naming a manufacturer instead of a parent network
	_, err := suite.networks.CreateRetailNetwork(suite.owner, &services.RetailNetworkRequest{
		PartyDetailsRequest: details("R2 bad"),
		Level:               intPtr(2),
		ManufacturerID:      &c.m.ID,
	})
	assert.ErrorIs(t, err, models.ErrMissingSupplierForTier)

	_, err = suite.networks.CreateRetailNetwork(suite.owner, &services.RetailNetworkRequest{
		PartyDetailsRequest: details("R2 both"),
		Level:               intPtr(2),
		ManufacturerID:      &c.m.ID,
		RetailNetworkID:     &c.r1.ID,
	})
	assert.ErrorIs(t, err, models.ErrAmbiguousSupplier)

	_, err = suite.networks.CreateRetailNetwork(suite.owner, &services.RetailNetworkRequest{
		PartyDetailsRequest: details("R3"),
		Level:               intPtr(3),
		RetailNetworkID:     &c.r2.ID,
	})
	assert.ErrorIs(t, err, models.ErrInvalidTier)

	// level defaults to 1, which needs a manufacturer
	_, err = suite.networks.CreateRetailNetwork(suite.owner, &services.RetailNetworkRequest{
		PartyDetailsRequest: details("R default"),
	})
	assert.ErrorIs(t, err, models.ErrMissingSupplierForTier)

	missing := uuid.New()
	_, err = suite.networks.CreateRetailNetwork(suite.owner, &services.RetailNetworkRequest{
		PartyDetailsRequest: details("R orphan"),
		ManufacturerID:      &missing,
	})
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)

	var count int64
	suite.db.Model(&models.RetailNetwork{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func (suite *ServicesTestSuite) TestEntrepreneurHierarchy() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	first, err := suite.entrepreneurs.CreateEntrepreneur(suite.owner, &services.EntrepreneurRequest{
		PartyDetailsRequest: details("IE1"),
		Level:               1,
		ManufacturerID:      &c.m.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, c.m.Ref(), *first.Supplier())

	second, err := suite.entrepreneurs.CreateEntrepreneur(suite.owner, &services.EntrepreneurRequest{
		PartyDetailsRequest: details("IE2"),
		Level:               2,
		RetailNetworkID:     &c.r1.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, c.r1.Ref(), *second.Supplier())

	_, err = suite.entrepreneurs.CreateEntrepreneur(suite.owner, &services.EntrepreneurRequest{
		PartyDetailsRequest: details("IE bad"),
		Level:               1,
		RetailNetworkID:     &c.r1.ID,
	})
	assert.ErrorIs(t, err, models.ErrMissingSupplierForTier)

	_, err = suite.entrepreneurs.CreateEntrepreneur(suite.owner, &services.EntrepreneurRequest{
		PartyDetailsRequest: details("IE both"),
		Level:               1,
		ManufacturerID:      &c.m.ID,
		RetailNetworkID:     &c.r1.ID,
	})
	assert.ErrorIs(t, err, models.ErrAmbiguousSupplier)

	// level has no default
	_, err = suite.entrepreneurs.CreateEntrepreneur(suite.owner, &services.EntrepreneurRequest{
		PartyDetailsRequest: details("IE none"),
		ManufacturerID:      &c.m.ID,
	})
	assert.ErrorIs(t, err, models.ErrInvalidTier)
}

func (suite *ServicesTestSuite) TestUpdateRevalidatesHierarchy() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	_, err := suite.networks.UpdateRetailNetwork(suite.owner, c.r1.ID, &services.RetailNetworkRequest{
		PartyDetailsRequest: details("R1"),
		Level:               intPtr(2),
		ManufacturerID:      &c.m.ID,
	})
	assert.ErrorIs(t, err, models.ErrMissingSupplierForTier)

	stored, err := suite.networks.GetRetailNetwork(suite.owner, c.r1.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Level)
	assert.Equal(t, "R1", stored.Name)

	updated, err := suite.networks.UpdateRetailNetwork(suite.owner, c.r1.ID, &services.RetailNetworkRequest{
		PartyDetailsRequest: details("R1 renamed"),
		Level:               intPtr(1),
		ManufacturerID:      &c.m.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "R1 renamed", updated.Name)
	require.NotNil(t, updated.Manufacturer)
	assert.Equal(t, "M", updated.Manufacturer.Name)
}

func (suite *ServicesTestSuite) TestRetailNetworkCannotNameItselfAsParent() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	_, err := suite.networks.UpdateRetailNetwork(suite.owner, c.r2.ID, &services.RetailNetworkRequest{
		PartyDetailsRequest: details("R2"),
		Level:               intPtr(2),
		RetailNetworkID:     &c.r2.ID,
	})
	assert.ErrorIs(t, err, models.ErrSelfSupplier)

	stored, err := suite.networks.GetRetailNetwork(suite.owner, c.r2.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RetailNetworkID)
	assert.Equal(t, c.r1.ID, *stored.RetailNetworkID)
}

func (suite *ServicesTestSuite) TestTransactionSellerMustSupplyProduct() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	_, err := suite.sale(c, c.r2.Ref(), c.r1.Ref(), "10.00")
	assert.ErrorIs(t, err, models.ErrSellerNotAuthorizedForProduct)

	tx, err := suite.sale(c, c.m.Ref(), c.r1.Ref(), "10.00")
	require.NoError(t, err)

	view := services.NewTransactionView(tx)
	assert.Equal(t, "Phone - X1", view.Product)
	assert.Equal(t, "M", view.Seller.Name)
	assert.Equal(t, "R1", view.Buyer.Name)
	assert.Equal(t, "10.00", view.Debt)
	assert.Equal(t, 1, view.Amount)
}

func (suite *ServicesTestSuite) TestTransactionRuleOrder() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	// both seller fields set fails before the supplier set is consulted
	req := &services.TransactionRequest{
		ProductID:             c.product.ID,
		SellerManufacturerID:  &c.m.ID,
		SellerRetailNetworkID: &c.r1.ID,
		BuyerRetailNetworkID:  &c.r2.ID,
	}
	_, err := suite.transactions.CreateTransaction(suite.owner, req)
	assert.ErrorIs(t, err, models.ErrAmbiguousSeller)

	req = &services.TransactionRequest{ProductID: c.product.ID, SellerManufacturerID: &c.m.ID}
	_, err = suite.transactions.CreateTransaction(suite.owner, req)
	assert.ErrorIs(t, err, models.ErrAmbiguousBuyer)

	req = &services.TransactionRequest{
		ProductID:            c.product.ID,
		SellerManufacturerID: &c.m.ID,
		BuyerRetailNetworkID: &c.r1.ID,
		Amount:               intPtr(0),
	}
	_, err = suite.transactions.CreateTransaction(suite.owner, req)
	assert.ErrorIs(t, err, models.ErrInvalidAmount)

	req.Amount = intPtr(2)
	req.Debt = decimalPtr("-1")
	_, err = suite.transactions.CreateTransaction(suite.owner, req)
	assert.ErrorIs(t, err, models.ErrInvalidDebt)

	req.Debt = decimalPtr("1.005")
	_, err = suite.transactions.CreateTransaction(suite.owner, req)
	assert.ErrorIs(t, err, models.ErrInvalidDebt)

	ghost := uuid.New()
	req.Debt = nil
	req.BuyerRetailNetworkID = &ghost
	_, err = suite.transactions.CreateTransaction(suite.owner, req)
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)

	req.BuyerRetailNetworkID = &c.r1.ID
	req.ProductID = uuid.New()
	_, err = suite.transactions.CreateTransaction(suite.owner, req)
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)

	var count int64
	suite.db.Model(&models.Transaction{}).Count(&count)
	assert.Zero(t, count)
}

func (suite *ServicesTestSuite) TestUpdateTransactionRevalidates() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	tx, err := suite.sale(c, c.m.Ref(), c.r1.Ref(), "5.00")
	require.NoError(t, err)

	_, err = suite.transactions.UpdateTransaction(suite.owner, tx.ID, &services.TransactionRequest{
		ProductID:             c.product.ID,
		SellerRetailNetworkID: &c.r2.ID,
		BuyerRetailNetworkID:  &c.r1.ID,
	})
	assert.ErrorIs(t, err, models.ErrSellerNotAuthorizedForProduct)

	updated, err := suite.transactions.UpdateTransaction(suite.owner, tx.ID, &services.TransactionRequest{
		ProductID:             c.product.ID,
		SellerRetailNetworkID: &c.r1.ID,
		BuyerRetailNetworkID:  &c.r2.ID,
		Amount:                intPtr(3),
		Debt:                  decimalPtr("7.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Amount)
	assert.Equal(t, "7.50", updated.Debt.StringFixed(2))
	assert.Equal(t, "R1", services.NewTransactionView(updated).Seller.Name)
}

func (suite *ServicesTestSuite) TestTotalDebtAndClear() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	_, err := suite.sale(c, c.r1.Ref(), c.r2.Ref(), "100.00")
	require.NoError(t, err)
	_, err = suite.sale(c, c.r1.Ref(), c.r2.Ref(), "50.00")
	require.NoError(t, err)
	// a different buyer does not count
	_, err = suite.sale(c, c.m.Ref(), c.r1.Ref(), "30.00")
	require.NoError(t, err)

	total, err := suite.ledger.TotalDebt(suite.owner, c.r2.Ref())
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("150.00")), total.String())

	_, err = suite.ledger.ClearDebt(suite.owner, []models.PartyRef{c.r2.Ref()})
	assert.ErrorIs(t, err, services.ErrForbidden)

	cleared, err := suite.ledger.ClearDebt(suite.admin, []models.PartyRef{c.r2.Ref()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), cleared)

	total, err = suite.ledger.TotalDebt(suite.owner, c.r2.Ref())
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	total, err = suite.ledger.TotalDebt(suite.owner, c.r1.Ref())
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(30)))
}

func (suite *ServicesTestSuite) TestClearDebtForSeveralParties() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	_, err := suite.sale(c, c.r1.Ref(), c.r2.Ref(), "10.00")
	require.NoError(t, err)
	_, err = suite.sale(c, c.m.Ref(), c.r1.Ref(), "20.00")
	require.NoError(t, err)
	_, err = suite.sale(c, c.r1.Ref(), c.m.Ref(), "40.00")
	require.NoError(t, err)

	cleared, err := suite.ledger.ClearDebt(suite.admin, []models.PartyRef{c.r1.Ref(), c.r2.Ref()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), cleared)

	total, err := suite.ledger.TotalDebt(suite.admin, c.m.Ref())
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(40)))
}

func (suite *ServicesTestSuite) TestOwnerScoping() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	_, err := suite.manufacturers.GetManufacturer(suite.other, c.m.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = suite.ledger.TotalDebt(suite.other, c.r2.Ref())
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = suite.networks.DeleteRetailNetwork(suite.other, c.r2.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	params := utils.PaginationParams{Page: 1, PageSize: 5}
	list, total, err := suite.networks.ListRetailNetworks(suite.other, params)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Zero(t, total)

	list, total, err = suite.networks.ListRetailNetworks(suite.owner, params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, "R1", list[0].Name)

	// another owner may still reference the chain
	m2, err := suite.manufacturers.CreateManufacturer(suite.other, &services.ManufacturerRequest{PartyDetailsRequest: details("M2")})
	require.NoError(t, err)
	_, err = suite.networks.CreateRetailNetwork(suite.other, &services.RetailNetworkRequest{
		PartyDetailsRequest: details("R2 other"),
		Level:               intPtr(2),
		RetailNetworkID:     &c.r1.ID,
	})
	require.NoError(t, err)

	_, total, err = suite.manufacturers.ListManufacturers(suite.admin, params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	got, err := suite.manufacturers.GetManufacturer(suite.admin, m2.ID)
	require.NoError(t, err)
	assert.Equal(t, suite.other.UserID, got.OwnerID)
}

func (suite *ServicesTestSuite) TestUpdateTransfersOwnership() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	updated, err := suite.manufacturers.UpdateManufacturer(suite.admin, c.m.ID, &services.ManufacturerRequest{
		PartyDetailsRequest: details("M renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, suite.admin.UserID, updated.OwnerID)

	_, err = suite.manufacturers.UpdateManufacturer(suite.admin, c.m.ID, &services.ManufacturerRequest{
		PartyDetailsRequest: details("M"),
		Level:               1,
	})
	assert.ErrorIs(t, err, models.ErrInvalidTier)
}

func (suite *ServicesTestSuite) TestSupplierResolution() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	supplier, err := suite.suppliers.SupplierOf(suite.owner, c.m.Ref())
	require.NoError(t, err)
	assert.Nil(t, supplier)

	supplier, err = suite.suppliers.SupplierOf(suite.owner, c.r1.Ref())
	require.NoError(t, err)
	require.NotNil(t, supplier)
	assert.Equal(t, c.m.Ref(), supplier.Ref())

	supplier, err = suite.suppliers.SupplierOf(suite.owner, c.r2.Ref())
	require.NoError(t, err)
	require.NotNil(t, supplier)
	assert.Equal(t, "R1", supplier.DisplayName())

	_, err = suite.suppliers.SupplierOf(suite.other, c.r2.Ref())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func (suite *ServicesTestSuite) TestSupplierLevels() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	levels, err := suite.suppliers.SupplierLevelsOf(suite.owner, c.product.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, levels)

	ie, err := suite.entrepreneurs.CreateEntrepreneur(suite.owner, &services.EntrepreneurRequest{
		PartyDetailsRequest: details("IE"),
		Level:               2,
		RetailNetworkID:     &c.r1.ID,
	})
	require.NoError(t, err)

	product, err := suite.products.UpdateProduct(suite.owner, c.product.ID, &services.ProductRequest{
		Name:            "Phone",
		Model:           "X1",
		ReleaseDate:     "2024-01-15",
		ManufacturerID:  &c.m.ID,
		RetailerIDs:     []uuid.UUID{c.r1.ID, c.r2.ID, c.r1.ID},
		EntrepreneurIDs: []uuid.UUID{ie.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 2}, product.SupplierLevels())

	view := services.NewProductView(product)
	assert.Equal(t, "2024-01-15", view.ReleaseDate)
	assert.Len(t, view.Retailers, 2)
	assert.Equal(t, "IE", view.Entrepreneurs[0].Name)

	// the entrepreneur may now sell the product
	_, err = suite.sale(chain{product: product}, ie.Ref(), c.r2.Ref(), "1.00")
	assert.NoError(t, err)
}

func (suite *ServicesTestSuite) TestProductReferencesMustExist() {
	t := suite.T()

	missing := uuid.New()
	_, err := suite.products.CreateProduct(suite.owner, &services.ProductRequest{
		Name:        "Tablet",
		Model:       "T1",
		ReleaseDate: "2024-02-01",
		RetailerIDs: []uuid.UUID{missing},
	})
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)

	var count int64
	suite.db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)

	product, err := suite.products.CreateProduct(suite.owner, &services.ProductRequest{
		Name:        "Tablet",
		Model:       "T1",
		ReleaseDate: "2024-02-01",
	})
	require.NoError(t, err)
	assert.Empty(t, product.SupplierLevels())
}

func (suite *ServicesTestSuite) TestDeleteManufacturerCascades() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	_, err := suite.entrepreneurs.CreateEntrepreneur(suite.owner, &services.EntrepreneurRequest{
		PartyDetailsRequest: details("IE"),
		Level:               2,
		RetailNetworkID:     &c.r2.ID,
	})
	require.NoError(t, err)
	_, err = suite.sale(c, c.r1.Ref(), c.r2.Ref(), "100.00")
	require.NoError(t, err)

	// unrelated chain survives
	other := suite.buildChain(suite.other)

	require.NoError(t, suite.manufacturers.DeleteManufacturer(suite.owner, c.m.ID))

	for _, model := range []interface{}{
		&models.Manufacturer{},
		&models.RetailNetwork{},
		&models.IndividualEntrepreneur{},
		&models.Product{},
	} {
		var count int64
		require.NoError(t, suite.db.Model(model).Where("owner_id = ?", suite.owner.UserID).Count(&count).Error)
		assert.Zero(t, count, "%T", model)
	}

	var txCount int64
	suite.db.Model(&models.Transaction{}).Count(&txCount)
	assert.Zero(t, txCount)

	var links int64
	suite.db.Table("product_retailers").Where("retail_network_id = ?", c.r1.ID).Count(&links)
	assert.Zero(t, links)

	_, err = suite.networks.GetRetailNetwork(suite.other, other.r2.ID)
	assert.NoError(t, err)
}

func (suite *ServicesTestSuite) TestDeleteRetailNetworkKeepsProduct() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	_, err := suite.sale(c, c.m.Ref(), c.r1.Ref(), "5.00")
	require.NoError(t, err)

	require.NoError(t, suite.networks.DeleteRetailNetwork(suite.owner, c.r1.ID))

	_, err = suite.networks.GetRetailNetwork(suite.owner, c.r2.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	product, err := suite.products.GetProduct(suite.owner, c.product.ID)
	require.NoError(t, err)
	assert.Empty(t, product.Retailers)
	assert.Equal(t, []int{0}, product.SupplierLevels())

	var txCount int64
	suite.db.Model(&models.Transaction{}).Count(&txCount)
	assert.Zero(t, txCount)
}

func (suite *ServicesTestSuite) TestDeleteProductRemovesTransactions() {
	t := suite.T()
	c := suite.buildChain(suite.owner)

	tx, err := suite.sale(c, c.m.Ref(), c.r1.Ref(), "5.00")
	require.NoError(t, err)

	require.NoError(t, suite.products.DeleteProduct(suite.owner, c.product.ID))

	_, err = suite.transactions.GetTransaction(suite.owner, tx.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = suite.manufacturers.GetManufacturer(suite.owner, c.m.ID)
	assert.NoError(t, err)
}
