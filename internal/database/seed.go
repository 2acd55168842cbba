// internal/database/seed.go
package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/elnet/electronics-network/internal/models"
)

// DemoChain is the sample supply chain created by SeedDemoChain.
type DemoChain struct {
	Manufacturer *models.Manufacturer
	FirstLevel   *models.RetailNetwork
	SecondLevel  *models.RetailNetwork
	Entrepreneur *models.IndividualEntrepreneur
	Product      *models.Product
	Sales        []models.Transaction
}

// SeedDemoChain builds manufacturer -> level 1 network -> level 2 network, an
// entrepreneur under the level 1 network, one product sold by the first two
// tiers and two sales to the level 2 network with outstanding debt.
func SeedDemoChain(db *gorm.DB, ownerID uuid.UUID) (*DemoChain, error) {
	chain := &DemoChain{}

	err := WithTransaction(db, func(tx *gorm.DB) error {
		chain.Manufacturer = &models.Manufacturer{
			PartyDetails: demoDetails(ownerID, "Gamma Electronics", "gamma@example.com"),
			Level:        models.LevelManufacturer,
		}
		if err := tx.Create(chain.Manufacturer).Error; err != nil {
			return fmt.Errorf("create manufacturer: %w", err)
		}

		chain.FirstLevel = &models.RetailNetwork{
			PartyDetails:   demoDetails(ownerID, "Silver Retail", "silver@example.com"),
			Level:          models.LevelFirst,
			ManufacturerID: &chain.Manufacturer.ID,
		}
		if err := tx.Create(chain.FirstLevel).Error; err != nil {
			return fmt.Errorf("create level 1 network: %w", err)
		}

		chain.SecondLevel = &models.RetailNetwork{
			PartyDetails:    demoDetails(ownerID, "Bronze Stores", "bronze@example.com"),
			Level:           models.LevelSecond,
			RetailNetworkID: &chain.FirstLevel.ID,
		}
		if err := tx.Create(chain.SecondLevel).Error; err != nil {
			return fmt.Errorf("create level 2 network: %w", err)
		}

		chain.Entrepreneur = &models.IndividualEntrepreneur{
			PartyDetails:    demoDetails(ownerID, "Ivan Petrov", "petrov@example.com"),
			Level:           models.LevelSecond,
			RetailNetworkID: &chain.FirstLevel.ID,
		}
		if err := tx.Create(chain.Entrepreneur).Error; err != nil {
			return fmt.Errorf("create entrepreneur: %w", err)
		}

		chain.Product = &models.Product{
			OwnerID:        ownerID,
			Name:           "Smartphone",
			Model:          "X-100",
			ReleaseDate:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			ManufacturerID: &chain.Manufacturer.ID,
			Retailers:      []models.RetailNetwork{*chain.FirstLevel},
		}
		if err := tx.Omit("Manufacturer", "Retailers.*", "Entrepreneurs.*").Create(chain.Product).Error; err != nil {
			return fmt.Errorf("create product: %w", err)
		}

		for _, debt := range []string{"100.00", "50.00"} {
			sale := models.Transaction{
				OwnerID:   ownerID,
				ProductID: chain.Product.ID,
				Amount:    1,
				Debt:      decimal.RequireFromString(debt),
			}
			sale.SetSeller(chain.FirstLevel.Ref())
			sale.SetBuyer(chain.SecondLevel.Ref())
			if err := tx.Omit(clause.Associations).Create(&sale).Error; err != nil {
				return fmt.Errorf("create sale: %w", err)
			}
			chain.Sales = append(chain.Sales, sale)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("manufacturer_id", chain.Manufacturer.ID).Info("Demo supply chain seeded")
	return chain, nil
}

func demoDetails(ownerID uuid.UUID, name, email string) models.PartyDetails {
	return models.PartyDetails{
		OwnerID:     ownerID,
		Name:        name,
		Email:       email,
		Country:     "Russia",
		City:        "Saint Petersburg",
		Street:      "Rimsky-Korsakov",
		HouseNumber: "54",
	}
}
