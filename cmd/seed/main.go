// cmd/seed/main.go
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/elnet/electronics-network/internal/config"
	"github.com/elnet/electronics-network/internal/database"
	"github.com/elnet/electronics-network/internal/utils"
)

// Seeds the superuser and the demo supply chain, then prints a bearer token
// for the superuser so the API can be exercised locally.
func main() {
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of the printed superuser token")
	skipDemo := flag.Bool("skip-demo", false, "only create the superuser")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	utils.SetJWTSecret(cfg.JWT.SecretKey)
	utils.SetJWTIssuer(cfg.JWT.Issuer)

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	admin, err := database.SeedInitialData(db, cfg.Seed)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to seed superuser")
	}

	if !*skipDemo {
		chain, err := database.SeedDemoChain(db, admin.ID)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to seed demo supply chain")
		}
		logrus.WithFields(logrus.Fields{
			"manufacturer": chain.Manufacturer.ID,
			"level_1":      chain.FirstLevel.ID,
			"level_2":      chain.SecondLevel.ID,
			"entrepreneur": chain.Entrepreneur.ID,
			"product":      chain.Product.ID,
			"transactions": len(chain.Sales),
		}).Info("Demo data ready")
	}

	token, err := utils.GenerateJWT(admin.ID, *tokenTTL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to mint token")
	}
	fmt.Println(token)
}
