// internal/services/cascade_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/elnet/electronics-network/internal/database"
	"github.com/elnet/electronics-network/internal/models"
	"github.com/elnet/electronics-network/internal/testutil"
)

func TestCascadeCountsDeletedRows(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.NewUser(t, db, "owner", false)

	chain, err := database.SeedDemoChain(db, owner.ID)
	require.NoError(t, err)

	// level 2 network plus the two sales it bought
	var deleted int64
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		c := newCascade(tx)
		if err := c.party(chain.SecondLevel.Ref()); err != nil {
			return err
		}
		deleted = c.deleted
		return nil
	}))
	assert.Equal(t, int64(3), deleted)

	// manufacturer, level 1 network, entrepreneur and product
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		c := newCascade(tx)
		if err := c.party(chain.Manufacturer.Ref()); err != nil {
			return err
		}
		deleted = c.deleted
		return nil
	}))
	assert.Equal(t, int64(4), deleted)

	var remaining int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestCascadeVisitsEachPartyOnce(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.NewUser(t, db, "owner", false)

	chain, err := database.SeedDemoChain(db, owner.ID)
	require.NoError(t, err)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		c := newCascade(tx)
		if err := c.party(chain.Manufacturer.Ref()); err != nil {
			return err
		}
		if err := c.party(chain.Manufacturer.Ref()); err != nil {
			return err
		}
		assert.Equal(t, int64(7), c.deleted)
		return nil
	}))
}
