// internal/services/cascade.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/elnet/electronics-network/internal/models"
)

// cascade deletes a record together with everything that references it. It
// must run inside a database transaction. Deletion happens in Go so the
// result is the same on every driver, whether or not foreign keys are enforced.
type cascade struct {
	tx      *gorm.DB
	visited map[models.PartyRef]bool
	deleted int64
}

func newCascade(tx *gorm.DB) *cascade {
	return &cascade{tx: tx, visited: make(map[models.PartyRef]bool)}
}

// logCascade records how many rows a committed delete removed, counting
// parties, products and transactions but not link table rows.
func logCascade(caller models.Caller, entity string, id uuid.UUID, rows int64) {
	logrus.WithFields(logrus.Fields{
		"user_id":      caller.UserID,
		"entity":       entity,
		"id":           id,
		"rows_deleted": rows,
	}).Info("Cascade delete completed")
}

func (c *cascade) party(ref models.PartyRef) error {
	if c.visited[ref] {
		return nil
	}
	c.visited[ref] = true

	switch ref.Kind {
	case models.PartyKindManufacturer:
		return c.manufacturer(ref.ID)
	case models.PartyKindRetailNetwork:
		return c.retailNetwork(ref.ID)
	case models.PartyKindIndividualEntrepreneur:
		return c.entrepreneur(ref.ID)
	}
	return fmt.Errorf("unknown party kind %q", ref.Kind)
}

func (c *cascade) manufacturer(id uuid.UUID) error {
	if err := c.dependents(&models.RetailNetwork{}, "manufacturer_id", id, models.RetailNetworkRef); err != nil {
		return err
	}
	if err := c.dependents(&models.IndividualEntrepreneur{}, "manufacturer_id", id, models.IndividualEntrepreneurRef); err != nil {
		return err
	}

	var productIDs []uuid.UUID
	if err := c.tx.Model(&models.Product{}).Where("manufacturer_id = ?", id).Pluck("id", &productIDs).Error; err != nil {
		return fmt.Errorf("failed to find products of manufacturer %s: %w", id, err)
	}
	for _, productID := range productIDs {
		if err := c.product(productID); err != nil {
			return err
		}
	}

	if err := c.transactionsOf("manufacturer", id); err != nil {
		return err
	}
	return c.delete(&models.Manufacturer{}, id)
}

func (c *cascade) retailNetwork(id uuid.UUID) error {
	if err := c.dependents(&models.RetailNetwork{}, "retail_network_id", id, models.RetailNetworkRef); err != nil {
		return err
	}
	if err := c.dependents(&models.IndividualEntrepreneur{}, "retail_network_id", id, models.IndividualEntrepreneurRef); err != nil {
		return err
	}
	if err := c.tx.Exec("DELETE FROM product_retailers WHERE retail_network_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to unlink retail network %s from products: %w", id, err)
	}
	if err := c.transactionsOf("retail_network", id); err != nil {
		return err
	}
	return c.delete(&models.RetailNetwork{}, id)
}

func (c *cascade) entrepreneur(id uuid.UUID) error {
	if err := c.tx.Exec("DELETE FROM product_entrepreneurs WHERE individual_entrepreneur_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to unlink entrepreneur %s from products: %w", id, err)
	}
	if err := c.transactionsOf("individual_entrepreneur", id); err != nil {
		return err
	}
	return c.delete(&models.IndividualEntrepreneur{}, id)
}

func (c *cascade) product(id uuid.UUID) error {
	result := c.tx.Where("product_id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transactions of product %s: %w", id, result.Error)
	}
	c.deleted += result.RowsAffected
	if err := c.tx.Exec("DELETE FROM product_retailers WHERE product_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to unlink product %s: %w", id, err)
	}
	if err := c.tx.Exec("DELETE FROM product_entrepreneurs WHERE product_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to unlink product %s: %w", id, err)
	}
	return c.delete(&models.Product{}, id)
}

// dependents deletes every party of model whose supplier column points at id.
func (c *cascade) dependents(model interface{}, column string, id uuid.UUID, ref func(uuid.UUID) models.PartyRef) error {
	var ids []uuid.UUID
	if err := c.tx.Model(model).Where(column+" = ?", id).Pluck("id", &ids).Error; err != nil {
		return fmt.Errorf("failed to find dependents of %s: %w", id, err)
	}
	for _, dependentID := range ids {
		if err := c.party(ref(dependentID)); err != nil {
			return err
		}
	}
	return nil
}

// transactionsOf deletes transactions where the party is seller or buyer.
func (c *cascade) transactionsOf(role string, id uuid.UUID) error {
	seller := "seller_" + role + "_id"
	buyer := "buyer_" + role + "_id"
	result := c.tx.Where(seller+" = ? OR "+buyer+" = ?", id, id).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transactions of %s %s: %w", role, id, result.Error)
	}
	c.deleted += result.RowsAffected
	return nil
}

func (c *cascade) delete(model interface{}, id uuid.UUID) error {
	result := c.tx.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", id, result.Error)
	}
	c.deleted += result.RowsAffected
	return nil
}
