// internal/models/hierarchy.go
package models

import "fmt"

// validateSupplierLinks enforces the single-supplier rule shared by retail
// networks and individual entrepreneurs: level 1 buys from a manufacturer,
// level 2 buys from a retail network, never both.
func validateSupplierLinks(level int, hasManufacturer, hasRetailNetwork bool) error {
	if level < LevelFirst || level > LevelSecond {
		return newValidationError(KindInvalidTier,
			fmt.Sprintf("level must be between %d and %d, got %d", LevelFirst, LevelSecond, level))
	}

	if hasManufacturer && hasRetailNetwork {
		return newValidationError(KindAmbiguousSupplier,
			"only one supplier may be set: either a manufacturer or a retail network")
	}

	switch {
	case level == LevelFirst && !hasManufacturer:
		return newValidationError(KindMissingSupplierForTier,
			"level 1 must purchase from a manufacturer")
	case level == LevelSecond && !hasRetailNetwork:
		return newValidationError(KindMissingSupplierForTier,
			"level 2 must purchase from a retail network")
	}

	return nil
}

func validateManufacturerLevel(level int) error {
	if level != LevelManufacturer {
		return newValidationError(KindInvalidTier,
			fmt.Sprintf("manufacturer level is fixed at %d, got %d", LevelManufacturer, level))
	}
	return nil
}
