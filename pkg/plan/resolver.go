package plan

import (
	"errors"
	"fmt"
)

// ProductMap resolves an external billing product identifier (the
// provider's product/price ID) to an internal plan ID. The mapping is
// configuration: operators register the provider IDs alongside the
// catalog. An unmapped product is an explicit fault, never silently
// defaulted: a default would grant capability nobody purchased.
type ProductMap struct {
	// byProduct is treated as immutable after construction.
	byProduct map[string]ID
}

// NewProductMap builds a ProductMap, validating every target plan
// against the catalog so a typo in configuration fails at startup.
func NewProductMap(catalog Catalog, products map[string]ID) (*ProductMap, error) {
	if catalog == nil {
		return nil, errors.New("plan: catalog is required")
	}

	byProduct := make(map[string]ID, len(products))
	for productID, planID := range products {
		if productID == "" {
			return nil, errors.Join(ErrInvalidPlanConfiguration,
				errors.New("empty billing product ID"))
		}
		if err := catalog.Verify(planID); err != nil {
			return nil, errors.Join(ErrInvalidPlanConfiguration,
				fmt.Errorf("product %s maps to unknown plan %s", productID, planID))
		}
		byProduct[productID] = planID
	}

	return &ProductMap{byProduct: byProduct}, nil
}

// Resolve returns the plan ID for a billing product identifier.
// Returns ErrUnknownProduct for unmapped IDs; callers should treat this
// as a misconfiguration fault, not a policy denial.
func (m *ProductMap) Resolve(productID string) (ID, error) {
	planID, ok := m.byProduct[productID]
	if !ok {
		return "", errors.Join(ErrUnknownProduct, fmt.Errorf("billing product %q", productID))
	}
	return planID, nil
}
