package plan

import (
	"context"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSource loads the plan catalog from a YAML file so operators can
// adjust ceilings and feature flags without a deploy. Expected shape:
//
//	starter:
//	  id: starter
//	  name: Starter
//	  limits:
//	    products: 50
//	    customers: 100
//	  features:
//	    - email_alerts
//	  price: {amount: 2900, currency: USD}
//	  interval: monthly
type fileSource struct {
	path string
}

// NewFileSource returns a Source reading the catalog from the YAML file
// at path. The file is read on Load, not at construction.
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Load(ctx context.Context) (map[ID]Plan, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}

	var plans map[ID]Plan
	if err := yaml.Unmarshal(raw, &plans); err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}

	return plans, nil
}
