package roles

import (
	"context"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSource loads role grants from a YAML file so operators can adjust
// the permission table without a code change. The expected shape is:
//
//	admin:
//	  - view_dashboard
//	  - create_products
//	manager:
//	  - view_dashboard
type fileSource struct {
	path string
}

// NewFileSource returns a Source reading role grants from the YAML file
// at path. The file is read on Load, not at construction.
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Load(ctx context.Context) (map[Role][]Permission, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadMatrix, err)
	}

	var grants map[Role][]Permission
	if err := yaml.Unmarshal(raw, &grants); err != nil {
		return nil, errors.Join(ErrFailedToLoadMatrix, err)
	}

	return grants, nil
}
