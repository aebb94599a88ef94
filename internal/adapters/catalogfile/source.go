// Package catalogfile is the database-less catalog source: a JSON file read
// once at startup, load-or-fail. Admin edits stay in the session catalog.
package catalogfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/dnicolas/tienda/internal/domain"
)

type Source struct {
	path     string
	fallback []domain.Product
}

// New builds a source for path. An empty path serves the fallback seed.
func New(path string, fallback []domain.Product) *Source {
	return &Source{path: path, fallback: fallback}
}

func (s *Source) Load(_ context.Context) ([]domain.Product, error) {
	if s.path == "" {
		return s.fallback, nil
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("leyendo catálogo %s: %w", s.path, err)
	}
	var list []domain.Product
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("catálogo %s inválido: %w", s.path, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("catálogo %s vacío", s.path)
	}
	for i := range list {
		if list[i].ID == uuid.Nil {
			list[i].ID = uuid.New()
		}
	}
	return list, nil
}

// Save is a no-op: without a database, edits live only in the session
// catalog, which is this scope's contract.
func (s *Source) Save(context.Context, *domain.Product) error { return nil }
