// Package catalog holds the session's in-memory product universe. The list
// is loaded once at startup from a CatalogSource and mutated only through
// the admin edit boundary.
package catalog

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dnicolas/tienda/internal/domain"
)

// Suggestion results are capped for the live search dropdown.
const maxSuggestions = 5

type Store struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewStore(products []domain.Product) *Store {
	cp := make([]domain.Product, len(products))
	copy(cp, products)
	return &Store{products: cp}
}

// List returns a copy of the full catalog in original order.
func (s *Store) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]domain.Product, len(s.products))
	copy(cp, s.products)
	return cp
}

// Get returns the product for an id. The bool follows map-lookup convention
// so it can be used directly as a cart PriceLookup.
func (s *Store) Get(id uuid.UUID) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Filter applies the category filter and then the search query, preserving
// catalog order. "Todos" passes everything, "Favoritos" passes exactly the
// ids in f.Favorites regardless of the query, any other value matches the
// category field exactly; an unknown category yields an empty result. The
// browse list is uncapped.
func (s *Store) Filter(f domain.ProductFilter) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Product{}
	for _, p := range s.products {
		switch f.Category {
		case "", domain.CategoryAll:
			if f.Query != "" && !p.Matches(f.Query) {
				continue
			}
		case domain.CategoryFavorites:
			if !f.Favorites[p.ID] {
				continue
			}
		default:
			if p.Category != f.Category {
				continue
			}
			if f.Query != "" && !p.Matches(f.Query) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Suggest returns up to five matches for the live search dropdown. Queries
// of one character or less yield nothing.
func (s *Store) Suggest(query string) []domain.Product {
	if utf8.RuneCountInString(strings.TrimSpace(query)) <= 1 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Product
	for _, p := range s.products {
		if p.Matches(query) {
			out = append(out, p)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// Categories returns the distinct category values in catalog order, without
// the sentinels.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := map[string]bool{}
	var out []string
	for _, p := range s.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// Edit replaces the whole record with a matching id in place. This is the
// sole mutation path into the catalog; an unknown id is ErrNotFound and
// never creates a new entry.
func (s *Store) Edit(updated domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == updated.ID {
			s.products[i] = updated
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
