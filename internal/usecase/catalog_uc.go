package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dnicolas/tienda/internal/catalog"
	"github.com/dnicolas/tienda/internal/domain"
)

type CatalogUC struct {
	Store  *catalog.Store
	Source domain.CatalogSource
}

func (uc *CatalogUC) Browse(f domain.ProductFilter) []domain.Product {
	return uc.Store.Filter(f)
}

func (uc *CatalogUC) Suggest(query string) []domain.Product {
	return uc.Store.Suggest(strings.TrimSpace(query))
}

func (uc *CatalogUC) Get(id uuid.UUID) (domain.Product, error) {
	p, ok := uc.Store.Get(id)
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func (uc *CatalogUC) Categories() []string {
	return uc.Store.Categories()
}

// Lookup exposes the store as a cart price lookup.
func (uc *CatalogUC) Lookup() domain.PriceLookup {
	return uc.Store.Get
}

// Edit replaces a product record through the admin boundary and writes it
// back to the catalog source. A source failure does not roll back the
// session catalog; it is logged and surfaced.
func (uc *CatalogUC) Edit(ctx context.Context, p domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("nombre vacío")
	}
	if p.Price < 0 {
		return errors.New("precio negativo")
	}
	if len(p.Images) == 0 {
		return errors.New("producto sin imágenes")
	}
	if p.OriginalPrice != nil && *p.OriginalPrice <= p.Price {
		return errors.New("precio original debe ser mayor al precio")
	}
	for _, rv := range p.Reviews {
		if rv.Rating < 1 || rv.Rating > 5 {
			return errors.New("calificación fuera de rango")
		}
	}
	if err := uc.Store.Edit(p); err != nil {
		return err
	}
	if uc.Source != nil {
		if err := uc.Source.Save(ctx, &p); err != nil {
			log.Error().Err(err).Str("product", p.ID.String()).Msg("no se pudo persistir la edición")
			return err
		}
	}
	return nil
}
