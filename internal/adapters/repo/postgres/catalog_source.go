package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dnicolas/tienda/internal/domain"
)

// CatalogSource loads the product universe from Postgres at session start
// and persists admin edits. Cart, favorites and orders never touch the
// database; only the catalog is durable.
type CatalogSource struct{ db *gorm.DB }

func NewCatalogSource(db *gorm.DB) *CatalogSource { return &CatalogSource{db: db} }

func (s *CatalogSource) Migrate() error {
	return s.db.AutoMigrate(&domain.Product{})
}

// SeedIfEmpty fills an empty catalog table so a fresh database can serve
// the storefront immediately.
func (s *CatalogSource) SeedIfEmpty(ctx context.Context, products []domain.Product) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i := range products {
		if err := s.db.WithContext(ctx).Create(&products[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *CatalogSource) Load(ctx context.Context) ([]domain.Product, error) {
	var list []domain.Product
	if err := s.db.WithContext(ctx).Order("created_at asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *CatalogSource) Save(ctx context.Context, p *domain.Product) error {
	var existing domain.Product
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", p.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.db.WithContext(ctx).Save(p).Error
}
