package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"size:180;not null" json:"name"`
	Brand         string    `gorm:"size:100" json:"brand"`
	Category      string    `gorm:"size:100;index" json:"category"`
	Description   string    `gorm:"type:text" json:"description"`
	DetailedDesc  string    `gorm:"type:text" json:"detailedDescription"`
	Price         float64   `gorm:"type:decimal(12,2);not null" json:"price"`
	OriginalPrice *float64  `gorm:"type:decimal(12,2)" json:"originalPrice,omitempty"`
	IsOnSale      bool      `gorm:"default:false" json:"isOnSale"`
	Images        []string  `gorm:"type:jsonb;serializer:json" json:"images"`
	Reviews       []Review  `gorm:"type:jsonb;serializer:json" json:"reviews"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// Review lives inside its product; insertion order is display order.
type Review struct {
	Author  string    `json:"author"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

// MainImage returns the first image reference, the one every listing shows.
func (p Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Matches reports whether the product matches a case-insensitive substring
// query over name, brand and category.
func (p Product) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// Category sentinels understood by the catalog filter.
const (
	CategoryAll       = "Todos"
	CategoryFavorites = "Favoritos"
)

type ProductFilter struct {
	Category  string
	Query     string
	Favorites map[uuid.UUID]bool
}
