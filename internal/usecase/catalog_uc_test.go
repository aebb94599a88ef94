package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnicolas/tienda/internal/catalog"
	"github.com/dnicolas/tienda/internal/domain"
)

func ptr(v float64) *float64 { return &v }

func newUC() (*CatalogUC, domain.Product) {
	p := domain.Product{ID: uuid.New(), Name: "Alcohol", Category: "Farmacia", Price: 10, Images: []string{"/img/a.jpg"}}
	return &CatalogUC{Store: catalog.NewStore([]domain.Product{p})}, p
}

func TestEditValidations(t *testing.T) {
	uc, p := newUC()
	ctx := context.Background()

	bad := p
	bad.Name = "  "
	assert.Error(t, uc.Edit(ctx, bad))

	bad = p
	bad.Price = -1
	assert.Error(t, uc.Edit(ctx, bad))

	bad = p
	bad.Images = nil
	assert.Error(t, uc.Edit(ctx, bad))

	bad = p
	bad.OriginalPrice = ptr(5) // on-sale price must undercut the original
	assert.Error(t, uc.Edit(ctx, bad))

	unknown := p
	unknown.ID = uuid.New()
	assert.ErrorIs(t, uc.Edit(ctx, unknown), domain.ErrNotFound)
}

func TestEditHappyPath(t *testing.T) {
	uc, p := newUC()

	p.Price = 9
	p.OriginalPrice = ptr(12)
	p.IsOnSale = true
	require.NoError(t, uc.Edit(context.Background(), p))

	got, err := uc.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got.Price)
	assert.True(t, got.IsOnSale)
}

func TestAskFallsBackWithoutRecommender(t *testing.T) {
	uc := &RecommendUC{}
	assert.Equal(t, FallbackMessage, uc.Ask(context.Background(), "hola", nil))
	assert.Equal(t, FallbackMessage, uc.Ask(context.Background(), "   ", nil))
}
