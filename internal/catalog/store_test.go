package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnicolas/tienda/internal/domain"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: uuid.New(), Name: "Alcohol Antiséptico", Brand: "JGB", Category: "Farmacia", Price: 8500, Images: []string{"/img/1.jpg"}},
		{ID: uuid.New(), Name: "Jabón Líquido", Brand: "Protex", Category: "Aseo Personal", Price: 15200, Images: []string{"/img/2.jpg"}},
		{ID: uuid.New(), Name: "Límpido Blanqueador", Brand: "Clorox", Category: "Limpieza", Price: 7800, Images: []string{"/img/3.jpg"}},
		{ID: uuid.New(), Name: "Acetaminofén 500mg", Brand: "MK", Category: "Farmacia", Price: 12000, Images: []string{"/img/4.jpg"}},
	}
}

func TestFilterAll(t *testing.T) {
	s := NewStore(testProducts())
	got := s.Filter(domain.ProductFilter{Category: domain.CategoryAll})
	assert.Len(t, got, 4)
	assert.Equal(t, "Alcohol Antiséptico", got[0].Name, "original catalog order is kept")
}

func TestFilterByCategory(t *testing.T) {
	s := NewStore(testProducts())
	got := s.Filter(domain.ProductFilter{Category: "Farmacia"})
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, "Farmacia", p.Category)
	}

	assert.Empty(t, s.Filter(domain.ProductFilter{Category: "Juguetes"}), "unknown category yields empty, not error")
}

func TestFilterFavoritesIgnoresQuery(t *testing.T) {
	products := testProducts()
	s := NewStore(products)
	favs := map[uuid.UUID]bool{products[1].ID: true, products[2].ID: true}

	got := s.Filter(domain.ProductFilter{Category: domain.CategoryFavorites, Favorites: favs, Query: "acetaminofén"})
	require.Len(t, got, 2)
	assert.Equal(t, products[1].ID, got[0].ID)
	assert.Equal(t, products[2].ID, got[1].ID)

	assert.Empty(t, s.Filter(domain.ProductFilter{Category: domain.CategoryFavorites}))
}

func TestFilterQueryCaseInsensitive(t *testing.T) {
	s := NewStore(testProducts())
	got := s.Filter(domain.ProductFilter{Category: domain.CategoryAll, Query: "CLOROX"})
	require.Len(t, got, 1)
	assert.Equal(t, "Límpido Blanqueador", got[0].Name)
}

func TestSuggest(t *testing.T) {
	s := NewStore(testProducts())

	assert.Nil(t, s.Suggest(""), "suggestion mode needs more than one character")
	assert.Nil(t, s.Suggest("a"))

	got := s.Suggest("far")
	require.Len(t, got, 2, "matches by category substring")

	// cap at five even when more products match
	many := make([]domain.Product, 0, 9)
	for i := 0; i < 9; i++ {
		many = append(many, domain.Product{ID: uuid.New(), Name: "Gasa Estéril", Category: "Farmacia", Price: 100})
	}
	assert.Len(t, NewStore(many).Suggest("gasa"), 5)
}

func TestEditReplacesOnlyTarget(t *testing.T) {
	products := testProducts()
	s := NewStore(products)

	updated := products[0]
	updated.Name = "Alcohol 700ml"
	updated.Price = 9000
	require.NoError(t, s.Edit(updated))

	got, ok := s.Get(products[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Alcohol 700ml", got.Name)
	assert.Equal(t, 9000.0, got.Price)

	other, ok := s.Get(products[1].ID)
	require.True(t, ok)
	assert.Equal(t, "Jabón Líquido", other.Name, "other records untouched")
	assert.Equal(t, 4, s.Len(), "edit never creates a duplicate")
}

func TestEditUnknownID(t *testing.T) {
	s := NewStore(testProducts())
	err := s.Edit(domain.Product{ID: uuid.New(), Name: "Fantasma", Price: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 4, s.Len())
}

func TestListReturnsCopy(t *testing.T) {
	s := NewStore(testProducts())
	list := s.List()
	list[0].Name = "mutado"
	fresh := s.List()
	assert.NotEqual(t, "mutado", fresh[0].Name)
}

func TestCategories(t *testing.T) {
	s := NewStore(testProducts())
	assert.Equal(t, []string{"Farmacia", "Aseo Personal", "Limpieza"}, s.Categories())
}
