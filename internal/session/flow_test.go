package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnicolas/tienda/internal/catalog"
	"github.com/dnicolas/tienda/internal/checkout"
	"github.com/dnicolas/tienda/internal/domain"
)

func storeWith(products ...domain.Product) *catalog.Store {
	return catalog.NewStore(products)
}

func ana() domain.CustomerDetails {
	return domain.CustomerDetails{
		Name:          "Ana",
		Phone:         "3001234567",
		Address:       "Calle 1",
		PaymentMethod: domain.PaymentCash,
	}
}

func TestCheckoutEmptyCartIsGuarded(t *testing.T) {
	st := NewState()
	assert.ErrorIs(t, st.BeginCheckout(), domain.ErrEmptyCart)
	assert.Equal(t, StageBrowsing, st.Stage())
}

func TestNoShortcutToOrderPlaced(t *testing.T) {
	p := domain.Product{ID: uuid.New(), Name: "Alcohol", Price: 10, Images: []string{"/img/a.jpg"}}
	store := storeWith(p)

	st := NewState()
	st.AddItem(p.ID, 1)

	_, err := st.Finalize(store.Get)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "Browsing cannot finalize directly")
	assert.Nil(t, st.CurrentOrder())
}

func TestSubmitDetailsRejectsInvalid(t *testing.T) {
	p := domain.Product{ID: uuid.New(), Name: "Alcohol", Price: 10, Images: []string{"/img/a.jpg"}}
	st := NewState()
	st.AddItem(p.ID, 1)
	require.NoError(t, st.BeginCheckout())

	bad := ana()
	bad.Phone = ""
	fieldErrs, err := st.SubmitDetails(bad)
	require.NoError(t, err)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, checkout.MsgPhoneRequired, fieldErrs[0].Message)
	assert.Equal(t, StageEnteringDetails, st.Stage(), "stays on the form")
}

func TestEditDetailsKeepsValues(t *testing.T) {
	p := domain.Product{ID: uuid.New(), Name: "Alcohol", Price: 10, Images: []string{"/img/a.jpg"}}
	st := NewState()
	st.AddItem(p.ID, 1)
	require.NoError(t, st.BeginCheckout())

	fieldErrs, err := st.SubmitDetails(ana())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.Equal(t, StageConfirming, st.Stage())

	require.NoError(t, st.EditDetails())
	assert.Equal(t, StageEnteringDetails, st.Stage())
	assert.Equal(t, "Ana", st.Details().Name, "nothing is discarded going back")
}

func TestFinalizeSnapshotAndClear(t *testing.T) {
	p := domain.Product{ID: uuid.New(), Name: "Alcohol Antiséptico", Price: 10.0, Images: []string{"/img/a.jpg"}}
	store := storeWith(p)

	st := NewState()
	st.AddItem(p.ID, 2)
	require.NoError(t, st.BeginCheckout())
	fieldErrs, err := st.SubmitDetails(ana())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	order, err := st.Finalize(store.Get)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, 20.0, order.Total)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "Alcohol Antiséptico", order.Lines[0].Name)
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.Equal(t, "Ana", order.Customer.Name)

	assert.Empty(t, st.CartItems(), "cart is empty immediately after")
	assert.Equal(t, StageOrderPlaced, st.Stage())
	assert.Same(t, order, st.CurrentOrder())
}

func TestFinalizeIsIdempotentGuarded(t *testing.T) {
	p := domain.Product{ID: uuid.New(), Name: "Alcohol", Price: 10, Images: []string{"/img/a.jpg"}}
	store := storeWith(p)

	st := NewState()
	st.AddItem(p.ID, 1)
	require.NoError(t, st.BeginCheckout())
	_, err := st.SubmitDetails(ana())
	require.NoError(t, err)

	first, err := st.Finalize(store.Get)
	require.NoError(t, err)

	second, err := st.Finalize(store.Get)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "duplicate submit cannot double-place")
	assert.Nil(t, second)
	assert.Same(t, first, st.CurrentOrder())
}

func TestSnapshotSurvivesCatalogEdit(t *testing.T) {
	p := domain.Product{ID: uuid.New(), Name: "Alcohol", Price: 10, Images: []string{"/img/a.jpg"}}
	store := storeWith(p)

	st := NewState()
	st.AddItem(p.ID, 1)
	require.NoError(t, st.BeginCheckout())
	_, err := st.SubmitDetails(ana())
	require.NoError(t, err)
	order, err := st.Finalize(store.Get)
	require.NoError(t, err)

	edited := p
	edited.Name = "Alcohol Premium"
	edited.Price = 999
	require.NoError(t, store.Edit(edited))

	assert.Equal(t, "Alcohol", order.Lines[0].Name, "placed order is a value copy")
	assert.Equal(t, 10.0, order.Lines[0].UnitPrice)
	assert.Equal(t, 10.0, order.Total)
}

func TestBackToStoreKeepsOrder(t *testing.T) {
	p := domain.Product{ID: uuid.New(), Name: "Alcohol", Price: 10, Images: []string{"/img/a.jpg"}}
	store := storeWith(p)

	st := NewState()
	st.AddItem(p.ID, 1)
	require.NoError(t, st.BeginCheckout())
	_, err := st.SubmitDetails(ana())
	require.NoError(t, err)
	order, err := st.Finalize(store.Get)
	require.NoError(t, err)

	require.NoError(t, st.BackToStore())
	assert.Equal(t, StageBrowsing, st.Stage())
	assert.Same(t, order, st.CurrentOrder(), "order slot survives until overwritten")
	assert.Empty(t, st.CartItems())

	// a new order replaces the slot
	st.AddItem(p.ID, 3)
	require.NoError(t, st.BeginCheckout())
	_, err = st.SubmitDetails(ana())
	require.NoError(t, err)
	next, err := st.Finalize(store.Get)
	require.NoError(t, err)
	assert.NotEqual(t, order.ID, next.ID)
	assert.Same(t, next, st.CurrentOrder())
}

func TestToggleFavoriteTwiceRestores(t *testing.T) {
	st := NewState()
	id := uuid.New()

	assert.True(t, st.ToggleFavorite(id))
	assert.True(t, st.IsFavorite(id))
	assert.False(t, st.ToggleFavorite(id))
	assert.False(t, st.IsFavorite(id))
	assert.Empty(t, st.Favorites())
}

func TestRegistryReusesState(t *testing.T) {
	r := NewRegistry()
	a := r.Get("tok")
	a.AddItem(uuid.New(), 1)

	assert.Same(t, a, r.Get("tok"))
	assert.NotSame(t, a, r.Get("otro"))
	assert.Equal(t, 2, r.Len())

	r.Drop("tok")
	assert.Equal(t, 1, r.Len())
}
