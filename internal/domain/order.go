package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Efectivo"
	PaymentTransfer PaymentMethod = "Transferencia"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentTransfer
}

// CustomerDetails is created fresh per checkout attempt and never persisted.
type CustomerDetails struct {
	Name          string        `json:"name" schema:"name"`
	Phone         string        `json:"phone" schema:"phone"`
	Address       string        `json:"address" schema:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod" schema:"paymentMethod"`
}

// OrderLine is a value copy of a cart line taken at finalize time. Later
// catalog edits cannot alter it.
type OrderLine struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unitPrice"`
	ImageURL  string    `json:"imageUrl"`
	Quantity  int       `json:"quantity"`
	Subtotal  float64   `json:"subtotal"`
}

// ConfirmedOrder is the immutable snapshot built exactly once per finalize.
type ConfirmedOrder struct {
	ID       uuid.UUID       `json:"id"`
	Lines    []OrderLine     `json:"lines"`
	Customer CustomerDetails `json:"customer"`
	Total    float64         `json:"total"`
	PlacedAt time.Time       `json:"placedAt"`
}

// NewConfirmedOrder freezes the cart and customer details into an order
// record, resolving every line against the catalog as it is right now.
func NewConfirmedOrder(cart *Cart, details CustomerDetails, lookup PriceLookup) *ConfirmedOrder {
	o := &ConfirmedOrder{ID: uuid.New(), Customer: details, PlacedAt: time.Now()}
	for _, l := range cart.Lines(lookup) {
		o.Lines = append(o.Lines, OrderLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			ImageURL:  l.ImageURL,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal,
		})
		o.Total += l.Subtotal
	}
	return o
}
