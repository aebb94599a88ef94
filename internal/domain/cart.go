package domain

import "github.com/google/uuid"

// FallbackProductName is shown for cart lines whose product no longer exists
// in the catalog. The cart only stores identifiers; the catalog is the sole
// source of truth for name and price.
const FallbackProductName = "Producto no encontrado"

type CartItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// Cart keeps at most one item per product id, in insertion order.
type Cart struct {
	Items []CartItem `json:"items"`
}

// PriceLookup resolves a product id against the current catalog. The second
// return is false when the product has since been removed.
type PriceLookup func(uuid.UUID) (Product, bool)

// CartLine is a cart item resolved against the catalog for display and
// totaling. Subtotal is zero for stale lines.
type CartLine struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unitPrice"`
	ImageURL  string    `json:"imageUrl"`
	Quantity  int       `json:"quantity"`
	Subtotal  float64   `json:"subtotal"`
}

// Add merges into an existing line for the same product or appends a new one.
// Non-positive quantities count as 1.
func (c *Cart) Add(productID uuid.UUID, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: qty})
}

// SetQuantity overwrites the quantity of an existing line, clamped to a floor
// of 1. Removal is a separate operation, never implied by a low quantity.
func (c *Cart) SetQuantity(productID uuid.UUID, qty int) bool {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = qty
			return true
		}
	}
	return false
}

// Remove drops the line for the given product id, if present.
func (c *Cart) Remove(productID uuid.UUID) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() { c.Items = nil }

func (c *Cart) IsEmpty() bool { return len(c.Items) == 0 }

// Quantity returns the quantity for a product id, 0 when absent.
func (c *Cart) Quantity(productID uuid.UUID) int {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it.Quantity
		}
	}
	return 0
}

// Lines resolves every item against the catalog. Stale items contribute a
// zero price and the fallback name instead of failing.
func (c *Cart) Lines(lookup PriceLookup) []CartLine {
	lines := make([]CartLine, 0, len(c.Items))
	for _, it := range c.Items {
		line := CartLine{ProductID: it.ProductID, Quantity: it.Quantity, Name: FallbackProductName}
		if p, ok := lookup(it.ProductID); ok {
			line.Name = p.Name
			line.UnitPrice = p.Price
			line.ImageURL = p.MainImage()
			line.Subtotal = p.Price * float64(it.Quantity)
		}
		lines = append(lines, line)
	}
	return lines
}

// Total sums quantity × current price over all lines. Missing products
// contribute zero.
func (c *Cart) Total(lookup PriceLookup) float64 {
	total := 0.0
	for _, l := range c.Lines(lookup) {
		total += l.Subtotal
	}
	return total
}
