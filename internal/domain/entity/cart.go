package entity

import (
	"github.com/google/uuid"
)

// CartLine is an in-memory line of an in-progress sale. It is NOT a database
// entity: it snapshots the product name and unit price at add time and is
// destroyed on removal or on a fully successful commit.
type CartLine struct {
	ProductID   uuid.UUID  `json:"product_id"`
	VariantID   *uuid.UUID `json:"variant_id,omitempty"`
	ProductName string     `json:"product_name"`
	UnitPrice   int64      `json:"-"` // Cents, captured at add time
	Quantity    int        `json:"quantity"`
}

// Identity returns the merge key for a cart line: product ID, plus the
// variant ID when a variant is selected. Lines with equal identities are
// always merged, never duplicated.
func (l *CartLine) Identity() string {
	if l.VariantID != nil {
		return l.ProductID.String() + ":" + l.VariantID.String()
	}
	return l.ProductID.String()
}

// LineIdentity computes the identity key for a product/variant pair without
// building a line first.
func LineIdentity(productID uuid.UUID, variantID *uuid.UUID) string {
	if variantID != nil {
		return productID.String() + ":" + variantID.String()
	}
	return productID.String()
}

// Total returns the line total in cents
func (l *CartLine) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart holds the ordered lines of one terminal session's in-progress sale
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add merges a line into the cart: an existing line with the same identity
// has its quantity incremented by one, otherwise the line is appended with
// quantity one. Stock is never touched here.
func (c *Cart) Add(line CartLine) {
	key := line.Identity()
	for i := range c.Lines {
		if c.Lines[i].Identity() == key {
			c.Lines[i].Quantity++
			return
		}
	}
	line.Quantity = 1
	c.Lines = append(c.Lines, line)
}

// UpdateQuantity sets the exact quantity of the line with the given identity.
// A quantity of zero or less behaves exactly like Remove. Returns false when
// no line matches.
func (c *Cart) UpdateQuantity(identity string, qty int) bool {
	if qty <= 0 {
		return c.Remove(identity)
	}
	for i := range c.Lines {
		if c.Lines[i].Identity() == identity {
			c.Lines[i].Quantity = qty
			return true
		}
	}
	return false
}

// Remove drops the line with the given identity. Returns false when no line
// matches.
func (c *Cart) Remove(identity string) bool {
	for i := range c.Lines {
		if c.Lines[i].Identity() == identity {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Total returns the cart total in cents using the prices captured at add time
func (c *Cart) Total() int64 {
	var total int64
	for i := range c.Lines {
		total += c.Lines[i].Total()
	}
	return total
}

// Clear empties all lines. Invoked only after a fully successful commit.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
