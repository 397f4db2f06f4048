package entity

import (
	"encoding/json"
)

// LineItem is a product snapshot plus the chosen variant. At most one line
// exists per (ID, Size, Color).
type LineItem struct {
	ID          string  `json:"id" firestore:"id"`
	Name        string  `json:"name" firestore:"name"`
	Price       float64 `json:"price" firestore:"price"`
	Image       string  `json:"image" firestore:"image"`
	Category    string  `json:"category" firestore:"category"`
	Description string  `json:"description,omitempty" firestore:"description,omitempty"`
	Stock       *int    `json:"stock,omitempty" firestore:"stock,omitempty"`
	Size        string  `json:"size" firestore:"size"`
	Color       string  `json:"color" firestore:"color"`
	Quantity    int     `json:"quantity" firestore:"quantity"`
}

func (l LineItem) matches(productID, size, color string) bool {
	return l.ID == productID && l.Size == size && l.Color == color
}

// Subtotal is price times quantity.
func (l LineItem) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart is an immutable value: every operation returns a new Cart and leaves
// the receiver untouched.
type Cart struct {
	Items []LineItem `json:"items"`
}

func NewCart(items ...LineItem) Cart {
	return Cart{Items: append([]LineItem{}, items...)}
}

// Add merges a (product, size, color) combination into the cart. An existing
// line gets its quantity incremented, otherwise a quantity-1 line is appended.
func (c Cart) Add(product Product, size, color string) Cart {
	items := make([]LineItem, len(c.Items), len(c.Items)+1)
	copy(items, c.Items)

	for i := range items {
		if items[i].matches(product.ID, size, color) {
			items[i].Quantity++
			return Cart{Items: items}
		}
	}

	items = append(items, LineItem{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Image:       product.Image,
		Category:    product.Category,
		Description: product.Description,
		Stock:       product.Stock,
		Size:        size,
		Color:       color,
		Quantity:    1,
	})
	return Cart{Items: items}
}

// Merge folds other's lines into the cart, summing quantities of matching
// variants. Neither cart is modified.
func (c Cart) Merge(other Cart) Cart {
	items := make([]LineItem, len(c.Items), len(c.Items)+len(other.Items))
	copy(items, c.Items)

next:
	for _, line := range other.Items {
		for i := range items {
			if items[i].matches(line.ID, line.Size, line.Color) {
				items[i].Quantity += line.Quantity
				continue next
			}
		}
		items = append(items, line)
	}
	return Cart{Items: items}
}

// Total sums price*quantity over all lines. No tax, conversion or rounding.
func (c Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// Count is the number of units across all lines.
func (c Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) Clear() Cart {
	return Cart{Items: []LineItem{}}
}

// Snapshot copies the lines so an order does not share backing storage with the cart.
func (c Cart) Snapshot() []LineItem {
	return append([]LineItem{}, c.Items...)
}

// EncodeCart serializes the cart as the bare JSON array of lines.
func EncodeCart(c Cart) ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []LineItem{}
	}
	return json.Marshal(items)
}

// DecodeCart never fails: an absent or unparsable blob is an empty cart.
func DecodeCart(data []byte) Cart {
	if len(data) == 0 {
		return NewCart()
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return NewCart()
	}

	valid := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.ID == "" || item.Quantity < 1 {
			continue
		}
		valid = append(valid, item)
	}
	return Cart{Items: valid}
}
