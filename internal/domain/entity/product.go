package entity

import (
	"time"
)

// Product is the storefront's internal product shape, whichever catalog it came from.
type Product struct {
	ID          string    `json:"id" firestore:"-"`
	Name        string    `json:"name" firestore:"name"`
	Price       float64   `json:"price" firestore:"price"`
	Image       string    `json:"image" firestore:"image"`
	Category    string    `json:"category" firestore:"category"`
	Description string    `json:"description" firestore:"description"`
	Stock       *int      `json:"stock" firestore:"stock"`
	CreatedAt   time.Time `json:"created_at,omitempty" firestore:"createdAt,omitempty"`
}
