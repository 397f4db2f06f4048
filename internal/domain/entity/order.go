package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

var OrderStatuses = []OrderStatus{
	OrderStatusProcessing,
	OrderStatusDelivered,
	OrderStatusPending,
	OrderStatusCancelled,
}

type ShippingAddress struct {
	Address string `json:"address" firestore:"address"`
	City    string `json:"city" firestore:"city"`
	Zip     string `json:"zip" firestore:"zip"`
}

// Order is an immutable snapshot of the cart at checkout. Items carry no
// reference back to live product records.
type Order struct {
	ID              string          `json:"id" firestore:"-"`
	UserID          string          `json:"user_id" firestore:"userId"`
	CustomerName    string          `json:"customer_name" firestore:"customerName"`
	Email           string          `json:"email" firestore:"email"`
	Items           []LineItem      `json:"items" firestore:"items"`
	Total           float64         `json:"total" firestore:"total"`
	Status          OrderStatus     `json:"status" firestore:"status"`
	CreatedAt       time.Time       `json:"created_at" firestore:"createdAt"`
	ShippingAddress ShippingAddress `json:"shipping_address" firestore:"shippingAddress"`
}

// CheckoutContact is the contact/shipping form submitted with an order.
type CheckoutContact struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

func (c CheckoutContact) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
