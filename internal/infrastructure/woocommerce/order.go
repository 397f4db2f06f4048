package woocommerce

import (
	"context"
	"fmt"
	"strconv"

	"luxestore/internal/domain/service"
)

const (
	PaymentMethodCOD      = "cod"
	PaymentMethodCODTitle = "Cash on Delivery"
	DefaultCountry        = "US"
)

type Billing struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type OrderLine struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type OrderRequest struct {
	PaymentMethod      string      `json:"payment_method"`
	PaymentMethodTitle string      `json:"payment_method_title"`
	SetPaid            bool        `json:"set_paid"`
	Billing            Billing     `json:"billing"`
	LineItems          []OrderLine `json:"line_items"`
}

type OrderResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Total  string `json:"total"`
}

// BuildOrderRequest translates a checkout into a cash-on-delivery order.
// Variant choices have no WooCommerce counterpart here, so lines of the same
// product in different sizes or colors are sent as separate line items.
func BuildOrderRequest(sub service.OrderSubmission) (OrderRequest, error) {
	lines := make([]OrderLine, 0, len(sub.Order.Items))
	for _, item := range sub.Order.Items {
		productID, err := strconv.Atoi(item.ID)
		if err != nil {
			return OrderRequest{}, fmt.Errorf("product %q has no numeric WooCommerce id", item.ID)
		}
		lines = append(lines, OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	contact := sub.Contact
	return OrderRequest{
		PaymentMethod:      PaymentMethodCOD,
		PaymentMethodTitle: PaymentMethodCODTitle,
		SetPaid:            false,
		Billing: Billing{
			FirstName: contact.FirstName,
			LastName:  contact.LastName,
			Address1:  contact.Address,
			City:      contact.City,
			State:     "",
			Postcode:  contact.Zip,
			Country:   DefaultCountry,
			Email:     contact.Email,
			Phone:     contact.Phone,
		},
		LineItems: lines,
	}, nil
}

// OrderGateway makes the WooCommerce store the order backend.
type OrderGateway struct {
	client *Client
}

func NewOrderGateway(client *Client) *OrderGateway {
	return &OrderGateway{client: client}
}

func (g *OrderGateway) Name() string {
	return "woocommerce"
}

func (g *OrderGateway) Submit(ctx context.Context, sub service.OrderSubmission) (string, error) {
	req, err := BuildOrderRequest(sub)
	if err != nil {
		return "", err
	}

	created, err := g.client.CreateOrder(ctx, req)
	if err != nil {
		return "", err
	}

	id := strconv.FormatInt(created.ID, 10)
	sub.Order.ID = id
	return id, nil
}
