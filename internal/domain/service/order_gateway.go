package service

import (
	"context"

	"github.com/google/uuid"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/repository"
)

// OrderSubmission carries the order snapshot plus the raw contact form, which
// some backends need split into billing fields.
type OrderSubmission struct {
	Order   *entity.Order
	Contact entity.CheckoutContact
}

// OrderGateway writes a new order to the authoritative order store and
// returns the id it was stored under. A deployment uses exactly one gateway.
type OrderGateway interface {
	Name() string
	Submit(ctx context.Context, sub OrderSubmission) (string, error)
}

// DocumentOrderGateway stores orders in the document store's orders collection.
type DocumentOrderGateway struct {
	orders repository.OrderRepository
}

func NewDocumentOrderGateway(orders repository.OrderRepository) *DocumentOrderGateway {
	return &DocumentOrderGateway{orders: orders}
}

func (g *DocumentOrderGateway) Name() string {
	return "firestore"
}

func (g *DocumentOrderGateway) Submit(ctx context.Context, sub OrderSubmission) (string, error) {
	if sub.Order.ID == "" {
		sub.Order.ID = uuid.New().String()
	}
	if err := g.orders.Create(ctx, sub.Order); err != nil {
		return "", err
	}
	return sub.Order.ID, nil
}
