package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/repository"
	"luxestore/pkg/logger"
	"luxestore/pkg/utils"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	return err
}

func (r *firestoreOrderRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Order, error) {
	// Equality filter only; sorting happens here to avoid a composite index.
	orders, err := r.collect(r.client.Collection("orders").Where("userId", "==", userID).Documents(ctx))
	if err != nil {
		return nil, err
	}

	sortNewestFirst(orders)
	return orders, nil
}

func (r *firestoreOrderRepository) List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	orders, err := r.collect(r.client.Collection("orders").Documents(ctx))
	if err != nil {
		return nil, 0, err
	}

	sortNewestFirst(orders)
	start, end := utils.PageBounds(len(orders), limit, offset)
	return orders[start:end], int64(len(orders)), nil
}

func (r *firestoreOrderRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Order, error) {
	defer iter.Stop()

	orders := []*entity.Order{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			logger.LogOrderError(doc.Ref.ID, "decode", err)
			continue
		}
		order.ID = doc.Ref.ID
		orders = append(orders, &order)
	}

	return orders, nil
}

func sortNewestFirst(orders []*entity.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
