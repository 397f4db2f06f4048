package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"luxestore/internal/domain/repository"
	"luxestore/internal/domain/settings"
)

type firestoreSettingsRepository struct {
	client *firestore.Client
}

func NewFirestoreSettingsRepository(client *firestore.Client) repository.SettingsRepository {
	return &firestoreSettingsRepository{
		client: client,
	}
}

func (r *firestoreSettingsRepository) doc() *firestore.DocumentRef {
	return r.client.Collection("settings").Doc(settings.DocumentID)
}

func (r *firestoreSettingsRepository) Get(ctx context.Context) (map[string]interface{}, bool, error) {
	snap, err := r.doc().Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return snap.Data(), true, nil
}

// Save uses MergeAll so concurrent admins only overwrite the leaves they send.
func (r *firestoreSettingsRepository) Save(ctx context.Context, doc map[string]interface{}) error {
	_, err := r.doc().Set(ctx, doc, firestore.MergeAll)
	return err
}
