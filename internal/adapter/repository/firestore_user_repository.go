package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/repository"
	"luxestore/pkg/logger"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.client.Collection("users").Doc(user.UID).Set(ctx, user)
	return err
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, uid string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(uid).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	user.UID = doc.Ref.ID

	return &user, nil
}

// UpdateProfile merges the editable fields; role and email are never written here.
func (r *firestoreUserRepository) UpdateProfile(ctx context.Context, uid string, update entity.ProfileUpdate) error {
	data := update.Fields()
	data["updatedAt"] = time.Now()

	logger.Debug("Updating profile %s: %+v", uid, data)

	_, err := r.client.Collection("users").Doc(uid).Set(ctx, data, firestore.MergeAll)
	return err
}

func (r *firestoreUserRepository) SetConnectedWallets(ctx context.Context, uid string, wallets map[string]bool) error {
	_, err := r.client.Collection("users").Doc(uid).Update(ctx, []firestore.Update{
		{Path: "connectedWallets", Value: wallets},
		{Path: "updatedAt", Value: time.Now()},
	})
	return err
}

func (r *firestoreUserRepository) FindByField(ctx context.Context, field, value string, limit, offset int) ([]*entity.User, int64, error) {
	query := r.client.Collection("users").Where(field, "==", value)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var users []*entity.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, 0, err
		}
		user.UID = doc.Ref.ID
		users = append(users, &user)
	}

	return users, total, nil
}
