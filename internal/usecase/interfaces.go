package usecase

import (
	"context"
	"io"

	"luxestore/internal/domain/entity"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	SignInWithEmailPassword(ctx context.Context, email, password string) (uid string, token string, err error)
}

// ImageStore persists uploaded storefront imagery and returns its public URL.
type ImageStore interface {
	UploadImage(ctx context.Context, file io.Reader, contentType, folder string) (string, error)
}

// OrderNotifier is told about every order the backend accepted.
type OrderNotifier interface {
	NotifyOrderCreated(order *entity.Order)
}
