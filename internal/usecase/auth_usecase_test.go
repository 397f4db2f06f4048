package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxestore/internal/domain/entity"
	"luxestore/pkg/errors"
)

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()
	input := RegisterInput{Email: "ada@example.com", Password: "secret1", FirstName: "Ada", LastName: "Lovelace"}

	t.Run("creates a customer profile and signs in", func(t *testing.T) {
		users := newFakeUserRepo()
		uc := NewAuthUseCase(users, &fakeAuth{uid: "u1"})

		result, err := uc.Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleCustomer, result.User.Role)
		assert.Equal(t, "id-token-u1", result.Token)
		assert.Equal(t, "/account", result.Home)

		stored, _ := users.GetByID(ctx, "u1")
		require.NotNil(t, stored)
		assert.Equal(t, "Ada", stored.FirstName)
		assert.Equal(t, entity.RoleCustomer, stored.Role)
	})

	t.Run("auth provider rejection", func(t *testing.T) {
		uc := NewAuthUseCase(newFakeUserRepo(), &fakeAuth{createErr: errBackend})

		_, err := uc.Register(ctx, input)
		assert.True(t, errors.Is(err, errors.CodeBadRequest))
	})

	t.Run("profile write failure rolls back the account", func(t *testing.T) {
		users := newFakeUserRepo()
		users.saveErr = errBackend
		auth := &fakeAuth{uid: "u1"}
		uc := NewAuthUseCase(users, auth)

		_, err := uc.Register(ctx, input)
		assert.True(t, errors.Is(err, errors.CodeInternal))
		assert.Equal(t, []string{"u1"}, auth.deleted)
	})

	t.Run("sign-in failure still returns the new account", func(t *testing.T) {
		uc := NewAuthUseCase(newFakeUserRepo(), &fakeAuth{uid: "u1", signInErr: errBackend})

		result, err := uc.Register(ctx, input)
		require.NoError(t, err)
		assert.Empty(t, result.Token)
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("admins land on the console", func(t *testing.T) {
		users := newFakeUserRepo(&entity.User{UID: "a1", Role: entity.RoleAdmin})
		uc := NewAuthUseCase(users, &fakeAuth{uid: "a1"})

		result, err := uc.Login(ctx, "boss@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, "/admin", result.Home)
		assert.Equal(t, "id-token-a1", result.Token)
	})

	t.Run("customers land on their account", func(t *testing.T) {
		users := newFakeUserRepo(&entity.User{UID: "u1", Role: entity.RoleCustomer})
		uc := NewAuthUseCase(users, &fakeAuth{uid: "u1"})

		result, err := uc.Login(ctx, "ada@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, "/account", result.Home)
	})

	t.Run("missing profile goes home", func(t *testing.T) {
		uc := NewAuthUseCase(newFakeUserRepo(), &fakeAuth{uid: "u9"})

		result, err := uc.Login(ctx, "x@example.com", "pw")
		require.NoError(t, err)
		assert.Nil(t, result.User)
		assert.Equal(t, "/", result.Home)
	})

	t.Run("bad credentials", func(t *testing.T) {
		uc := NewAuthUseCase(newFakeUserRepo(), &fakeAuth{signInErr: errBackend})

		_, err := uc.Login(ctx, "x@example.com", "wrong")
		assert.True(t, errors.Is(err, errors.CodeUnauthorized))
	})
}
