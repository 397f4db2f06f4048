package firebase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSignInClient(t *testing.T, handler http.HandlerFunc) *FirebaseAuthClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewFirebaseAuthClient(nil, "web-api-key")
	client.identityBaseURL = srv.URL
	return client
}

func TestSignInWithPassword(t *testing.T) {
	t.Run("returns the id token", func(t *testing.T) {
		client := newSignInClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
			assert.Equal(t, "web-api-key", r.URL.Query().Get("key"))

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ada@example.com", body["email"])
			assert.Equal(t, true, body["returnSecureToken"])

			w.Write([]byte(`{"localId":"uid-1","email":"ada@example.com","idToken":"tok","refreshToken":"ref","expiresIn":"3600"}`))
		})

		result, err := client.SignInWithPassword(context.Background(), "ada@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "uid-1", result.UID)
		assert.Equal(t, "tok", result.IDToken)
	})

	t.Run("wrong password maps to invalid credentials", func(t *testing.T) {
		client := newSignInClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":400,"message":"INVALID_LOGIN_CREDENTIALS"}}`))
		})

		_, err := client.SignInWithPassword(context.Background(), "ada@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("other failures are passed through", func(t *testing.T) {
		client := newSignInClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.SignInWithPassword(context.Background(), "ada@example.com", "secret")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing api key", func(t *testing.T) {
		client := NewFirebaseAuthClient(nil, "")
		_, err := client.SignInWithPassword(context.Background(), "a@b.c", "x")
		assert.Error(t, err)
	})
}
