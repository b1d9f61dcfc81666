package auth

import (
	"context"
	"testing"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenClient struct {
	token *firebaseauth.Token
	err   error
}

func (f *fakeTokenClient) VerifyIDToken(context.Context, string) (*firebaseauth.Token, error) {
	return f.token, f.err
}

func TestFirebaseVerifier_VerifyIDToken(t *testing.T) {
	verifier := &firebaseVerifier{client: &fakeTokenClient{token: &firebaseauth.Token{
		UID: "uid-1",
		Claims: map[string]any{
			"email":   "a@x.io",
			"name":    "Asha",
			"picture": "https://img.example/a.png",
		},
	}}}

	identity, err := verifier.VerifyIDToken(context.Background(), "id-token")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", identity.UID)
	assert.Equal(t, "a@x.io", identity.Email)
	assert.Equal(t, "Asha", identity.Name)
	assert.Equal(t, "https://img.example/a.png", identity.PhotoURL)
}

func TestFirebaseVerifier_Errors(t *testing.T) {
	t.Run("rejected token", func(t *testing.T) {
		verifier := &firebaseVerifier{client: &fakeTokenClient{err: errors.New("ID token has expired")}}

		_, err := verifier.VerifyIDToken(context.Background(), "id-token")

		assert.ErrorContains(t, err, "expired")
	})

	t.Run("no email claim", func(t *testing.T) {
		verifier := &firebaseVerifier{client: &fakeTokenClient{token: &firebaseauth.Token{
			UID:    "uid-1",
			Claims: map[string]any{"email": 42},
		}}}

		_, err := verifier.VerifyIDToken(context.Background(), "id-token")

		assert.Error(t, err)
	})
}
