package service

import "context"

// Identity is the verified identity carried by an external ID token.
type Identity struct {
	UID      string
	Email    string
	Name     string
	PhotoURL string
}

// IdentityVerifier verifies ID tokens issued by the sign-in provider.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
