package auth

import (
	"context"

	"hostelbites/config"
	"hostelbites/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// idTokenVerifier is the part of the Firebase auth client the verifier uses.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier creates an IdentityVerifier for Firebase Authentication ID tokens.
func NewFirebaseVerifier(ctx context.Context, cfg *config.FirebaseConfig) (service.IdentityVerifier, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// VerifyIDToken checks the token signature and expiry and returns the identity it carries.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	identity := &service.Identity{
		UID:      token.UID,
		Email:    stringClaim(token.Claims, "email"),
		Name:     stringClaim(token.Claims, "name"),
		PhotoURL: stringClaim(token.Claims, "picture"),
	}
	if identity.Email == "" {
		return nil, errors.New("ID token carries no email")
	}

	return identity, nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
