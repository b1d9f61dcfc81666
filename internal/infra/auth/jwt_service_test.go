package auth

import (
	"testing"
	"time"

	"hostelbites/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = testAccessSecret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken("a@x.io", []string{"user", "admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", claims.Email)
	assert.Equal(t, []string{"user", "admin"}, claims.Roles)
	assert.Equal(t, "a@x.io", claims.Subject)
	assert.Equal(t, defaultIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	issued := time.Now().Add(-2 * time.Hour)
	svc.(*jwtService).now = func() time.Time { return issued }
	token, err := svc.GenerateAccessToken("a@x.io", []string{"user"})
	require.NoError(t, err)

	svc.(*jwtService).now = time.Now
	_, err = svc.ValidateToken(token)

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.SecretKey.Access = "another_secret_key_for_testing_only"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)
	foreign, err := other.GenerateAccessToken("a@x.io", []string{"admin"})
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "a@x.io"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "clearly-not-a-jwt-token-format"},
		{"wrong secret", foreign},
		{"alg none", noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_IssuerFromServiceName(t *testing.T) {
	cfg := newTestConfig()
	cfg.Env.ServiceName = "bites-api"
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken("a@x.io", nil)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "bites-api", claims.Issuer)

	defaultSvc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	_, err = defaultSvc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}
