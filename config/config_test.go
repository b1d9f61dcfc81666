package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
store:
  driver: mongo
mongo:
  uri: mongodb://localhost:27017
  transactions: false
secretKey:
  access: secret
mealRequest:
  dedupeScope: meal
http:
  timeouts:
    readTimeout: 7s
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(testConfigYAML), 0o600))

	return dir
}

func TestLoadWithEnv_FileValues(t *testing.T) {
	dir := writeTestConfig(t)
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("app")
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMongo, cfg.Store.Driver)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, 7*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := writeTestConfig(t)
	t.Chdir(dir)
	t.Setenv("MONGO_TRANSACTIONS", "true")
	t.Setenv("MEALREQUEST_DEDUPESCOPE", DedupeScopeMealUser)

	cfg, err := LoadWithEnv[Config]("app")
	require.NoError(t, err)

	require.NotNil(t, cfg.Mongo)
	assert.True(t, cfg.Mongo.Transactions)
	assert.Equal(t, DedupeScopeMealUser, cfg.MealRequest.DedupeScope)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Mongo: &MongoConfig{URI: "mongodb://db"}}
	cfg.applyDefaults()

	assert.Equal(t, StoreDriverMongo, cfg.Store.Driver)
	assert.Equal(t, defaultDatabase, cfg.Mongo.Database)
	assert.Equal(t, defaultCurrency, cfg.Payment.Currency)
	assert.Equal(t, DedupeScopeMeal, cfg.MealRequest.DedupeScope)
	assert.Equal(t, defaultPageSize, cfg.Catalog.DefaultPageSize)
	assert.Equal(t, defaultMealPageSize, cfg.Catalog.MealPageSize)
	assert.Equal(t, defaultMaxPageSize, cfg.Catalog.MaxPageSize)
	assert.Equal(t, defaultPackageTTL, cfg.Cache.PackageTTL)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Mongo: &MongoConfig{URI: "mongodb://db"}}
		cfg.SecretKey.Access = "secret"
		cfg.applyDefaults()

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "valid mongo", mutate: func(*Config) {}},
		{name: "missing mongo uri", mutate: func(cfg *Config) { cfg.Mongo.URI = "" }, wantErr: true},
		{name: "postgres without section", mutate: func(cfg *Config) { cfg.Store.Driver = StoreDriverPostgres }, wantErr: true},
		{name: "unknown driver", mutate: func(cfg *Config) { cfg.Store.Driver = "sqlite" }, wantErr: true},
		{name: "unknown dedupe scope", mutate: func(cfg *Config) { cfg.MealRequest.DedupeScope = "user" }, wantErr: true},
		{name: "per user dedupe scope", mutate: func(cfg *Config) { cfg.MealRequest.DedupeScope = DedupeScopeMealUser }},
		{name: "missing access secret", mutate: func(cfg *Config) { cfg.SecretKey.Access = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
