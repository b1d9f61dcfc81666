package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultDatabase           = "HostelBites"
	defaultCurrency           = "usd"
	defaultPageSize           = 20
	defaultMealPageSize       = 3
	defaultMaxPageSize        = 100
	defaultPackageTTL         = 10 * time.Minute
	defaultAccessTokenTTL     = 24 * time.Hour
)

// Store drivers.
const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"
)

// Meal request dedupe scopes.
const (
	DedupeScopeMeal     = "meal"
	DedupeScopeMealUser = "meal_user"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Store StoreConfig `json:"store" yaml:"store"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis is optional; package reads bypass the cache when it is nil.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Cache CacheConfig `json:"cache" yaml:"cache"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase enables ID token verification on token issuance.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Payment PaymentConfig `json:"payment" yaml:"payment"`

	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	MealRequest MealRequestConfig `json:"mealRequest" yaml:"mealRequest"`

	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Sentry *SentryConfig `json:"sentry" yaml:"sentry"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Driver string `json:"driver" yaml:"driver"`
}

// MongoConfig defines the document store connection.
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`

	// Transactions requires a replica set deployment.
	Transactions bool `json:"transactions" yaml:"transactions"`
}

type RedisConfig struct {
	URL string `json:"url" yaml:"url"`
}

type CacheConfig struct {
	PackageTTL time.Duration `json:"packageTTL" yaml:"packageTTL"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PaymentConfig defines the payment intent provider.
type PaymentConfig struct {
	// Provider type: "stripe", "midtrans" or empty to disable intents
	Provider string `json:"provider" yaml:"provider"`
	Currency string `json:"currency" yaml:"currency"`

	Stripe struct {
		SecretKey string `json:"secretKey" yaml:"secretKey"`
	} `json:"stripe" yaml:"stripe"`

	Midtrans struct {
		ServerKey  string `json:"serverKey" yaml:"serverKey"`
		ClientKey  string `json:"clientKey" yaml:"clientKey"`
		Production bool   `json:"production" yaml:"production"`
	} `json:"midtrans" yaml:"midtrans"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider      string `json:"provider" yaml:"provider"`
	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type MealRequestConfig struct {
	// DedupeScope is "meal" (one request per meal) or "meal_user" (one request per meal per user).
	DedupeScope string `json:"dedupeScope" yaml:"dedupeScope"`
}

type CatalogConfig struct {
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
	// MealPageSize is the page size of the public meal listing when no limit is given.
	MealPageSize int `json:"mealPageSize" yaml:"mealPageSize"`
	MaxPageSize  int `json:"maxPageSize" yaml:"maxPageSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type SentryConfig struct {
	DSN              string  `json:"dsn" yaml:"dsn"`
	Environment      string  `json:"environment" yaml:"environment"`
	TracesSampleRate float64 `json:"tracesSampleRate" yaml:"tracesSampleRate"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// MONGO_URI -> mongo.uri, PAYMENT_STRIPE_SECRETKEY -> payment.stripe.secretKey
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreDriverMongo
	}
	if cfg.Mongo != nil && cfg.Mongo.Database == "" {
		cfg.Mongo.Database = defaultDatabase
	}
	if cfg.Payment.Currency == "" {
		cfg.Payment.Currency = defaultCurrency
	}
	if cfg.MealRequest.DedupeScope == "" {
		cfg.MealRequest.DedupeScope = DedupeScopeMeal
	}
	if cfg.Catalog.DefaultPageSize <= 0 {
		cfg.Catalog.DefaultPageSize = defaultPageSize
	}
	if cfg.Catalog.MealPageSize <= 0 {
		cfg.Catalog.MealPageSize = defaultMealPageSize
	}
	if cfg.Catalog.MaxPageSize <= 0 {
		cfg.Catalog.MaxPageSize = defaultMaxPageSize
	}
	if cfg.Cache.PackageTTL <= 0 {
		cfg.Cache.PackageTTL = defaultPackageTTL
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
}

// Validate rejects configurations the service cannot start with.
func (cfg *Config) Validate() error {
	switch cfg.Store.Driver {
	case StoreDriverMongo:
		if cfg.Mongo == nil || cfg.Mongo.URI == "" {
			return errors.New("mongo.uri is required for the mongo store driver")
		}
	case StoreDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required for the postgres store driver")
		}
	default:
		return errors.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}

	switch cfg.MealRequest.DedupeScope {
	case DedupeScopeMeal, DedupeScopeMealUser:
	default:
		return errors.Errorf("unknown meal request dedupe scope: %s", cfg.MealRequest.DedupeScope)
	}

	if cfg.SecretKey.Access == "" {
		return errors.New("secretKey.access is required")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field} variables.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
