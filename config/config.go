package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"pulse/internal/domain/entity"

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
	defaultLookbackDays       = 7
	defaultTopN               = 10
	defaultMaxTopN            = 100
	defaultRefreshConcurrency = 4
	defaultRefreshMaxRetries  = 3
	defaultRefreshCallTimeout = 15 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`

		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Accrual configuration for the time-windowed accrual engine
	Accrual *AccrualConfig `json:"accrual" yaml:"accrual"`

	// Leaderboard configuration for ranking views
	Leaderboard *LeaderboardConfig `json:"leaderboard" yaml:"leaderboard"`

	// Reconcile configuration for the mapping reconciliation batch
	Reconcile *ReconcileConfig `json:"reconcile" yaml:"reconcile"`

	// Refresh configuration for the snapshot refresh batch
	Refresh *RefreshConfig `json:"refresh" yaml:"refresh"`

	// Platforms configuration for external platform integrations
	Platforms *PlatformsConfig `json:"platforms" yaml:"platforms"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AccrualConfig defines configuration for the accrual calculator
type AccrualConfig struct {
	// Extra days pulled before the nominal range start so a baseline capture
	// exists even when capture cadence does not align with range boundaries
	LookbackDays int `json:"lookbackDays" yaml:"lookbackDays"`
}

// LeaderboardConfig defines configuration for leaderboard ranking
type LeaderboardConfig struct {
	DefaultTopN int `json:"defaultTopN" yaml:"defaultTopN"`
	MaxTopN     int `json:"maxTopN" yaml:"maxTopN"`

	// Weights for the composite score; zero value means equal weights
	Weights *entity.MetricWeights `json:"weights" yaml:"weights"`
}

// ReconcileConfig defines configuration for the reconciliation batch
type ReconcileConfig struct {
	// Platforms to reconcile; empty means all supported platforms
	Platforms []string `json:"platforms" yaml:"platforms"`
}

// RefreshConfig defines configuration for the snapshot refresh batch
type RefreshConfig struct {
	Concurrency    int           `json:"concurrency" yaml:"concurrency"`
	MaxRetries     int           `json:"maxRetries" yaml:"maxRetries"`
	PerCallTimeout time.Duration `json:"perCallTimeout" yaml:"perCallTimeout"`
}

// PlatformsConfig defines the external platform integration endpoints
type PlatformsConfig struct {
	TikTok    *PlatformEndpoint `json:"tiktok" yaml:"tiktok"`
	Instagram *PlatformEndpoint `json:"instagram" yaml:"instagram"`
	YouTube   *PlatformEndpoint `json:"youtube" yaml:"youtube"`
}

// PlatformEndpoint defines one platform integration endpoint
type PlatformEndpoint struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string `json:"apiKey" yaml:"apiKey"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// Local development convenience; a missing .env file is fine
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Accrual == nil {
		cfg.Accrual = &AccrualConfig{}
	}
	if cfg.Accrual.LookbackDays <= 0 {
		cfg.Accrual.LookbackDays = defaultLookbackDays
	}

	if cfg.Leaderboard == nil {
		cfg.Leaderboard = &LeaderboardConfig{}
	}
	if cfg.Leaderboard.DefaultTopN <= 0 {
		cfg.Leaderboard.DefaultTopN = defaultTopN
	}
	if cfg.Leaderboard.MaxTopN <= 0 {
		cfg.Leaderboard.MaxTopN = defaultMaxTopN
	}

	if cfg.Reconcile == nil {
		cfg.Reconcile = &ReconcileConfig{}
	}

	if cfg.Refresh == nil {
		cfg.Refresh = &RefreshConfig{}
	}
	if cfg.Refresh.Concurrency <= 0 {
		cfg.Refresh.Concurrency = defaultRefreshConcurrency
	}
	if cfg.Refresh.MaxRetries <= 0 {
		cfg.Refresh.MaxRetries = defaultRefreshMaxRetries
	}
	if cfg.Refresh.PerCallTimeout <= 0 {
		cfg.Refresh.PerCallTimeout = defaultRefreshCallTimeout
	}
}

// ReconcilePlatforms returns the configured platform list, defaulting to all
// supported platforms when unset. Unknown names are skipped.
func (c *Config) ReconcilePlatforms() []entity.Platform {
	if c.Reconcile == nil || len(c.Reconcile.Platforms) == 0 {
		return entity.AllPlatforms()
	}

	platforms := make([]entity.Platform, 0, len(c.Reconcile.Platforms))
	for _, raw := range c.Reconcile.Platforms {
		p := entity.Platform(strings.ToLower(strings.TrimSpace(raw)))
		if p.Valid() {
			platforms = append(platforms, p)
		}
	}

	return platforms
}

// LeaderboardWeights returns the configured metric weights, defaulting to
// equal weights.
func (c *Config) LeaderboardWeights() entity.MetricWeights {
	if c.Leaderboard == nil || c.Leaderboard.Weights == nil || *c.Leaderboard.Weights == (entity.MetricWeights{}) {
		return entity.EqualMetricWeights()
	}

	return *c.Leaderboard.Weights
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
