package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
)

var (
	ErrMissingRequired     = errors.New("required configuration is missing")
	ErrInvalidCacheBackend = errors.New("invalid cache backend")
)

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	TrustedProxyCIDRs []string      `mapstructure:"trusted_proxy_cidrs"`
}

type SnapshotConfig struct {
	AllowedCameras  []int         `mapstructure:"allowed_cameras"`
	AllowedProfiles []int         `mapstructure:"allowed_profiles"`
	TTL             time.Duration `mapstructure:"ttl"`
}

type SynologyConfig struct {
	BaseURL            string        `mapstructure:"base_url"`
	Account            string        `mapstructure:"account"`
	Password           string        `mapstructure:"password"`
	Timeout            time.Duration `mapstructure:"timeout"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
}

type CacheConfig struct {
	Backend   string `mapstructure:"backend"`
	Dir       string `mapstructure:"dir"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	Synology SynologyConfig `mapstructure:"synology"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.request_timeout", 30*time.Second)
	viper.SetDefault("server.trusted_proxy_cidrs", []string{})

	viper.SetDefault("snapshot.allowed_cameras", []int{3, 4, 5})
	viper.SetDefault("snapshot.allowed_profiles", []int{0, 1, 2})
	viper.SetDefault("snapshot.ttl", 10*time.Second)

	// 必須項目も環境変数から読めるように空の既定値を登録する
	viper.SetDefault("synology.base_url", "")
	viper.SetDefault("synology.account", "")
	viper.SetDefault("synology.password", "")
	viper.SetDefault("synology.timeout", 10*time.Second)
	viper.SetDefault("synology.insecure_skip_verify", false)

	viper.SetDefault("cache.backend", CacheBackendFile)
	viper.SetDefault("cache.dir", "./cache")
	viper.SetDefault("cache.key_prefix", "synology:")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
}

// Load はカレントディレクトリの config.yaml と環境変数から設定を読み込む
// config.yaml は任意で、環境変数が優先される
func Load() (*Config, error) {
	setDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定のデコードに失敗しました: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	required := map[string]string{
		"synology.base_url": c.Synology.BaseURL,
		"synology.account":  c.Synology.Account,
		"synology.password": c.Synology.Password,
	}
	var missing []string
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}

	switch c.Cache.Backend {
	case CacheBackendFile, CacheBackendRedis:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCacheBackend, c.Cache.Backend)
	}
	return nil
}

func (c SynologyConfig) String() string {
	return fmt.Sprintf("SynologyConfig{BaseURL: %s, Account: %s, Password: ***, Timeout: %s, InsecureSkipVerify: %t}",
		c.BaseURL, c.Account, c.Timeout, c.InsecureSkipVerify)
}

func (c RedisConfig) String() string {
	return fmt.Sprintf("RedisConfig{Host: %s, Port: %d, Password: ***, DB: %d}",
		c.Host, c.Port, c.DB)
}
