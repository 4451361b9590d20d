package mongo

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ConnectionString string `mapstructure:"connection-string"`
	Host             string `mapstructure:"host"`
	Port             int    `mapstructure:"port"`
	ReplicaSet       string `mapstructure:"replica-set"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	DirectConnection bool   `mapstructure:"direct-connection"`

	MaxPoolSize         uint64        `mapstructure:"max-pool-size"`
	MinPoolSize         uint64        `mapstructure:"min-pool-size"`
	MaxConnIdleTime     time.Duration `mapstructure:"max-conn-idle-time"`
	ConnectTimeout      time.Duration `mapstructure:"connect-timeout"`
	ServerSelectTimeout time.Duration `mapstructure:"server-select-timeout"`
	QueryTimeout        time.Duration `mapstructure:"query-timeout"`

	// Bulkhead limits concurrent store operations against the database.
	BulkheadLimit   int           `mapstructure:"bulkhead-limit"`
	BulkheadTimeout time.Duration `mapstructure:"bulkhead-timeout"`

	Migrations MigrationsConfig `mapstructure:"migrations"`
}

type MigrationsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func newConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	sub := v.Sub("mongo")
	if sub == nil {
		return cfg, fmt.Errorf("mongo config section is missing")
	}
	if err := sub.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to load mongo config: %w", err)
	}

	if cfg.MaxPoolSize == 0 {
		cfg.MaxPoolSize = 100
	}
	if cfg.MinPoolSize == 0 {
		cfg.MinPoolSize = 10
	}
	if cfg.MaxConnIdleTime == 0 {
		cfg.MaxConnIdleTime = 5 * time.Minute
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	if cfg.ServerSelectTimeout == 0 {
		cfg.ServerSelectTimeout = 30 * time.Second
	}
	if cfg.QueryTimeout == 0 {
		cfg.QueryTimeout = 30 * time.Second
	}
	if cfg.BulkheadLimit == 0 {
		cfg.BulkheadLimit = 50
	}
	if cfg.BulkheadTimeout == 0 {
		cfg.BulkheadTimeout = 10 * time.Second
	}

	return cfg, nil
}

func validateConfig(conf Config) error {
	if conf.ConnectionString != "" {
		return nil
	}
	if conf.Host == "" || conf.Port == 0 || conf.Database == "" {
		return fmt.Errorf("invalid mongo configuration")
	}
	return nil
}

// BuildURI assembles the connection string from the discrete fields unless an
// explicit connection string was configured.
func (c Config) BuildURI() string {
	if c.ConnectionString != "" {
		return c.ConnectionString
	}

	auth := ""
	if c.Username != "" {
		auth = fmt.Sprintf("%s:%s@", c.Username, c.Password)
	}

	uri := fmt.Sprintf("mongodb://%s%s:%d/%s", auth, c.Host, c.Port, c.Database)

	params := []string{}
	if c.ReplicaSet != "" {
		params = append(params, "replicaSet="+c.ReplicaSet)
	}
	if c.DirectConnection {
		params = append(params, "directConnection=true")
	}

	if len(params) > 0 {
		uri += "?" + strings.Join(params, "&")
	}

	return uri
}
