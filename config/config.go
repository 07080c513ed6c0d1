package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`

	Database  DatabaseConfigs  `toml:"database"`
	ApiServer APIServerConfigs `toml:"api_server"`
	Auth      AuthConfigs      `toml:"auth"`
	Kafka     KafkaConfigs     `toml:"kafka"`
	Redis     RedisConfigs     `toml:"redis"`
	Metrics   MetricsConfigs   `toml:"metrics"`
}

type DatabaseConfigs struct {
	// Driver is either mysql or sqlite.
	Driver   string `toml:"driver"`
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`

	// File is the sqlite database file, only used by the sqlite driver.
	File string `toml:"file"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

func (c ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type APIServerConfigs struct {
	ServerConfigs

	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
}

type AuthConfigs struct {
	TokenSecret     string        `toml:"token_secret"`
	Issuer          string        `toml:"issuer"`
	TokenExpiration time.Duration `toml:"token_expiration"`
}

type KafkaConfigs struct {
	Enable   bool   `toml:"enable"`
	Addr     string `toml:"addr"`
	ClientID string `toml:"client_id"`
}

type RedisConfigs struct {
	Enable   bool          `toml:"enable"`
	Addr     string        `toml:"addr"`
	CacheTTL time.Duration `toml:"cache_ttl"`
}

type MetricsConfigs struct {
	Enable bool   `toml:"enable"`
	Path   string `toml:"path"`
}

func Default() Configs {
	return Configs{
		Env:      "local",
		LogLevel: "info",
		Database: DatabaseConfigs{
			Driver: "sqlite",
			File:   "timebank.db",
		},
		ApiServer: APIServerConfigs{
			ServerConfigs: ServerConfigs{Host: "", Port: "8080"},
			DefaultLimit:  20,
			MaxLimit:      100,
		},
		Auth: AuthConfigs{
			Issuer:          "timebank",
			TokenExpiration: 24 * time.Hour,
		},
		Kafka: KafkaConfigs{
			Addr:     "localhost:9092",
			ClientID: "timebank-api",
		},
		Redis: RedisConfigs{
			Addr:     "localhost:6379",
			CacheTTL: 10 * time.Minute,
		},
		Metrics: MetricsConfigs{
			Enable: true,
			Path:   "/metrics",
		},
	}
}

// Load reads the toml file at path on top of the default configs. An empty path
// returns the defaults.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
	}

	return cfg, nil
}
