package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// UpgradeRoles is the comma-separated allow-list of roles permitted to
	// upgrade a user to professional status. Admin-only by default; set
	// UPGRADE_ROLES=manager,admin to also allow managers.
	UpgradeRoles []string `env:"UPGRADE_ROLES, default=admin"`

	Postgres  PostgresConfig
	Bootstrap BootstrapConfig
}

type PostgresConfig struct {
	Host     string `env:"PG_HOST,     default=localhost"`
	Port     string `env:"PG_PORT,     default=5432"`
	User     string `env:"PG_USER,     default=postgres"`
	Password string `env:"PG_PASSWORD"`
	Database string `env:"PG_DB,       default=profile_service"`
	SSLMode  string `env:"PG_SSLMODE,  default=disable"`
}

// BootstrapConfig seeds the first elevated user. Token issuance is out of
// scope, so without this a fresh database has no actor able to upgrade anyone.
type BootstrapConfig struct {
	AdminName  string `env:"BOOTSTRAP_ADMIN_NAME, default=admin"`
	AdminToken string `env:"BOOTSTRAP_ADMIN_TOKEN"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
