package config

import (
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Postgres struct {
	// URL takes precedence over the discrete connection fields when set.
	URL string `env:"DATABASE_URL"`

	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DB       string `env:"POSTGRES_DB" envDefault:"catalog"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`

	MaxConns        int32         `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	MinConns        int32         `env:"POSTGRES_MIN_CONNS" envDefault:"0"`
	MaxConnLifetime time.Duration `env:"POSTGRES_MAX_CONN_LIFETIME" envDefault:"1h"`
	MaxConnIdleTime time.Duration `env:"POSTGRES_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	ConnectTimeout  time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" envDefault:"5s"`

	MigrateOnStart bool `env:"POSTGRES_MIGRATE_ON_START" envDefault:"true"`
}

const (
	SourceDatabaseURL = "DATABASE_URL"
	SourceFields      = "POSTGRES_*"
)

// Source names where the connection string comes from.
func (p Postgres) Source() string {
	if p.URL != "" {
		return SourceDatabaseURL
	}
	return SourceFields
}

// ConnString returns the connection string for the configured database.
func (p Postgres) ConnString() string {
	if p.URL != "" {
		return NormalizeDatabaseURL(p.URL)
	}

	u := url.URL{
		Scheme: "postgresql",
		Host:   net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:   "/" + p.DB,
	}
	if p.Password != "" {
		u.User = url.UserPassword(p.User, p.Password)
	} else {
		u.User = url.User(p.User)
	}
	if p.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{p.SSLMode}}.Encode()
	}

	return u.String()
}

// NormalizeDatabaseURL rewrites the short "postgres://" scheme used by hosting
// platforms to "postgresql://". Anything else is returned unchanged.
func NormalizeDatabaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(raw, "postgres://"); ok {
		return "postgresql://" + rest
	}
	return raw
}
