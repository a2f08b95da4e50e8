package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Config se lee del entorno con prefijo (PG_ en cmd/api). Si DSN viene,
// gana sobre los campos sueltos.
type Config struct {
	DSN     string `env:"DSN"`
	Host    string `env:"HOST"    envDefault:"localhost"`
	Port    string `env:"PORT"    envDefault:"5432"`
	User    string `env:"USER"    envDefault:"postgres"`
	Pass    string `env:"PASS"    envDefault:""`
	Name    string `env:"NAME"    envDefault:"vetclinic"`
	SSLMode string `env:"SSLMODE" envDefault:"disable"`
}

func (c Config) dsn() string {
	if c.DSN != "" {
		return c.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Pass),
		Host:     c.Host + ":" + c.Port,
		Path:     c.Name,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

// Setup lee Config con el prefijo dado y abre el pool.
func Setup(envPrefix string) (*sql.DB, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("postgres: load config: %w", err)
	}
	return Open(cfg.dsn())
}

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return db, nil
}

// ident cita un nombre de tabla que viene de configuración.
func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}
