package cassandra

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gocql/gocql"
)

// Config contiene los parámetros de conexión al cluster.
type Config struct {
	Hosts    []string      `env:"CLUSTER"  envDefault:"127.0.0.1" envSeparator:","`
	Keyspace string        `env:"KEYSPACE" envDefault:"vetclinic"`
	User     string        `env:"USER"     envDefault:""`
	Pass     string        `env:"PASS"     envDefault:""`
	Port     int           `env:"PORT"     envDefault:"9042"`
	Timeout  time.Duration `env:"TIMEOUT"  envDefault:"5s"`
}

// Setup lee Config del entorno con el prefijo dado y abre la sesión.
func Setup(envPrefix string) (*gocql.Session, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("cassandra: load config: %w", err)
	}
	return Connect(cfg)
}

// Connect abre una sesión con consistencia Quorum.
func Connect(cfg Config) (*gocql.Session, error) {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Keyspace = cfg.Keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Port = cfg.Port
	cluster.Timeout = cfg.Timeout
	if cfg.User != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.User,
			Password: cfg.Pass,
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("cassandra: connect: %w", err)
	}
	return session, nil
}

// quote cita un nombre de tabla configurable (respeta mayúsculas).
func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
