package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config define cómo conectarse a MongoDB. URI, si viene, gana sobre Host/Port.
type Config struct {
	URI     string        `env:"URI"`
	Host    string        `env:"HOST"    envDefault:"localhost"`
	Port    string        `env:"PORT"    envDefault:"27017"`
	Name    string        `env:"NAME"    envDefault:"vetclinic"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

func (c Config) uri() string {
	if c.URI != "" {
		return c.URI
	}
	return fmt.Sprintf("mongodb://%s:%s", c.Host, c.Port)
}

// Connect crea el cliente, verifica con un ping y devuelve la base.
func Connect(ctx context.Context, cfg Config) (*mongo.Database, error) {
	opts := options.Client().ApplyURI(cfg.uri()).SetConnectTimeout(cfg.Timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	return client.Database(cfg.Name), nil
}

// Setup lee Config del entorno con el prefijo dado y conecta.
func Setup(ctx context.Context, envPrefix string) (*mongo.Database, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("mongodb: load config: %w", err)
	}
	return Connect(ctx, cfg)
}
