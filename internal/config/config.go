package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Stores soportados.
const (
	StoreMemory    = "memory"
	StorePostgres  = "postgres"
	StoreCassandra = "cassandra"
	StoreMongoDB   = "mongodb"
	StoreDynamoDB  = "dynamodb"
)

// MaxScanPageSize acota SCAN_PAGE_SIZE; los stores devuelven páginas mucho
// más chicas de todos modos (DynamoDB corta en 1 MB).
const MaxScanPageSize = 10000

// Tables agrupa los nombres lógicos de tablas/colecciones.
type Tables struct {
	Tutors      string `mapstructure:"TUTORTABLE"`
	Patients    string `mapstructure:"PACIENTETABLE"`
	Doctors     string `mapstructure:"MEDICOTABLE"`
	Records     string `mapstructure:"FICHACLINICATABLE"`
	Medications string `mapstructure:"MEDICAMENTOSTABLE"`
}

// Config de nivel app. Los parámetros de conexión de cada store
// (host, credenciales) los lee el adapter correspondiente con su prefijo.
type Config struct {
	Port            string        `mapstructure:"PORT"`
	Store           string        `mapstructure:"STORE"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	AppName         string        `mapstructure:"APP_NAME"`
	ScanPageSize    int           `mapstructure:"SCAN_PAGE_SIZE"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	Tables Tables `mapstructure:",squash"`
}

var keys = []string{
	"PORT", "STORE", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"SCAN_PAGE_SIZE", "SHUTDOWN_TIMEOUT",
	"TUTORTABLE", "PACIENTETABLE", "MEDICOTABLE", "FICHACLINICATABLE", "MEDICAMENTOSTABLE",
}

// Load lee .env (opcional) y variables de entorno; el entorno gana.
func Load() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("STORE", StoreMemory)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "vet-clinic-records")
	v.SetDefault("SCAN_PAGE_SIZE", 500)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("TUTORTABLE", "Tutor")
	v.SetDefault("PACIENTETABLE", "Paciente")
	v.SetDefault("MEDICOTABLE", "Medico")
	v.SetDefault("FICHACLINICATABLE", "FichaClinica")
	v.SetDefault("MEDICAMENTOSTABLE", "Medicamentos")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env es opcional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate revisa que la configuración sea utilizable.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StorePostgres, StoreCassandra, StoreMongoDB, StoreDynamoDB:
	default:
		return fmt.Errorf("STORE must be one of memory, postgres, cassandra, mongodb, dynamodb; got %q", c.Store)
	}
	if c.ScanPageSize <= 0 || c.ScanPageSize > MaxScanPageSize {
		return fmt.Errorf("SCAN_PAGE_SIZE must be between 1 and %d, got %d", MaxScanPageSize, c.ScanPageSize)
	}
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT is required")
	}
	for name, v := range map[string]string{
		"TUTORTABLE":        c.Tables.Tutors,
		"PACIENTETABLE":     c.Tables.Patients,
		"MEDICOTABLE":       c.Tables.Doctors,
		"FICHACLINICATABLE": c.Tables.Records,
		"MEDICAMENTOSTABLE": c.Tables.Medications,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	return nil
}

// Addr devuelve la dirección de escucha del server HTTP.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
