package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Battle holds all configuration for battle resolution and the simulator.
type Battle struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Damage resolution
	CritChance  float64 `yaml:"crit_chance"`  // 0..1
	VarianceMin float64 `yaml:"variance_min"` // lower bound of the damage roll
	VarianceMax float64 `yaml:"variance_max"`

	// Content catalog
	CatalogSource string `yaml:"catalog_source"` // "yaml" or "postgres"
	CatalogPath   string `yaml:"catalog_path"`   // empty: embedded catalog

	// Database (catalog_source: postgres)
	Database DatabaseConfig `yaml:"database"`

	Simulation SimulationConfig `yaml:"simulation"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// SimulationConfig drives cmd/battlesim.
type SimulationConfig struct {
	Duels    int    `yaml:"duels"`
	Workers  int    `yaml:"workers"`
	MaxTurns int    `yaml:"max_turns"`
	MinLevel int    `yaml:"min_level"`
	MaxLevel int    `yaml:"max_level"`
	Seed     uint64 `yaml:"seed"`
}

const (
	CatalogYAML     = "yaml"
	CatalogPostgres = "postgres"
)

// DefaultBattle returns Battle config with sensible defaults.
func DefaultBattle() Battle {
	return Battle{
		LogLevel:      "info",
		CritChance:    0.06,
		VarianceMin:   0.85,
		VarianceMax:   1.00,
		CatalogSource: CatalogYAML,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "monbattle",
			Password: "monbattle",
			DBName:   "monbattle",
			SSLMode:  "disable",
		},
		Simulation: SimulationConfig{
			Duels:    1000,
			Workers:  8,
			MaxTurns: 100,
			MinLevel: 5,
			MaxLevel: 30,
			Seed:     1,
		},
	}
}

// Validate checks value ranges.
func (b Battle) Validate() error {
	if b.CritChance < 0 || b.CritChance > 1 {
		return fmt.Errorf("crit_chance %v out of [0, 1]", b.CritChance)
	}
	if b.VarianceMin <= 0 || b.VarianceMax < b.VarianceMin {
		return fmt.Errorf("variance range [%v, %v] is invalid", b.VarianceMin, b.VarianceMax)
	}
	switch b.CatalogSource {
	case CatalogYAML, CatalogPostgres:
	default:
		return fmt.Errorf("unknown catalog_source %q", b.CatalogSource)
	}
	s := b.Simulation
	if s.Duels < 0 || s.Workers < 1 || s.MaxTurns < 1 {
		return fmt.Errorf("simulation: duels=%d workers=%d max_turns=%d", s.Duels, s.Workers, s.MaxTurns)
	}
	if s.MinLevel < 1 || s.MaxLevel < s.MinLevel {
		return fmt.Errorf("simulation: level range %d..%d", s.MinLevel, s.MaxLevel)
	}
	return nil
}

// LoadBattle loads battle config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBattle(path string) (Battle, error) {
	cfg := DefaultBattle()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
