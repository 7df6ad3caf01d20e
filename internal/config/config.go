// Package config loads wordbrain settings from a file, WORDBRAIN_* env vars
// and defaults, in increasing order of precedence: defaults, file, env, flags.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/vyevs/wordbrain/internal/log"
)

const envPrefix = "WORDBRAIN"

type Dictionary struct {
	Path     string
	BigQuery BigQuery `mapstructure:"bigquery"`
}

type BigQuery struct {
	Project  string
	Table    string
	Column   string
	Location string
}

// Enabled reports whether words should come from BigQuery instead of a file.
func (b BigQuery) Enabled() bool {
	return b.Project != "" && b.Table != ""
}

type Solver struct {
	Workers int
	Timeout time.Duration
}

type Server struct {
	Addr    string
	Mode    string // gin mode
	Metrics bool
}

type Config struct {
	Dictionary Dictionary
	Solver     Solver
	Server     Server
	Log        log.Conf
}

// New returns a viper instance with every default set and env binding on.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("dictionary.path", "/usr/share/dict/words")
	v.SetDefault("dictionary.bigquery.column", "word")
	v.SetDefault("dictionary.bigquery.location", "US")

	v.SetDefault("solver.workers", 1)
	v.SetDefault("solver.timeout", 30*time.Second)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.metrics", true)

	def := log.SetDefaults()
	v.SetDefault("log.output", def.Output)
	v.SetDefault("log.path", def.Path)
	v.SetDefault("log.filename", def.Filename)
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.rotatesize", def.RotateSize)
	v.SetDefault("log.rotatenum", def.RotateNum)
	v.SetDefault("log.keepdays", def.KeepDays)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads file, if given, into v and decodes the result.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to read configuration file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal configuration")
	}
	if cfg.Solver.Workers < 1 {
		cfg.Solver.Workers = 1
	}
	return &cfg, nil
}
