package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Fuentes de candidatos soportadas.
const (
	SourceGenerated = "generated"
	SourcePostgres  = "postgres"
	SourceDirectory = "directory"
)

// Config settings del servicio. Se arma desde .env, config.yaml (opcional) y variables de entorno.
type Config struct {
	Port string

	Log struct {
		Level  string
		Format string
		App    string
	}

	Match struct {
		MaxDistanceKm float64
		MaxResults    int
		ScoreWorkers  int
	}

	Candidates struct {
		Source   string
		PoolSize int
		Seed     int64
	}

	DB struct {
		DSN string
		// MaxCandidates acota el SELECT de owners; 0 = sin límite.
		MaxCandidates int
	}

	Directory struct {
		URL     string
		Timeout time.Duration
	}

	RateLimitPerMinute int
}

// Load lee la configuración. path puede ser "" (solo env + defaults).
func Load(path string) (*Config, error) {
	// .env es opcional (dev); en prod todo viene por env.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	cfg.Port = v.GetString("port")
	cfg.Log.Level = v.GetString("log_level")
	cfg.Log.Format = v.GetString("log_format")
	cfg.Log.App = v.GetString("app_name")

	cfg.Match.MaxDistanceKm = v.GetFloat64("match_max_distance_km")
	cfg.Match.MaxResults = v.GetInt("match_max_results")
	cfg.Match.ScoreWorkers = v.GetInt("match_score_workers")

	cfg.Candidates.Source = strings.ToLower(strings.TrimSpace(v.GetString("candidates_source")))
	cfg.Candidates.PoolSize = v.GetInt("candidates_pool_size")
	cfg.Candidates.Seed = v.GetInt64("random_seed")

	cfg.DB.DSN = v.GetString("db_dsn")
	cfg.DB.MaxCandidates = v.GetInt("db_max_candidates")

	cfg.Directory.URL = v.GetString("directory_url")
	cfg.Directory.Timeout = v.GetDuration("directory_timeout")

	cfg.RateLimitPerMinute = v.GetInt("rate_limit_per_minute")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("app_name", "dog-playdate-matcher")

	v.SetDefault("match_max_distance_km", 50.0)
	v.SetDefault("match_max_results", 5)
	v.SetDefault("match_score_workers", 1)

	v.SetDefault("candidates_source", SourceGenerated)
	v.SetDefault("candidates_pool_size", 20)
	v.SetDefault("random_seed", 0)

	v.SetDefault("db_dsn", "")
	v.SetDefault("db_max_candidates", 0)
	v.SetDefault("directory_url", "")
	v.SetDefault("directory_timeout", 10*time.Second)

	v.SetDefault("rate_limit_per_minute", 120)
}

// Validate revisa combinaciones inválidas.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Port) == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.Match.MaxDistanceKm <= 0 {
		errs = append(errs, errors.New("MATCH_MAX_DISTANCE_KM must be > 0"))
	}
	if c.Match.MaxResults < 1 {
		errs = append(errs, errors.New("MATCH_MAX_RESULTS must be >= 1"))
	}
	if c.Match.ScoreWorkers < 1 {
		errs = append(errs, errors.New("MATCH_SCORE_WORKERS must be >= 1"))
	}
	if c.RateLimitPerMinute < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must be >= 0"))
	}

	switch c.Candidates.Source {
	case SourceGenerated:
		if c.Candidates.PoolSize < 1 {
			errs = append(errs, errors.New("CANDIDATES_POOL_SIZE must be >= 1"))
		}
	case SourcePostgres:
		if strings.TrimSpace(c.DB.DSN) == "" {
			errs = append(errs, errors.New("DB_DSN is required when CANDIDATES_SOURCE=postgres"))
		}
		if c.DB.MaxCandidates < 0 {
			errs = append(errs, errors.New("DB_MAX_CANDIDATES must be >= 0"))
		}
	case SourceDirectory:
		if strings.TrimSpace(c.Directory.URL) == "" {
			errs = append(errs, errors.New("DIRECTORY_URL is required when CANDIDATES_SOURCE=directory"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CANDIDATES_SOURCE %q", c.Candidates.Source))
	}

	return errors.Join(errs...)
}
