// Package config carga la configuración del servicio desde variables de entorno
// y, opcionalmente, un YAML apuntado por CONFIG_PATH (el entorno siempre gana).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTP     HTTP     `yaml:"http"`
	DB       DB       `yaml:"db"`
	JWT      JWT      `yaml:"jwt"`
	Login    Login    `yaml:"login"`
	Log      Log      `yaml:"log"`
	Audit    Audit    `yaml:"audit"`
	CORS     CORS     `yaml:"cors"`
	Requests Requests `yaml:"requests"`
	Admin    Admin    `yaml:"admin"`
}

type HTTP struct {
	Port            string        `yaml:"port" env:"PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustedProxies: IPs/CIDRs cuyos X-Forwarded-For se respetan. Vacío => ninguno.
	TrustedProxies []string `yaml:"trusted_proxies" env:"TRUSTED_PROXIES" env-separator:","`
}

func (h HTTP) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(h.Port), ":")
}

// DB: DSN vacío => repos in-memory (modo dev).
type DB struct {
	DSN          string `yaml:"dsn" env:"DB_DSN"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	AutoMigrate  bool   `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE" env-default:"false"`
}

type JWT struct {
	Secret string `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	// ExpiresIn en segundos.
	ExpiresIn int `yaml:"expires_in" env:"JWT_EXPIRES_IN" env-default:"3600"`
}

func (j JWT) TTL() time.Duration {
	return time.Duration(j.ExpiresIn) * time.Second
}

type Login struct {
	RateLimit  int           `yaml:"rate_limit" env:"LOGIN_RATE_LIMIT" env-default:"10"`
	RateWindow time.Duration `yaml:"rate_window" env:"LOGIN_RATE_WINDOW" env-default:"15m"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	App    string `yaml:"app" env:"APP_NAME" env-default:"pet-adoption-shelter"`
}

// Audit: path vacío => stdout.
type Audit struct {
	Path string `yaml:"path" env:"AUDIT_LOG_PATH"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`
}

type Requests struct {
	EnforceTransitions bool `yaml:"enforce_transitions" env:"ENFORCE_REQUEST_TRANSITIONS" env-default:"false"`
}

// Admin de arranque; si Correo está vacío no se siembra nada.
type Admin struct {
	Nombre   string `yaml:"nombre" env:"ADMIN_NOMBRE" env-default:"Administrador"`
	Correo   string `yaml:"correo" env:"ADMIN_CORREO"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
}

func (a Admin) Enabled() bool {
	return strings.TrimSpace(a.Correo) != ""
}

// Load lee CONFIG_PATH (si existe) + entorno y valida.
func Load() (*Config, error) {
	var cfg Config

	if path := strings.TrimSpace(os.Getenv("CONFIG_PATH")); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.JWT.Secret) == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWT.ExpiresIn <= 0 {
		errs = append(errs, fmt.Errorf("JWT_EXPIRES_IN must be positive, got %d", c.JWT.ExpiresIn))
	}
	if c.Login.RateLimit <= 0 {
		errs = append(errs, fmt.Errorf("LOGIN_RATE_LIMIT must be positive, got %d", c.Login.RateLimit))
	}
	if c.Login.RateWindow <= 0 {
		errs = append(errs, fmt.Errorf("LOGIN_RATE_WINDOW must be positive, got %s", c.Login.RateWindow))
	}
	if c.DB.MaxOpenConns <= 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", c.DB.MaxOpenConns))
	}
	if c.Admin.Enabled() && strings.TrimSpace(c.Admin.Password) == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD is required when ADMIN_CORREO is set"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
