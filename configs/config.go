package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type AdminCredential struct {
	Username string   `koanf:"username"`
	Password string   `koanf:"password"`
	Perms    []string `koanf:"perms"`
	Disabled bool     `koanf:"disabled"`
}

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogLevel string `koanf:"log_level"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	MySQL struct {
		DSN             string        `koanf:"dsn"`
		MaxOpenConns    int           `koanf:"max_open_conns"`
		MaxIdleConns    int           `koanf:"max_idle_conns"`
		ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	} `koanf:"mysql"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
	} `koanf:"redis"`

	Cart struct {
		TTL time.Duration `koanf:"ttl"` // how long an idle cart blob survives
	} `koanf:"cart"`

	Checkout struct {
		GuardTTL time.Duration `koanf:"guard_ttl"` // in-flight flag expiry
	} `koanf:"checkout"`

	StatusCache struct {
		TTL time.Duration `koanf:"ttl"`
	} `koanf:"status_cache"`

	Rabbit struct {
		URL string `koanf:"url"`
	} `koanf:"rabbitmq"`

	Kafka struct {
		Brokers []string `koanf:"brokers"`
		Topic   string   `koanf:"topic"`
		GroupID string   `koanf:"group_id"`
	} `koanf:"kafka"`

	Security struct {
		JWTSecret string            `koanf:"jwt_secret"`
		Issuer    string            `koanf:"issuer"`
		Audience  string            `koanf:"audience"`
		TokenTTL  time.Duration     `koanf:"token_ttl"` // admin session window
		Admins    []AdminCredential `koanf:"admins"`
	} `koanf:"security"`

	Mail struct {
		Enabled        bool   `koanf:"enabled"`
		SendGridAPIKey string `koanf:"sendgrid_api_key"`
		From           string `koanf:"from"`
		OpsInbox       string `koanf:"ops_inbox"`
	} `koanf:"mail"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env override (dev/staging/prod). Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// 3) environment variables override (prefix ALLMART_, nested with __)
	// e.g. ALLMART_MYSQL__DSN, ALLMART_MAIL__SENDGRID_API_KEY
	if err := k.Load(env.Provider("ALLMART_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "ALLMART_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql.dsn required")
	}
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("security.jwt_secret required")
	}
	if c.Security.TokenTTL <= 0 {
		return fmt.Errorf("security.token_ttl required")
	}
	if c.Mail.Enabled && (c.Mail.SendGridAPIKey == "" || c.Mail.OpsInbox == "") {
		return fmt.Errorf("mail enabled but sendgrid_api_key/ops_inbox missing")
	}
	return nil
}
