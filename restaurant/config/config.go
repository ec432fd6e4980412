package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/friendly-eats/pkg/auth0"
	"github.com/Astemirdum/friendly-eats/pkg/kafka"
	"github.com/Astemirdum/friendly-eats/pkg/logger"
	"github.com/Astemirdum/friendly-eats/pkg/openid"
	"github.com/Astemirdum/friendly-eats/pkg/postgres"
	"github.com/Astemirdum/friendly-eats/pkg/redis"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"15s"`
	WriteTimeout time.Duration
}

type Auth struct {
	OIDC  openid.Config
	Token auth0.Config
	// signs the short-lived oauth state cookie
	SessionSecret string `envconfig:"SESSION_SECRET"`
	CookieSecure  bool   `envconfig:"COOKIE_SECURE"`
}

const minSessionSecret = 32

// Validate requires a real session secret once sign-in is enabled.
func (a Auth) Validate() error {
	if !a.OIDC.Enabled() {
		return nil
	}
	if len(a.SessionSecret) < minSessionSecret {
		return errors.Errorf("SESSION_SECRET must be at least %d bytes when sign-in is enabled", minSessionSecret)
	}
	return nil
}

type Storage struct {
	Driver    string `envconfig:"STORAGE_DRIVER" default:"local"`
	Bucket    string `envconfig:"STORAGE_BUCKET"`
	Dir       string `envconfig:"STORAGE_DIR" default:"./data/uploads"`
	PublicURL string `envconfig:"STORAGE_PUBLIC_URL" default:"/uploads"`
}

type Summary struct {
	GeminiAPIKey string        `envconfig:"GEMINI_API_KEY" json:"-"`
	Model        string        `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	Timeout      time.Duration `envconfig:"SUMMARY_TIMEOUT" default:"20s"`
	CacheTTL     time.Duration `envconfig:"SUMMARY_CACHE_TTL" default:"24h"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Database postgres.DB  `yaml:"db"`
	Log      logger.Log   `yaml:"log"`
	Auth     Auth         `yaml:"auth"`
	Storage  Storage      `yaml:"storage"`
	Summary  Summary      `yaml:"summary"`
	Redis    redis.Config `yaml:"redis"`
	Kafka    kafka.Config `yaml:"kafka"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	redacted := *cfg
	redacted.Database.Password = "***"
	redacted.Auth.OIDC.ClientSecret = "***"
	redacted.Auth.SessionSecret = "***"
	redacted.Redis.Password = "***"
	jscfg, _ := json.MarshalIndent(redacted, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
