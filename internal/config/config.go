package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"os"
	"time"
)

const defaultConfigPath = "./config/local.yaml"

const (
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

type Config struct {
	Env           string `yaml:"env" env:"AZ_ENV" env-default:"prod"`
	StorageDriver string `yaml:"storage_driver" env:"AZ_STORAGE_DRIVER" env-default:"mysql"`
	ErrorLog      string `yaml:"error_log" env:"AZ_ERROR_LOG" env-default:"errors.log"`
	HTTPServer    `yaml:"http_server"`
	DB            DB   `yaml:"db"`
	CORS          CORS `yaml:"cors"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"AZ_HTTP_ADDRESS" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type DB struct {
	User      string `yaml:"user" env:"AZ_DB_USER"`
	Password  string `yaml:"password" env:"AZ_DB_PASSWORD"`
	Host      string `yaml:"host" env:"AZ_DB_HOST" env-default:"localhost"`
	Port      int    `yaml:"port" env:"AZ_DB_PORT" env-default:"3306"`
	Name      string `yaml:"name" env:"AZ_DB_NAME"`
	ParseTime bool   `yaml:"parse_time" env-default:"true"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"AZ_CORS_ALLOWED_ORIGINS" env-separator:","`
}

// Load читает конфиг из файла, переменные окружения перекрывают значения из yaml.
func Load(path string) (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	switch cfg.StorageDriver {
	case DriverMySQL:
		if cfg.DB.User == "" || cfg.DB.Name == "" {
			return nil, fmt.Errorf("config %s: db.user and db.name are required for mysql driver", path)
		}
	case DriverMemory:
		// memory не переживает рестарт и не умеет загружать packing list, только для dev и тестов
		if cfg.Env == "prod" {
			return nil, fmt.Errorf("config %s: storage_driver %q is not allowed in prod", path, cfg.StorageDriver)
		}
	default:
		return nil, fmt.Errorf("config %s: unknown storage_driver %q", path, cfg.StorageDriver)
	}

	return &cfg, nil
}

func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}
