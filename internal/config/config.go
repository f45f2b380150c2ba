// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — общая структура для хранения настроек.
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer      `yaml:"http_server"`
	JWTToken        `yaml:"jwttoken"`
	Storage         `yaml:"storage"`
	RedisConnection `yaml:"redis_connection"`
}

// HTTPServer — структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"ADDRESS_HTTP" env-default:":3000"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// JWTToken — структура для работы с jwt-токеном. Ключ по умолчанию
// небезопасен и предназначен только для локальной разработки.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"SECRET_KEY" env-default:"your-secret-key-change-in-production"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
}

// Storage выбирает подложку хранилища: "file", "memory" или "redis".
type Storage struct {
	Kind     string `yaml:"kind" env:"STORAGE_KIND" env-default:"file"`
	FilePath string `yaml:"file_path" env:"STORAGE_FILE_PATH" env-default:"database.json"`
	RedisKey string `yaml:"redis_key" env:"STORAGE_REDIS_KEY" env-default:"login-backend:database"`
}

// RedisConnection — структура для настройки подключения к redis.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"ADDRESS_REDIS" env-default:"localhost:6379"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"5s"`
}

// MustLoad загружает конфиг из файла, указанного в CONFIG_PATH.
// Если переменная не задана, конфиг собирается из переменных окружения
// и значений по умолчанию.
func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}
		return &cfg
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
