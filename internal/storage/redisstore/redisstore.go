// Package redisstore реализует подложку хранилища поверх redis:
// весь документ базы сериализуется в JSON и лежит под одним ключом.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ahmadqaf171-stack/login-backend/internal/config"
	"github.com/ahmadqaf171-stack/login-backend/internal/models"
	"github.com/ahmadqaf171-stack/login-backend/internal/storage"
)

// Storage хранит клиент redis и ключ документа базы.
type Storage struct {
	db  *redis.Client
	key string
}

// New подключается к redis и, если ключ ещё не существует, записывает
// документ первого запуска.
func New(ctx context.Context, cfg config.RedisConnection, key string) (*Storage, error) {
	const op = "storage.redisstore.New"

	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})
	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Storage{db: db, key: key}
	exists, err := db.Exists(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists == 0 {
		seed, err := storage.Seed()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := s.Save(ctx, seed); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return s, nil
}

// Load читает и разбирает документ базы из redis.
func (s *Storage) Load(ctx context.Context) (*models.Database, error) {
	const op = "storage.redisstore.Load"

	val, err := s.db.Get(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var db models.Database
	if err := json.Unmarshal([]byte(val), &db); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &db, nil
}

// Save сериализует документ базы и записывает его под ключ без срока жизни.
func (s *Storage) Save(ctx context.Context, db *models.Database) error {
	const op = "storage.redisstore.Save"

	data, err := json.Marshal(db)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.db.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает подключение к redis.
func (s *Storage) Close() error {
	return s.db.Close()
}
