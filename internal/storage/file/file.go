// Package file реализует файловую подложку хранилища: весь документ базы
// лежит в одном JSON-файле и перечитывается при каждом обращении.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ahmadqaf171-stack/login-backend/internal/models"
	"github.com/ahmadqaf171-stack/login-backend/internal/storage"
)

// Storage хранит путь к JSON-файлу базы.
type Storage struct {
	path string
}

// New создаёт файловое хранилище. Если файла ещё нет, записывает
// документ первого запуска с двумя пользователями по умолчанию.
func New(path string) (*Storage, error) {
	const op = "storage.file.New"

	s := &Storage{path: path}
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		seed, err := storage.Seed()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := s.Save(context.Background(), seed); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return s, nil
}

// Load читает и разбирает документ базы из файла.
func (s *Storage) Load(_ context.Context) (*models.Database, error) {
	const op = "storage.file.Load"

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var db models.Database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &db, nil
}

// Save сериализует документ базы и записывает его в файл целиком.
func (s *Storage) Save(_ context.Context, db *models.Database) error {
	const op = "storage.file.Save"

	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
