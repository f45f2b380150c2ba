// Package memory реализует подложку хранилища в памяти процесса.
// Состояние живёт только до перезапуска; контракт Load/Save тот же,
// что и у файловой подложки.
package memory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ahmadqaf171-stack/login-backend/internal/models"
	"github.com/ahmadqaf171-stack/login-backend/internal/storage"
)

// Storage держит сериализованный документ базы в памяти.
type Storage struct {
	data []byte
}

// New создаёт хранилище, заполненное документом первого запуска.
func New() (*Storage, error) {
	const op = "storage.memory.New"

	seed, err := storage.Seed()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s := &Storage{}
	if err := s.Save(context.Background(), seed); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// Load возвращает копию документа базы. Документ хранится в
// сериализованном виде, поэтому правки загруженной копии не видны
// другим читателям до явного Save.
func (s *Storage) Load(_ context.Context) (*models.Database, error) {
	const op = "storage.memory.Load"

	var db models.Database
	if err := json.Unmarshal(s.data, &db); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &db, nil
}

// Save замещает хранимый документ целиком.
func (s *Storage) Save(_ context.Context, db *models.Database) error {
	const op = "storage.memory.Save"

	data, err := json.Marshal(db)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.data = data
	return nil
}
