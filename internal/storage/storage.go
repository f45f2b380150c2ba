// Package storage определяет контракт хранилища документа базы
// и обёртку Guard, сериализующую циклы «прочитал-изменил-записал».
//
// Все подложки (файл, память, redis) хранят один JSON-документ целиком
// и перечитывают его при каждом обращении; кэширования нет.
package storage

import (
	"context"
	"sync"

	"github.com/ahmadqaf171-stack/login-backend/internal/models"
)

// Store — контракт подложки хранилища: загрузка и сохранение
// всего документа базы.
type Store interface {
	Load(ctx context.Context) (*models.Database, error)
	Save(ctx context.Context, db *models.Database) error
}

// Guard оборачивает Store мьютексом, делая цикл load-modify-save
// атомарным внутри процесса. Без него два одновременных писателя
// теряют обновления друг друга (побеждает последний Save).
type Guard struct {
	mu    sync.Mutex
	store Store
}

// NewGuard создаёт Guard поверх переданной подложки.
func NewGuard(store Store) *Guard {
	return &Guard{store: store}
}

// View загружает свежий документ и передаёт его fn только для чтения.
func (g *Guard) View(ctx context.Context, fn func(db *models.Database) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	db, err := g.store.Load(ctx)
	if err != nil {
		return err
	}
	return fn(db)
}

// Update загружает документ, применяет fn и сохраняет результат.
// Если fn возвращает ошибку, документ не сохраняется.
func (g *Guard) Update(ctx context.Context, fn func(db *models.Database) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	db, err := g.store.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(db); err != nil {
		return err
	}
	return g.store.Save(ctx, db)
}
