// Package users содержит логику бизнес-уровня CRUD-операций
// над коллекцией пользователей.
package users

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmadqaf171-stack/login-backend/internal/lib/password"
	"github.com/ahmadqaf171-stack/login-backend/internal/models"
	"github.com/ahmadqaf171-stack/login-backend/internal/storage"
)

// UserService отвечает за операции справочника пользователей.
type UserService struct {
	store *storage.Guard
}

// NewUserService создаёт новый экземпляр UserService.
func NewUserService(store *storage.Guard) *UserService {
	return &UserService{store: store}
}

// CreateEntry — поля административного создания пользователя.
type CreateEntry struct {
	Username string
	Email    string
	Password string
	Role     string
	Avatar   string
	Status   string
}

// UpdateEntry — частичное обновление пользователя.
// Пустая строка означает, что поле не было передано и не меняется.
type UpdateEntry struct {
	Username string
	Email    string
	Role     string
	Avatar   string
	Status   string
}

// List возвращает всех пользователей в порядке хранения, без паролей.
func (s *UserService) List(ctx context.Context) ([]models.PublicUser, error) {
	const op = "services.users.List"

	var result []models.PublicUser
	err := s.store.View(ctx, func(db *models.Database) error {
		result = make([]models.PublicUser, 0, len(db.Users))
		for _, u := range db.Users {
			result = append(result, u.Public())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// Get возвращает пользователя по идентификатору, без пароля.
func (s *UserService) Get(ctx context.Context, id int) (*models.PublicUser, error) {
	const op = "services.users.Get"

	var public models.PublicUser
	err := s.store.View(ctx, func(db *models.Database) error {
		user := db.FindUser(id)
		if user == nil {
			return models.ErrUserNotFound
		}
		public = user.Public()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &public, nil
}

// Create добавляет пользователя административно. Если пароль не передан,
// назначается хэш пароля по умолчанию.
func (s *UserService) Create(ctx context.Context, entry CreateEntry) (*models.PublicUser, error) {
	const op = "services.users.Create"

	raw := entry.Password
	if raw == "" {
		raw = password.DefaultPassword
	}
	hashed, err := password.GetHash(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if entry.Role == "" {
		entry.Role = models.RoleUser
	}
	if entry.Avatar == "" {
		entry.Avatar = models.DefaultAvatar
	}
	if entry.Status == "" {
		entry.Status = models.StatusActive
	}

	var public models.PublicUser
	err = s.store.Update(ctx, func(db *models.Database) error {
		user := models.User{
			ID:        db.NextUserID(),
			Username:  entry.Username,
			Email:     entry.Email,
			Password:  hashed,
			Role:      entry.Role,
			Avatar:    entry.Avatar,
			Status:    entry.Status,
			CreatedAt: time.Now(),
		}
		db.Users = append(db.Users, user)
		public = user.Public()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &public, nil
}

// Update сливает переданные скалярные поля в запись пользователя,
// проставляет updatedAt и возвращает обновлённую проекцию без пароля.
func (s *UserService) Update(ctx context.Context, id int, entry UpdateEntry) (*models.PublicUser, error) {
	const op = "services.users.Update"

	var public models.PublicUser
	err := s.store.Update(ctx, func(db *models.Database) error {
		user := db.FindUser(id)
		if user == nil {
			return models.ErrUserNotFound
		}
		if entry.Username != "" {
			user.Username = entry.Username
		}
		if entry.Email != "" {
			user.Email = entry.Email
		}
		if entry.Role != "" {
			user.Role = entry.Role
		}
		if entry.Avatar != "" {
			user.Avatar = entry.Avatar
		}
		if entry.Status != "" {
			user.Status = entry.Status
		}
		now := time.Now()
		user.UpdatedAt = &now
		public = user.Public()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &public, nil
}

// Delete удаляет пользователя по идентификатору.
func (s *UserService) Delete(ctx context.Context, id int) error {
	const op = "services.users.Delete"

	err := s.store.Update(ctx, func(db *models.Database) error {
		for i := range db.Users {
			if db.Users[i].ID == id {
				db.Users = append(db.Users[:i], db.Users[i+1:]...)
				return nil
			}
		}
		return models.ErrUserNotFound
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
