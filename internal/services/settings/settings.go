// Package settings содержит логику бизнес-уровня для персональных
// настроек пользователя: произвольная карта ключ-значение,
// обновляемая поверхностным слиянием.
package settings

import (
	"context"
	"fmt"

	"github.com/ahmadqaf171-stack/login-backend/internal/models"
	"github.com/ahmadqaf171-stack/login-backend/internal/storage"
)

// SettingsService отвечает за чтение и обновление настроек пользователя.
type SettingsService struct {
	store *storage.Guard
}

// NewSettingsService создаёт новый экземпляр SettingsService.
func NewSettingsService(store *storage.Guard) *SettingsService {
	return &SettingsService{store: store}
}

// UserSettings — настройки пользователя вместе с профильными полями,
// которые отдаёт эндпоинт настроек.
type UserSettings struct {
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Role     string         `json:"role"`
	Avatar   string         `json:"avatar"`
	Settings map[string]any `json:"settings"`
}

// Get возвращает настройки пользователя. Если настройки никогда
// не задавались, отдаётся пустая карта.
func (s *SettingsService) Get(ctx context.Context, userID int) (*UserSettings, error) {
	const op = "services.settings.Get"

	var result UserSettings
	err := s.store.View(ctx, func(db *models.Database) error {
		user := db.FindUser(userID)
		if user == nil {
			return models.ErrUserNotFound
		}
		settings := user.Settings
		if settings == nil {
			settings = map[string]any{}
		}
		result = UserSettings{
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
			Avatar:   user.Avatar,
			Settings: settings,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// Update поверхностно сливает patch в существующие настройки:
// переданные ключи перезаписываются, остальные сохраняются.
// Возвращает итоговую карту настроек.
func (s *SettingsService) Update(ctx context.Context, userID int, patch map[string]any) (map[string]any, error) {
	const op = "services.settings.Update"

	var merged map[string]any
	err := s.store.Update(ctx, func(db *models.Database) error {
		user := db.FindUser(userID)
		if user == nil {
			return models.ErrUserNotFound
		}
		if user.Settings == nil {
			user.Settings = map[string]any{}
		}
		for k, v := range patch {
			user.Settings[k] = v
		}
		merged = user.Settings
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return merged, nil
}
