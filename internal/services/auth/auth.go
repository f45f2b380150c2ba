// Package auth содержит логику бизнес-уровня для регистрации и входа пользователей.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmadqaf171-stack/login-backend/internal/lib/jwt"
	"github.com/ahmadqaf171-stack/login-backend/internal/lib/password"
	"github.com/ahmadqaf171-stack/login-backend/internal/models"
	"github.com/ahmadqaf171-stack/login-backend/internal/storage"
)

// AuthService отвечает за регистрацию и авторизацию пользователей.
type AuthService struct {
	store    *storage.Guard
	jwtMaker jwt.Maker
}

// NewAuthService создаёт новый экземпляр AuthService.
func NewAuthService(store *storage.Guard, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		store:    store,
		jwtMaker: jwtMaker,
	}
}

// Login проверяет пароль пользователя и выдаёт подписанный токен сессии
// вместе с проекцией пользователя без пароля.
//
// Неизвестное имя и неверный пароль дают одну и ту же ошибку
// ErrInvalidCredentials, чтобы ответ не раскрывал, какое поле неверно.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (string, *models.PublicUser, error) {
	const op = "services.auth.Login"

	var user models.User
	err := s.store.View(ctx, func(db *models.Database) error {
		found := db.FindUserByUsername(username)
		if found == nil {
			return models.ErrInvalidCredentials
		}
		user = *found
		return nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(user.Password, rawPassword); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	public := user.Public()
	return token, &public, nil
}

// Register создаёт нового пользователя с хэшированием пароля и значениями
// по умолчанию для роли, аватара и статуса. Токен при регистрации не
// выдаётся — пользователь входит отдельным запросом.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword, role, avatar string) (*models.PublicUser, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if role == "" {
		role = models.RoleUser
	}
	if avatar == "" {
		avatar = models.DefaultAvatar
	}

	var public models.PublicUser
	err = s.store.Update(ctx, func(db *models.Database) error {
		if db.FindUserByUsername(username) != nil {
			return models.ErrUsernameTaken
		}
		if db.FindUserByEmail(email) != nil {
			return models.ErrEmailTaken
		}
		user := models.User{
			ID:        db.NextUserID(),
			Username:  username,
			Email:     email,
			Password:  hashed,
			Role:      role,
			Avatar:    avatar,
			Status:    models.StatusActive,
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
