// Package models содержит доменную модель пользователя админ-панели,
// включающую учётные данные, хэш пароля, профильные поля и произвольные
// настройки. Структуры используются в бизнес-логике и при работе с хранилищем.
package models

import "time"

// Роли пользователей, отслеживаемые системой. Role — свободная строка,
// но статистика считает только эти три корзины.
const (
	RoleAdmin      = "مدير النظام"
	RoleSupervisor = "مشرف"
	RoleUser       = "مستخدم"
)

// Значения по умолчанию для новых пользователей.
const (
	DefaultAvatar = "👤"
	StatusActive  = "active"
)

// User представляет пользователя системы со всеми полями,
// включая bcrypt-хэш пароля. Наружу отдаётся только PublicUser.
type User struct {
	ID        int            `json:"id"`
	Username  string         `json:"username"` // Имя пользователя (уникальное)
	Email     string         `json:"email"`    // Электронная почта (уникальная)
	Password  string         `json:"password"` // bcrypt-хэш пароля
	Role      string         `json:"role"`
	Avatar    string         `json:"avatar"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt *time.Time     `json:"updatedAt,omitempty"`
	Settings  map[string]any `json:"settings,omitempty"`
}

// PublicUser — проекция пользователя без поля password.
// Используется во всех ответах API, где фигурирует пользователь.
type PublicUser struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Avatar    string     `json:"avatar"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Public возвращает проекцию пользователя без пароля.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.Avatar,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
