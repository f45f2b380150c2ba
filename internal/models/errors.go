package models

import "errors"

// Ошибки бизнес-уровня. Обработчики сопоставляют их с HTTP-статусами.
var (
	// ErrUserNotFound — пользователь с данным идентификатором отсутствует.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken — имя пользователя уже занято.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken — email уже занят.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials — неверное имя пользователя или пароль.
	// Одна ошибка на оба случая, чтобы не раскрывать, какое поле неверно.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
