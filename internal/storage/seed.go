package storage

import (
	"fmt"
	"time"

	"github.com/ahmadqaf171-stack/login-backend/internal/lib/password"
	"github.com/ahmadqaf171-stack/login-backend/internal/models"
)

// Seed возвращает документ базы первого запуска: администратор и обычный
// пользователь с фиксированными паролями, пустой список задач и нулевой
// снимок статистики.
func Seed() (*models.Database, error) {
	const op = "storage.Seed"

	adminHash, err := password.GetHash("admin123")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	userHash, err := password.GetHash("user123")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now()
	return &models.Database{
		Users: []models.User{
			{
				ID:        1,
				Username:  "admin",
				Email:     "admin@example.com",
				Password:  adminHash,
				Role:      models.RoleAdmin,
				Avatar:    "👨‍💼",
				Status:    models.StatusActive,
				CreatedAt: now,
			},
			{
				ID:        2,
				Username:  "user",
				Email:     "user@example.com",
				Password:  userHash,
				Role:      models.RoleUser,
				Avatar:    "👨‍💻",
				Status:    models.StatusActive,
				CreatedAt: now,
			},
		},
		Tasks: []models.Task{},
	}, nil
}
