// Package statistics содержит формирование сводки для панели управления.
//
// Счётчики пользователей считаются по живому состоянию хранилища.
// Показатели задач и недельной активности — декоративные случайные числа,
// они пересоздаются при каждом вызове и нигде не сохраняются.
package statistics

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ahmadqaf171-stack/login-backend/internal/models"
	"github.com/ahmadqaf171-stack/login-backend/internal/storage"
)

// StatisticsService отвечает за формирование сводки.
type StatisticsService struct {
	store *storage.Guard
}

// NewStatisticsService создаёт новый экземпляр StatisticsService.
func NewStatisticsService(store *storage.Guard) *StatisticsService {
	return &StatisticsService{store: store}
}

// Report — сводка для панели управления.
type Report struct {
	TotalUsers     int            `json:"totalUsers"`
	ActiveUsers    int            `json:"activeUsers"`
	CompletedTasks int            `json:"completedTasks"`
	PendingTasks   int            `json:"pendingTasks"`
	UsersByRole    map[string]int `json:"usersByRole"`
	ActivityData   []int          `json:"activityData"`
}

// Report собирает сводку по текущему состоянию хранилища.
func (s *StatisticsService) Report(ctx context.Context) (*Report, error) {
	const op = "services.statistics.Report"

	report := &Report{
		CompletedTasks: rand.Intn(5000) + 3000,
		PendingTasks:   rand.Intn(500) + 100,
		UsersByRole: map[string]int{
			models.RoleAdmin:      0,
			models.RoleSupervisor: 0,
			models.RoleUser:       0,
		},
		ActivityData: make([]int, 7),
	}
	for i := range report.ActivityData {
		report.ActivityData[i] = rand.Intn(100) + 120
	}

	err := s.store.View(ctx, func(db *models.Database) error {
		report.TotalUsers = len(db.Users)
		for _, u := range db.Users {
			if u.Status == models.StatusActive {
				report.ActiveUsers++
			}
			if _, tracked := report.UsersByRole[u.Role]; tracked {
				report.UsersByRole[u.Role]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return report, nil
}
