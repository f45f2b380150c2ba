package report

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ahmadqaf171-stack/login-backend/internal/models"
	"github.com/ahmadqaf171-stack/login-backend/internal/services/statistics"
)

// MockService реализует интерфейс report.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Report(ctx context.Context) (*statistics.Report, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*statistics.Report), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReportHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sample := &statistics.Report{
		TotalUsers:     2,
		ActiveUsers:    2,
		CompletedTasks: 4200,
		PendingTasks:   150,
		UsersByRole: map[string]int{
			models.RoleAdmin:      1,
			models.RoleSupervisor: 0,
			models.RoleUser:       1,
		},
		ActivityData: []int{130, 140, 150, 160, 170, 180, 190},
	}

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная сводка",
			setupMock: func(m *MockService) {
				m.On("Report", mock.Anything).Return(sample, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"totalUsers":2`,
		},
		{
			name: "ошибка сервиса",
			setupMock: func(m *MockService) {
				m.On("Report", mock.Anything).Return(nil, errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"خطأ داخلي في الخادم"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/statistics", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
