package create

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ahmadqaf171-stack/login-backend/internal/models"
	"github.com/ahmadqaf171-stack/login-backend/internal/services/users"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, entry users.CreateEntry) (*models.PublicUser, error) {
	args := m.Called(ctx, entry)
	if res := args.Get(0); res != nil {
		return res.(*models.PublicUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	carol := &models.PublicUser{
		ID:        3,
		Username:  "carol",
		Email:     "carol@x.com",
		Role:      models.RoleUser,
		Avatar:    models.DefaultAvatar,
		Status:    models.StatusActive,
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное добавление без пароля",
			body: `{"username":"carol","email":"carol@x.com"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, users.CreateEntry{
					Username: "carol",
					Email:    "carol@x.com",
				}).Return(carol, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"تم إضافة المستخدم بنجاح"`,
		},
		{
			name: "успешное добавление с ролью",
			body: `{"username":"carol","email":"carol@x.com","password":"secret123","role":"مشرف"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, users.CreateEntry{
					Username: "carol",
					Email:    "carol@x.com",
					Password: "secret123",
					Role:     models.RoleSupervisor,
				}).Return(carol, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"username":"carol"`,
		},
		{
			name:           "отсутствует почта",
			body:           `{"username":"carol"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"الاسم والبريد مطلوبان"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{not json`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"الاسم والبريد مطلوبان"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), `"password"`)

			mockService.AssertExpectations(t)
		})
	}
}
