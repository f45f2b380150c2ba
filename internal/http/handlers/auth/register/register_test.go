package register

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
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, username, email, password, role, avatar string) (*models.PublicUser, error) {
	args := m.Called(ctx, username, email, password, role, avatar)
	if res := args.Get(0); res != nil {
		return res.(*models.PublicUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
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
			name: "успешная регистрация",
			body: `{"username":"carol","email":"carol@x.com","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "carol", "carol@x.com", "secret123", "", "").Return(carol, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"تم إنشاء الحساب بنجاح"`,
		},
		{
			name:           "отсутствует email",
			body:           `{"username":"carol","password":"secret123"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"جميع الحقول مطلوبة"`,
		},
		{
			name: "имя занято",
			body: `{"username":"carol","email":"other@x.com","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "carol", "other@x.com", "secret123", "", "").Return(nil, models.ErrUsernameTaken)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"اسم المستخدم موجود بالفعل"`,
		},
		{
			name: "почта занята",
			body: `{"username":"dave","email":"carol@x.com","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "dave", "carol@x.com", "secret123", "", "").Return(nil, models.ErrEmailTaken)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"البريد الإلكتروني موجود بالفعل"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), `"password"`)

			mockService.AssertExpectations(t)
		})
	}
}
