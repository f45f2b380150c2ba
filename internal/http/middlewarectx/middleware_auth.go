// Package middlewarectx содержит HTTP middleware приложения.
//
// JWTMiddleware проверяет наличие и валидность токена сессии в заголовке
// Authorization и в случае успеха добавляет в контекст идентификатор,
// имя и роль пользователя для дальнейшего использования в обработчиках.
//
// Отсутствующий токен даёт HTTP 401, присутствующий, но невалидный
// или просроченный — HTTP 403.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ahmadqaf171-stack/login-backend/internal/http/response"
	"github.com/ahmadqaf171-stack/login-backend/internal/lib/jwt"
	"github.com/ahmadqaf171-stack/login-backend/internal/lib/sl"
)

// Key — тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID — ключ для идентификатора пользователя в контексте
	UserID Key = "id"
	// User — ключ для имени пользователя в контексте
	User Key = "username"
	// Role — ключ для роли пользователя в контексте
	Role Key = "role"
)

// TokenParser описывает интерфейс проверки токена сессии.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет токен
// сессии в заголовке Authorization (форма "Bearer <token>").
//
// Если токен валиден, добавляет идентификатор, имя и роль пользователя
// в контекст запроса.
func JWTMiddleware(jwtMaker TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("غير مصرح"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenStr == "" {
				log.Error("empty bearer token")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("غير مصرح"))
				return
			}

			claims, err := jwtMaker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("توكن غير صالح"))
				return
			}
			ctx := context.WithValue(r.Context(), UserID, claims.ID)
			ctx = context.WithValue(ctx, User, claims.Username)
			ctx = context.WithValue(ctx, Role, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
