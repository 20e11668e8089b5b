package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
)

// UserIDHeader заголовок, в котором шлюз передает ID пользователя
const UserIDHeader = "X-User-ID"

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный ID пользователя"
	msgAdminOnly     = "доступ только для администратора"
)

type contextKey string

const (
	userIDKey  contextKey = "userID"
	isAdminKey contextKey = "isAdmin"
)

// Auth проверяет X-User-ID и кладет пользователя в контекст.
// Пользователи из adminIDs получают признак администратора.
func Auth(adminIDs []uuid.UUID) func(http.Handler) http.Handler {
	admins := make(map[uuid.UUID]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
			if raw == "" {
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			userID, err := uuid.Parse(raw)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidUserID)
				return
			}

			_, isAdmin := admins[userID]

			ctx := WithUser(r.Context(), userID, isAdmin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth как Auth, но запросы без X-User-ID пропускаются анонимно.
// Некорректный заголовок по-прежнему отклоняется.
func OptionalAuth(adminIDs []uuid.UUID) func(http.Handler) http.Handler {
	auth := Auth(adminIDs)
	return func(next http.Handler) http.Handler {
		withUser := auth(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.TrimSpace(r.Header.Get(UserIDHeader)) == "" {
				next.ServeHTTP(w, r)
				return
			}
			withUser.ServeHTTP(w, r)
		})
	}
}

// AdminOnly пропускает только администраторов. Должен стоять после Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserID(r.Context()); !ok {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		if !IsAdmin(r.Context()) {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser кладет пользователя в контекст
func WithUser(ctx context.Context, userID uuid.UUID, isAdmin bool) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, isAdminKey, isAdmin)
}

// GetUserID достает ID пользователя из контекста
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

// IsAdmin сообщает, является ли пользователь администратором
func IsAdmin(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(isAdminKey).(bool)
	return isAdmin
}
