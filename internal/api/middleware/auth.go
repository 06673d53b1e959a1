package middleware

import (
	"net/http"
	"strconv"

	"github.com/m04kA/HMS-BookingService/internal/api/handlers"
)

// UserIDHeader заголовок с ID сотрудника, проставляется gateway'ем
const UserIDHeader = "X-User-ID"

// Auth проверяет наличие корректного X-User-ID в запросе
// Аутентификация выполняется выше по стеку; здесь только гейт
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(UserIDHeader)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		if _, err := strconv.ParseInt(userIDStr, 10, 64); err != nil {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		next.ServeHTTP(w, r)
	})
}
