package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

const (
	// HeaderClientID заголовок с ID аутентифицированного клиента
	HeaderClientID = "X-Client-ID"

	msgUnauthorized = "требуется заголовок X-Client-ID с положительным ID клиента"
)

type clientIDKey struct{}

// Auth проверяет X-Client-ID и кладет ID клиента в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID, err := strconv.ParseInt(r.Header.Get(HeaderClientID), 10, 64)
		if err != nil || clientID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, domain.CodeUnauthorized, msgUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClientID(r.Context(), clientID)))
	})
}

// WithClientID возвращает контекст с ID клиента
func WithClientID(ctx context.Context, clientID int64) context.Context {
	return context.WithValue(ctx, clientIDKey{}, clientID)
}

// ClientIDFromContext достает ID клиента, положенный Auth
func ClientIDFromContext(ctx context.Context) (int64, bool) {
	clientID, ok := ctx.Value(clientIDKey{}).(int64)
	return clientID, ok
}
