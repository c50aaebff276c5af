package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dsevbo/MBP-BookingService/internal/api/handlers"
)

// TokenHeader заголовок с anti-forgery токеном
const TokenHeader = "X-Booking-Token"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// ActionToken вычисляет токен для действия: hex(HMAC-SHA256(secret, action)).
// Каждое мутирующее действие получает собственный токен, привязанный к имени
// действия; публичное бронирование использует отдельный секрет.
func ActionToken(secret, action string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(action))
	return hex.EncodeToString(mac.Sum(nil))
}

// RequireActionToken middleware, проверяющий токен действия
// в заголовке X-Booking-Token
func RequireActionToken(secret, action string, logger Logger) mux.MiddlewareFunc {
	expected := []byte(ActionToken(secret, action))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(TokenHeader))
			if !hmac.Equal(expected, got) {
				logger.Warn("%s %s - Token verification failed for action %q", r.Method, r.URL.Path, action)
				handlers.RespondForbidden(w, "Nonce verification failed")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
