package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"ulascansenturk/forecast-api/internal/apperrors"
)

const requestIDHeader = "X-Request-ID"

type Middleware func(http.Handler) http.Handler

// Chain wraps h so that the first middleware is the outermost one.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Credentials is the single admin account. When PasswordHash is set it is a
// bcrypt hash and Password is ignored.
type Credentials struct {
	User         string
	Password     string
	PasswordHash string
}

func (c Credentials) verify(user, password string) bool {
	if c.User == "" {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(c.User)) == 1

	var passwordOK bool
	if c.PasswordHash != "" {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	}

	return userOK && passwordOK
}

func BasicAuth(creds Credentials, publicPrefixes ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range publicPrefixes {
				if strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			user, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="forecast-api"`)
				respondWithAppError(w, r, apperrors.Unauthorized("Missing Authorization header"))
				return
			}

			if !creds.verify(user, password) {
				hlog.FromRequest(r).Warn().Str("user", user).Msg("rejected credentials")
				w.Header().Set("WWW-Authenticate", `Basic realm="forecast-api"`)
				respondWithAppError(w, r, apperrors.Unauthorized("Invalid credentials"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit rejects requests once the shared limiter is exhausted. A nil
// limiter disables the check.
func RateLimit(limiter *rate.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				respondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogging attaches a request scoped logger carrying a request id and
// writes one access log line per request.
func RequestLogging(logger zerolog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		h := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("request handled")
		})(next)

		return hlog.NewHandler(logger)(requestID(h))
	}
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", id)
		})

		next.ServeHTTP(w, r)
	})
}
