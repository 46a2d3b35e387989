package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"myblog/internal/apperrors"
	handlers "myblog/internal/handler"
	"myblog/internal/service"
)

type Middleware func(http.Handler) http.Handler

// Эндпоинты, доступные без токена: вход, регистрация и все переходы
// по ссылкам из писем.
var publicPaths = []string{
	"/",
	"/health",
	"/tables",
	"/api/auth/login/",
	"/api/auth/signup/",
}

var publicPrefixes = []string{
	"/api/auth/activate-account/",
	"/api/auth/users/forget-password/",
	"/api/auth/reset-password/",
	"/api/auth/update-email/verify-token/",
}

func isPublic(r *http.Request) bool {
	path := r.URL.Path
	for _, p := range publicPaths {
		if path == p || path == strings.TrimSuffix(p, "/") {
			return true
		}
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	// лента всех постов открыта для чтения
	if r.Method == http.MethodGet && (path == "/api/posts/" || path == "/api/posts") {
		return true
	}
	return false
}

// AuthMiddleware verifies the JWT token and adds user data to the context
func AuthMiddleware(auth service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skipping public endpoints
			if isPublic(r) {
				next.ServeHTTP(w, r)
				return
			}

			// Extracting the token from the header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				handlers.WriteError(w, apperrors.NotAuthenticated("Not authenticated. Provide a bearer token."))
				return
			}

			// Checking the "Bearer <token>" format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				handlers.WriteError(w, apperrors.NotAuthenticated("Invalid authorization header. Expected 'Bearer <token>'."))
				return
			}

			claims, err := auth.DecodeToken(parts[1])
			if err != nil {
				handlers.WriteError(w, err)
				return
			}

			// Adding user data to the context
			ctx := r.Context()
			ctx = context.WithValue(ctx, "userID", claims.UserID)
			ctx = context.WithValue(ctx, "isAdmin", claims.IsAdmin)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s\n", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
