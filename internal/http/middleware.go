package http

import (
	"context"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/princesinghgemini-dotcom/veto/internal/auth"
	"github.com/princesinghgemini-dotcom/veto/internal/http/ban"
	rl "github.com/princesinghgemini-dotcom/veto/internal/http/rate_limiter"
	"github.com/princesinghgemini-dotcom/veto/internal/observability/logger"
)

type contextKey string

const (
	userIDKey   = contextKey("user_id")
	usernameKey = contextKey("username")
	roleKey     = contextKey("role")
)

// AuthMiddleware rejects requests without a valid bearer token and stashes
// the token identity in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		if sub, ok := claims["sub"].(string); ok {
			ctx = context.WithValue(ctx, userIDKey, sub)
		}
		if username, ok := claims["username"].(string); ok {
			ctx = context.WithValue(ctx, usernameKey, username)
		}
		if role, ok := claims["role"].(string); ok {
			ctx = context.WithValue(ctx, roleKey, role)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a route group behind the admin role. Runs after
// AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetRole(r) != "admin" {
			http.Error(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware applies the per-IP limiter and records a strike on
// every rejected request.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.GetVisitor(ip).Allow() {
			strikes := ban.RecordStrike(ip, r.URL.Path)
			logger.L().Warn("rate limit exceeded",
				zap.String("ip", ip),
				zap.String("route", r.URL.Path),
				zap.Int("strikes", strikes))
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID returns the authenticated user id, or "" for anonymous requests.
func GetUserID(r *http.Request) string {
	if val, ok := r.Context().Value(userIDKey).(string); ok {
		return val
	}
	return ""
}

// GetRole returns the authenticated role, or "" for anonymous requests.
func GetRole(r *http.Request) string {
	if val, ok := r.Context().Value(roleKey).(string); ok {
		return val
	}
	return ""
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
