package session

import (
	"context"
	"net/http"
	"time"

	"github.com/baivab22/ictforumFrontend/config"
	"github.com/baivab22/ictforumFrontend/internal/models"
)

// CookieName is the admin session cookie.
const CookieName = "admin_session"

// SetSessionCookie attaches the session cookie to the response.
func SetSessionCookie(w http.ResponseWriter, sessionUUID string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionUUID,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   config.AppConfig != nil && config.AppConfig.Server.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie removes the session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   config.AppConfig != nil && config.AppConfig.Server.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession stores the session in the request context.
func WithSession(ctx context.Context, sess *models.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// FromContext extracts the session from the request context, or nil when
// the request is unauthenticated.
func FromContext(ctx context.Context) *models.Session {
	sess, ok := ctx.Value(sessionContextKey).(*models.Session)
	if !ok {
		return nil
	}
	return sess
}
