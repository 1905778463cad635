package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/baivab22/ictforumFrontend/internal/session"
)

// SessionMiddleware resolves the admin session cookie and attaches the
// session to the request context. Requests without a valid session simply
// continue unauthenticated.
func SessionMiddleware(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := store.Get(cookie.Value)
			if err != nil {
				// Invalid or expired session: drop the cookie and continue
				// without a session in the context.
				session.ClearSessionCookie(w)
				if !errors.Is(err, session.ErrNotFound) {
					log.Printf("Session lookup failed for UUID %s: %v", cookie.Value, err)
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
}

// RequireAuthMiddleware rejects requests without an authenticated session:
// AJAX callers get a JSON 401, everyone else is sent to the admin login view.
func RequireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session.FromContext(r.Context()) == nil {
			accept := r.Header.Get("Accept")
			isAJAX := r.Header.Get("X-Requested-With") == "XMLHttpRequest" ||
				strings.Contains(accept, "application/json")

			if isAJAX {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}
			http.Redirect(w, r, "/admin", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
