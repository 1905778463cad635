package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func overrideRequest(t *testing.T, form string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin/posts/1", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestMethodOverride(t *testing.T) {
	cases := []struct {
		name string
		form string
		want string
	}{
		{"put", "_method=PUT&title_en=x", http.MethodPut},
		{"delete", "_method=DELETE&confirm=yes", http.MethodDelete},
		{"no override", "title_en=x", http.MethodPost},
		{"disallowed method", "_method=PATCH", http.MethodPost},
	}
	for _, c := range cases {
		var got string
		h := MethodOverrideMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Method
		}))
		h.ServeHTTP(httptest.NewRecorder(), overrideRequest(t, c.form))
		if got != c.want {
			t.Fatalf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

// GET requests are never overridden, whatever the query says.
func TestMethodOverrideIgnoresGet(t *testing.T) {
	var got string
	h := MethodOverrideMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Method
	}))
	req := httptest.NewRequest(http.MethodGet, "/admin/posts/1?_method=DELETE", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got != http.MethodGet {
		t.Fatalf("got %s, want GET", got)
	}
}
