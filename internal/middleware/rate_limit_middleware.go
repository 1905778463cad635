package middleware

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	maxRequests = 10          // max attempts per window
	window      = time.Minute // window before the counter resets
)

// clientState tracks the limiter state for one client IP.
type clientState struct {
	lastRequest  time.Time
	requestCount int
	mu           sync.Mutex
}

var (
	clients = make(map[string]*clientState)
	mu      sync.Mutex
	once    sync.Once
)

// RateLimitMiddleware limits requests per client IP. It guards the admin
// login endpoint against credential guessing.
func RateLimitMiddleware(next http.Handler) http.Handler {
	once.Do(func() {
		go cleanupClientStates()
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			log.Printf("Error splitting host port: %v", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		mu.Lock()
		state, exists := clients[ip]
		if !exists {
			state = &clientState{}
			clients[ip] = state
		}
		mu.Unlock()

		state.mu.Lock()
		defer state.mu.Unlock()

		if time.Since(state.lastRequest) > window {
			state.requestCount = 0
			state.lastRequest = time.Now()
		}

		state.requestCount++

		if state.requestCount > maxRequests {
			accept := r.Header.Get("Accept")
			isAJAX := r.Header.Get("X-Requested-With") == "XMLHttpRequest" ||
				strings.Contains(accept, "application/json")

			if isAJAX {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"error": "Too Many Requests",
				})
			} else {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}

// cleanupClientStates periodically drops idle entries to avoid leaking memory.
func cleanupClientStates() {
	for range time.Tick(window) {
		mu.Lock()
		for ip, state := range clients {
			state.mu.Lock()
			if time.Since(state.lastRequest) > 2*window {
				delete(clients, ip)
			}
			state.mu.Unlock()
		}
		mu.Unlock()
	}
}
