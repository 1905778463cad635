package server

import (
	"log"
	"net/http"
	"time"

	"github.com/baivab22/ictforumFrontend/config"
	"github.com/baivab22/ictforumFrontend/internal/backend"
	"github.com/baivab22/ictforumFrontend/internal/database"
	"github.com/baivab22/ictforumFrontend/internal/handlers"
	"github.com/baivab22/ictforumFrontend/internal/middleware"
	"github.com/baivab22/ictforumFrontend/internal/session"
)

func applyMiddleware(h http.Handler, m ...func(http.Handler) http.Handler) http.Handler {
	for i := len(m) - 1; i >= 0; i-- {
		h = m[i](h)
	}
	return h
}

func StartServer() {
	cfg := config.AppConfig

	store := session.NewStore(database.DB, cfg.Session.Expiration)
	api := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, session.Tokens{Store: store})
	handlers.Init(api, store)

	go database.CleanupExpiredSessions()

	mux := http.NewServeMux()

	fs := http.FileServer(http.Dir("./static"))
	mux.Handle("GET /static/", http.StripPrefix("/static/", fs))

	// Public pages.
	mux.HandleFunc("GET /{$}", handlers.HomeHandler)
	mux.HandleFunc("GET /news", handlers.NewsHandler)
	mux.HandleFunc("GET /news/suggest", handlers.NewsSuggestHandler)
	mux.HandleFunc("GET /post/{id}", handlers.PostDetailHandler)
	mux.HandleFunc("POST /post/{id}/like", handlers.LikePostHandler)
	mux.HandleFunc("GET /about", handlers.AboutHandler)
	mux.HandleFunc("GET /contact", handlers.ContactHandler)
	mux.HandleFunc("POST /contact", handlers.ContactHandler)
	mux.HandleFunc("GET /lang", handlers.LangHandler)

	// Admin console. Login is rate-limited; everything mutating requires a
	// session. /admin itself does its own gating so it can show the login
	// form.
	mux.HandleFunc("GET /admin", handlers.AdminHandler)
	mux.Handle("POST /admin/login",
		middleware.RateLimitMiddleware(http.HandlerFunc(handlers.AdminLoginHandler)))
	mux.Handle("POST /admin/logout",
		middleware.RequireAuthMiddleware(http.HandlerFunc(handlers.AdminLogoutHandler)))
	mux.Handle("POST /admin/posts",
		middleware.RequireAuthMiddleware(http.HandlerFunc(handlers.AdminCreatePostHandler)))
	mux.Handle("POST /admin/posts/{id}",
		middleware.RequireAuthMiddleware(middleware.MethodOverrideMiddleware(http.HandlerFunc(handlers.AdminPostHandler))))
	mux.Handle("GET /admin/refresh",
		middleware.RequireAuthMiddleware(http.HandlerFunc(handlers.AdminRefreshHandler)))
	mux.Handle("POST /admin/media",
		middleware.RequireAuthMiddleware(http.HandlerFunc(handlers.AdminMediaUploadHandler)))
	mux.Handle("GET /admin/analytics",
		middleware.RequireAuthMiddleware(http.HandlerFunc(handlers.AdminAnalyticsHandler)))

	mux.HandleFunc("/", handlers.NotFoundHandler)

	globalChain := applyMiddleware(mux,
		middleware.LoggerMiddleware,
		middleware.SecureHeadersMiddleware,
		middleware.SessionMiddleware(store),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      globalChain,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverURL := "http://localhost" + srv.Addr
	log.Printf("Server starting on %s", serverURL)

	err := srv.ListenAndServe()
	if err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
