package server

import (
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/portfolio-app/internal/auth"
	"github.com/diewo77/portfolio-app/internal/handlers"
	"github.com/diewo77/portfolio-app/internal/httpx"
	"github.com/diewo77/portfolio-app/internal/logger"
	"github.com/diewo77/portfolio-app/internal/mailer"
	"github.com/diewo77/portfolio-app/internal/services"
	"github.com/diewo77/portfolio-app/internal/store"
)

// New constructs the root http.Handler with all routes and middlewares
// applied. Add/edit/delete sit behind the authentication gate; everything
// else is public.
func New(conn *gorm.DB, sessions *auth.Sessions, mail mailer.Mailer, log *logger.Logger) http.Handler {
	users := store.NewUserStore(conn)
	items := store.NewGalleryStore(conn)
	authSvc := services.NewAuthService(users)
	gallerySvc := services.NewGalleryService(items)

	// A session whose user has been removed from the store is cleared
	// instead of passing the gate.
	sessions.SetVerifier(func(_ context.Context, uid uint) bool {
		return users.Exists(uid)
	})

	authHandler := handlers.NewAuthHandler(authSvc, sessions)
	galleryHandler := handlers.NewGalleryHandler(gallerySvc, items)
	contactHandler := handlers.NewContactHandler(mail, log)
	pages := handlers.NewPageHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		galleryHandler.Home(w, r)
	})
	mux.HandleFunc("/about", pages.About)
	mux.HandleFunc("/services", pages.Services)
	mux.HandleFunc("/contact", contactHandler.Contact)
	mux.HandleFunc("/signin", authHandler.SignIn)
	mux.HandleFunc("/register", authHandler.Register)
	mux.HandleFunc("/logout", authHandler.Logout)

	mux.Handle("/add", sessions.Require(http.HandlerFunc(galleryHandler.Add)))
	mux.Handle("/edit", sessions.Require(http.HandlerFunc(galleryHandler.Edit)))
	mux.Handle("/delete", sessions.Require(http.HandlerFunc(galleryHandler.Delete)))

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := conn.Exec("SELECT 1").Error; err != nil {
			httpx.JSONError(w, http.StatusServiceUnavailable, "degraded", nil)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return withRecover(log, withLogging(log, sessions.Middleware(mux)))
}

// statusRecorder captures the response status for the request log line.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.status == 0 {
		sr.status = code
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	return sr.ResponseWriter.Write(b)
}

func withLogging(log *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		log.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func withRecover(log *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Errorw("handler panic", "path", r.URL.Path, "panic", rec)
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
