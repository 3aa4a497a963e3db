package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/machipost-dev/machipost/internal/handler"
	"github.com/machipost-dev/machipost/internal/middleware/metrics"
	"github.com/machipost-dev/machipost/internal/setup"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	h := deps.Handler

	// Pages
	r.Get("/", h.IndexGetHandler)
	r.Get("/post/{postId}", h.PostGetHandler)
	r.Get("/feed.rss", h.RssHandler)
	r.Get("/favicon.ico", handler.FaviconHandler)

	// Form submissions
	r.Post("/posts", h.PostCreateHandler)
	r.Post("/posts/{postId}/comments", h.CommentCreateHandler)

	// JSON endpoints
	r.Post("/posts/{postId}/like", h.LikePostHandler)
	r.Post("/comments/{commentId}/like", h.LikeCommentHandler)
	r.Post("/uploads", h.UploadHandler)

	// Operational endpoints
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method("GET", "/metrics", promhttp.Handler())

	// Static assets and stored media
	fileServer(r, "/static", http.Dir("web/static"))
	fileServer(r, deps.Public.MediaURLPrefix, http.Dir(deps.Media.Root()))

	return r
}

func fileServer(r chi.Router, prefix string, root http.FileSystem) {
	fs := http.StripPrefix(prefix+"/", http.FileServer(root))
	r.Get(prefix+"/*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}
