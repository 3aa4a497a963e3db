package handler

import (
	"database/sql"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/machipost-dev/machipost/internal/config"
	"github.com/machipost-dev/machipost/internal/domain"
	"github.com/machipost-dev/machipost/internal/markdown"
	"github.com/machipost-dev/machipost/internal/share"
)

func nullInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}

// MockPostService implements service.PostService
type MockPostService struct {
	MockCreate func(data domain.PostCreationData) (domain.Post, error)
	MockGet    func(id domain.PostId) (domain.Post, error)
	MockList   func() ([]domain.Post, error)
}

func (m *MockPostService) Create(data domain.PostCreationData) (domain.Post, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Post{}, nil
}

func (m *MockPostService) Get(id domain.PostId) (domain.Post, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.Post{}, nil
}

func (m *MockPostService) List() ([]domain.Post, error) {
	if m.MockList != nil {
		return m.MockList()
	}
	return nil, nil
}

// MockCommentService implements service.CommentService
type MockCommentService struct {
	MockCreate      func(data domain.CommentCreationData) (domain.Comment, error)
	MockListForPost func(postId domain.PostId) ([]domain.Comment, error)
}

func (m *MockCommentService) Create(data domain.CommentCreationData) (domain.Comment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Comment{}, nil
}

func (m *MockCommentService) ListForPost(postId domain.PostId) ([]domain.Comment, error) {
	if m.MockListForPost != nil {
		return m.MockListForPost(postId)
	}
	return nil, nil
}

// MockLikeService implements service.LikeService
type MockLikeService struct {
	MockLikePost    func(id domain.PostId) (int64, error)
	MockLikeComment func(id domain.CommentId) (int64, error)
}

func (m *MockLikeService) LikePost(id domain.PostId) (int64, error) {
	if m.MockLikePost != nil {
		return m.MockLikePost(id)
	}
	return 0, nil
}

func (m *MockLikeService) LikeComment(id domain.CommentId) (int64, error) {
	if m.MockLikeComment != nil {
		return m.MockLikeComment(id)
	}
	return 0, nil
}

// MockUploadService implements service.UploadService
type MockUploadService struct {
	MockStore func(files []*domain.PendingImage) ([]string, error)
}

func (m *MockUploadService) Store(files []*domain.PendingImage) ([]string, error) {
	if m.MockStore != nil {
		return m.MockStore(files)
	}
	return []string{}, nil
}

func testPublicConfig() config.Public {
	return config.Public{
		BaseURL:               "https://board.test",
		SiteName:              "Test Board",
		SiteTagline:           "neighborhood news",
		ShareHashtags:         []string{"testboard"},
		MaxFilesPerPost:       5,
		MaxAttachmentSize:     5 << 20,
		MaxImageWidth:         800,
		JpegQuality:           90,
		AllowedImageMimeTypes: []string{"image/jpeg", "image/png", "image/gif"},
	}
}

// testTemplates are tiny stand-ins; page rendering itself is covered by the
// real templates at runtime, handlers only need something executable.
func testTemplates() map[string]*template.Template {
	return map[string]*template.Template{
		"index.html": template.Must(template.New("index.html").Parse(
			`posts:{{len .Data.Posts}} desc:{{.Common.MetaDescription}}`)),
		"post.html": template.Must(template.New("post.html").Parse(
			`post:{{.Data.Post.Id}} comments:{{len .Data.Comments}} desc:{{.Common.MetaDescription}} canonical:{{.Common.CanonicalURL}}`)),
	}
}

func newTestHandler() *Handler {
	cfg := testPublicConfig()
	return New(
		testTemplates(),
		cfg,
		markdown.New(),
		share.New(cfg.BaseURL, cfg.ShareHashtags),
		&MockPostService{},
		&MockCommentService{},
		&MockLikeService{},
		&MockUploadService{},
		nil,
	)
}

func testRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.IndexGetHandler)
	r.Get("/post/{postId}", h.PostGetHandler)
	r.Get("/feed.rss", h.RssHandler)
	r.Post("/posts", h.PostCreateHandler)
	r.Post("/posts/{postId}/comments", h.CommentCreateHandler)
	r.Post("/posts/{postId}/like", h.LikePostHandler)
	r.Post("/comments/{commentId}/like", h.LikeCommentHandler)
	r.Post("/uploads", h.UploadHandler)
	r.Get("/health", h.Health)
	return r
}
