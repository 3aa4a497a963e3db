package setup

import (
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/machipost-dev/machipost/internal/config"
	"github.com/machipost-dev/machipost/internal/handler"
	"github.com/machipost-dev/machipost/internal/markdown"
	"github.com/machipost-dev/machipost/internal/service"
	"github.com/machipost-dev/machipost/internal/share"
	"github.com/machipost-dev/machipost/internal/storage/fs"
	"github.com/machipost-dev/machipost/internal/storage/pg"
)

const (
	baseTemplate           = "base.html"
	tmplPath               = "web/templates"
	templateReloadInterval = 5 * time.Second
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Media   *fs.Storage
	Handler *handler.Handler
	Public  config.Public
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	media, err := fs.New(cfg.Public.MediaPath, cfg.Public.MediaURLPrefix)
	if err != nil {
		storage.Cleanup()
		return nil, fmt.Errorf("failed to initialize media storage: %w", err)
	}

	posts := service.NewPost(storage, cfg.Public.MaxFilesPerPost)
	comments := service.NewComment(storage)
	likes := service.NewLike(storage)
	uploads := service.NewUpload(media, cfg.Public.MaxImageWidth, cfg.Public.JpegQuality)

	templates := mustLoadTemplates(tmplPath)
	textProcessor := markdown.New()
	shareFormatter := share.New(cfg.Public.BaseURL, cfg.Public.ShareHashtags)

	h := handler.New(templates, cfg.Public, textProcessor, shareFormatter,
		posts, comments, likes, uploads, storage)
	startTemplateReloader(h, tmplPath)

	return &Dependencies{
		Storage: storage,
		Media:   media,
		Handler: h,
		Public:  cfg.Public,
	}, nil
}

func mustLoadTemplates(tmplPath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)

	files, err := os.ReadDir(tmplPath)
	if err != nil {
		panic(fmt.Sprintf("reading template dir %s: %v", tmplPath, err))
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) == ".html" && f.Name() != baseTemplate && f.Name() != "partials.html" {
			templates[f.Name()] = template.Must(template.New(baseTemplate).Funcs(
				template.FuncMap{
					"add": add,
					"sub": sub,
				},
			).ParseFiles(
				path.Join(tmplPath, baseTemplate),
				path.Join(tmplPath, f.Name()),
				path.Join(tmplPath, "partials.html"),
			))
		}
	}
	return templates
}

func startTemplateReloader(h *handler.Handler, tmplPath string) {
	if os.Getenv("ENV") == "development" {
		ticker := time.NewTicker(templateReloadInterval)
		go func() {
			for range ticker.C {
				h.Templates = mustLoadTemplates(tmplPath)
			}
		}()
	}
}

func add(a, b int) int { return a + b }
func sub(a, b int) int { return a - b }
