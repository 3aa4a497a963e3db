package handler

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/machipost-dev/machipost/internal/config"
	"github.com/machipost-dev/machipost/internal/logger"
	"github.com/machipost-dev/machipost/internal/markdown"
	"github.com/machipost-dev/machipost/internal/service"
	"github.com/machipost-dev/machipost/internal/share"
)

type Handler struct {
	Templates     map[string]*template.Template
	Public        config.Public
	TextProcessor *markdown.TextProcessor
	Share         *share.Formatter

	posts    service.PostService
	comments service.CommentService
	likes    service.LikeService
	uploads  service.UploadService
	health   Pinger
}

func New(
	templates map[string]*template.Template,
	publicCfg config.Public,
	textProcessor *markdown.TextProcessor,
	shareFormatter *share.Formatter,
	posts service.PostService,
	comments service.CommentService,
	likes service.LikeService,
	uploads service.UploadService,
	health Pinger,
) *Handler {
	return &Handler{
		Templates:     templates,
		Public:        publicCfg,
		TextProcessor: textProcessor,
		Share:         shareFormatter,
		posts:         posts,
		comments:      comments,
		likes:         likes,
		uploads:       uploads,
		health:        health,
	}
}

func FaviconHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "web/static/favicon.ico")
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("encoding json response", "error", err)
	}
}
