package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/machipost-dev/machipost/internal/domain"
	"github.com/machipost-dev/machipost/internal/logger"
	"github.com/machipost-dev/machipost/internal/share"
)

// metaDescriptionLimit caps the page description fed to search engines and
// link previews.
const metaDescriptionLimit = 100

// CommonTemplateData is shared by every page.
type CommonTemplateData struct {
	SiteName        string
	SiteTagline     string
	Title           string
	MetaDescription string
	CanonicalURL    string
}

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common CommonTemplateData
}

// PostView is a post enriched with everything a template needs: rendered
// body, share payloads and the comment count.
type PostView struct {
	domain.Post
	Html              template.HTML
	URL               string
	TwitterShareURL   string
	LineShareURL      string
	InstagramCopyText string
	CommentCount      int
}

// CommentView mirrors the reconstructed reply tree with rendered bodies.
type CommentView struct {
	domain.Comment
	Html    template.HTML
	Author  string
	Replies []*CommentView
}

func (h *Handler) commonTemplateData() CommonTemplateData {
	return CommonTemplateData{
		SiteName:        h.Public.SiteName,
		SiteTagline:     h.Public.SiteTagline,
		Title:           h.Public.SiteName,
		MetaDescription: h.Public.SiteTagline,
		CanonicalURL:    h.Public.BaseURL + "/",
	}
}

func (h *Handler) renderTemplate(w http.ResponseWriter, name string, data any, common CommonTemplateData) {
	tmpl, ok := h.Templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	wrapped := TemplateData{Data: data, Common: common}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderPost(post domain.Post, commentCount int) *PostView {
	return &PostView{
		Post:              post,
		Html:              h.TextProcessor.Render(post.Content),
		URL:               h.Share.PostURL(int64(post.Id)),
		TwitterShareURL:   h.Share.TwitterURL(int64(post.Id), post.Content),
		LineShareURL:      h.Share.LineURL(int64(post.Id), post.Content),
		InstagramCopyText: h.Share.InstagramCopyText(int64(post.Id), post.Content),
		CommentCount:      commentCount,
	}
}

func (h *Handler) renderCommentTree(nodes []*domain.CommentNode) []*CommentView {
	views := make([]*CommentView, 0, len(nodes))
	for _, node := range nodes {
		views = append(views, &CommentView{
			Comment: node.Comment,
			Html:    h.TextProcessor.Render(node.Content),
			Author:  node.DisplayAuthor(),
			Replies: h.renderCommentTree(node.Replies),
		})
	}
	return views
}

// metaDescription condenses post content into a single-line page description.
func metaDescription(content string) string {
	return share.Truncate(content, metaDescriptionLimit)
}
