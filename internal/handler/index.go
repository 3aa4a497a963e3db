package handler

import (
	"net/http"

	"github.com/machipost-dev/machipost/internal/utils"
)

// IndexGetHandler renders the feed page: every post, newest first, each with
// its rendered body, share links and comment count.
func (h *Handler) IndexGetHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	views := make([]*PostView, 0, len(posts))
	for _, post := range posts {
		comments, err := h.comments.ListForPost(post.Id)
		if err != nil {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}
		views = append(views, h.renderPost(post, len(comments)))
	}

	var templateData struct {
		Posts []*PostView
	}
	templateData.Posts = views

	h.renderTemplate(w, "index.html", templateData, h.commonTemplateData())
}
