package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/machipost-dev/machipost/internal/domain"
	"github.com/machipost-dev/machipost/internal/logger"
	"github.com/machipost-dev/machipost/internal/middleware/metrics"
	"github.com/machipost-dev/machipost/internal/utils"
)

// PostGetHandler renders a post's detail page with its reconstructed comment
// tree and post-specific SEO meta.
func (h *Handler) PostGetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "postId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.posts.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comments, err := h.comments.ListForPost(post.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	tree := domain.BuildCommentTree(comments)

	var templateData struct {
		Post     *PostView
		Comments []*CommentView
	}
	templateData.Post = h.renderPost(post, len(comments))
	templateData.Comments = h.renderCommentTree(tree)

	common := h.commonTemplateData()
	common.Title = fmt.Sprintf("%s | %s", metaDescription(post.Content), h.Public.SiteName)
	common.MetaDescription = metaDescription(post.Content)
	common.CanonicalURL = h.Share.PostURL(int64(post.Id))

	h.renderTemplate(w, "post.html", templateData, common)
}

// PostCreateHandler accepts the post form: text content plus an optional
// hidden "images" field holding the JSON URL array returned by the upload
// endpoint. Failures are logged and the user lands back on the feed either
// way; the page reload shows whatever actually got stored.
func (h *Handler) PostCreateHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	data := domain.PostCreationData{Content: r.FormValue("content")}

	if rawImages := r.FormValue("images"); rawImages != "" {
		if err := json.Unmarshal([]byte(rawImages), &data.Images); err != nil {
			logger.Log.Error("decoding image url list", "error", err)
		}
	}

	if _, err := h.posts.Create(data); err != nil {
		logger.Log.Error("creating post", "error", err)
	} else {
		metrics.PostsCreated.Inc()
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
