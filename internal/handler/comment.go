package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/machipost-dev/machipost/internal/domain"
	"github.com/machipost-dev/machipost/internal/logger"
	"github.com/machipost-dev/machipost/internal/middleware/metrics"
	"github.com/machipost-dev/machipost/internal/utils"
)

// CommentCreateHandler accepts the reply form on a post's detail page.
// parent_id is present when replying to another comment, absent for a
// top-level comment. The user lands back on the detail page whether or not
// the comment stuck; the reload renders the stored state.
func (h *Handler) CommentCreateHandler(w http.ResponseWriter, r *http.Request) {
	postId, err := idParam(r, "postId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	data := domain.CommentCreationData{
		PostId:     postId,
		Content:    r.FormValue("content"),
		AuthorName: r.FormValue("author_name"),
	}

	if raw := r.FormValue("parent_id"); raw != "" {
		parentId, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			logger.Log.Error("bad parent_id in comment form", "value", raw)
		} else {
			data.ParentId = &parentId
		}
	}

	if _, err := h.comments.Create(data); err != nil {
		logger.Log.Error("creating comment", "post_id", postId, "error", err)
	} else {
		metrics.CommentsCreated.Inc()
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", postId), http.StatusSeeOther)
}
