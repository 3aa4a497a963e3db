package handler

import (
	"net/http"

	"github.com/machipost-dev/machipost/internal/middleware/metrics"
	"github.com/machipost-dev/machipost/internal/utils"
)

type likeResponse struct {
	LikeCount int64 `json:"like_count"`
}

// LikePostHandler bumps a post's like counter and returns the re-read value.
func (h *Handler) LikePostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "postId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	count, err := h.likes.LikePost(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	metrics.LikesRecorded.WithLabelValues("post").Inc()
	writeJSON(w, likeResponse{LikeCount: count})
}

// LikeCommentHandler bumps a comment's like counter and returns the re-read
// value.
func (h *Handler) LikeCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "commentId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	count, err := h.likes.LikeComment(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	metrics.LikesRecorded.WithLabelValues("comment").Inc()
	writeJSON(w, likeResponse{LikeCount: count})
}
