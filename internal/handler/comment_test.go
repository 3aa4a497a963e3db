package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/machipost-dev/machipost/internal/domain"
	internal_errors "github.com/machipost-dev/machipost/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreateHandler(t *testing.T) {
	h := newTestHandler()
	router := testRouter(h)

	postComment := func(postId string, form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/posts/"+postId+"/comments", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	t.Run("top-level comment redirects back to the post", func(t *testing.T) {
		var got domain.CommentCreationData
		h.comments = &MockCommentService{
			MockCreate: func(data domain.CommentCreationData) (domain.Comment, error) {
				got = data
				return domain.Comment{Id: 1}, nil
			},
		}

		rr := postComment("5", url.Values{
			"content":     {"nice event"},
			"author_name": {"taro"},
		})

		require.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/post/5", rr.Header().Get("Location"))
		assert.Equal(t, domain.PostId(5), got.PostId)
		assert.Nil(t, got.ParentId)
		assert.Equal(t, "nice event", got.Content)
		assert.Equal(t, "taro", got.AuthorName)
	})

	t.Run("parent_id makes a nested reply", func(t *testing.T) {
		h.comments = &MockCommentService{
			MockCreate: func(data domain.CommentCreationData) (domain.Comment, error) {
				require.NotNil(t, data.ParentId)
				assert.Equal(t, domain.CommentId(9), *data.ParentId)
				return domain.Comment{Id: 2}, nil
			},
		}

		rr := postComment("5", url.Values{
			"content":   {"replying"},
			"parent_id": {"9"},
		})
		assert.Equal(t, http.StatusSeeOther, rr.Code)
	})

	t.Run("garbage parent_id degrades to top-level", func(t *testing.T) {
		h.comments = &MockCommentService{
			MockCreate: func(data domain.CommentCreationData) (domain.Comment, error) {
				assert.Nil(t, data.ParentId)
				return domain.Comment{Id: 3}, nil
			},
		}

		rr := postComment("5", url.Values{
			"content":   {"still lands"},
			"parent_id": {"not-a-number"},
		})
		assert.Equal(t, http.StatusSeeOther, rr.Code)
	})

	t.Run("service failure still redirects back", func(t *testing.T) {
		h.comments = &MockCommentService{
			MockCreate: func(data domain.CommentCreationData) (domain.Comment, error) {
				return domain.Comment{}, internal_errors.BadRequest("Content is required")
			},
		}

		rr := postComment("5", url.Values{"content": {""}})
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/post/5", rr.Header().Get("Location"))
	})

	t.Run("non-numeric post id returns 400", func(t *testing.T) {
		rr := postComment("abc", url.Values{"content": {"x"}})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
