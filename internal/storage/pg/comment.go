package pg

import (
	"database/sql"
	"errors"

	internal_errors "github.com/machipost-dev/machipost/internal/errors"
	"github.com/machipost-dev/machipost/internal/domain"

	"github.com/lib/pq"
)

const fkViolation = "23503"

// CreateComment inserts a comment. A missing post (or parent comment) shows
// up as a foreign key violation and maps to not-found.
func (s *Storage) CreateComment(data domain.CommentCreationData) (domain.Comment, error) {
	var parentId sql.NullInt64
	if data.ParentId != nil {
		parentId = sql.NullInt64{Int64: *data.ParentId, Valid: true}
	}
	var authorName sql.NullString
	if data.AuthorName != "" {
		authorName = sql.NullString{String: data.AuthorName, Valid: true}
	}

	var comment domain.Comment
	err := s.db.QueryRow(`
	INSERT INTO comments(post_id, parent_id, content, author_name)
	VALUES($1, $2, $3, $4)
	RETURNING id, post_id, parent_id, content, author_name, like_count, created_at`,
		data.PostId, parentId, data.Content, authorName).
		Scan(&comment.Id, &comment.PostId, &comment.ParentId, &comment.Content, &comment.AuthorName, &comment.LikeCount, &comment.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == fkViolation {
			return domain.Comment{}, internal_errors.NotFound("Post not found")
		}
		return domain.Comment{}, err
	}
	return comment, nil
}

func (s *Storage) GetComment(id domain.CommentId) (domain.Comment, error) {
	var comment domain.Comment
	err := s.db.QueryRow(`
	SELECT id, post_id, parent_id, content, author_name, like_count, created_at
	FROM comments
	WHERE id = $1`, id).
		Scan(&comment.Id, &comment.PostId, &comment.ParentId, &comment.Content, &comment.AuthorName, &comment.LikeCount, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, internal_errors.NotFound("Comment not found")
		}
		return domain.Comment{}, err
	}
	return comment, nil
}

// ListComments returns one post's comments flat, oldest first. The tree is
// rebuilt from this order on every read.
func (s *Storage) ListComments(postId domain.PostId) ([]domain.Comment, error) {
	rows, err := s.db.Query(`
	SELECT id, post_id, parent_id, content, author_name, like_count, created_at
	FROM comments
	WHERE post_id = $1
	ORDER BY created_at ASC`, postId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(&comment.Id, &comment.PostId, &comment.ParentId, &comment.Content, &comment.AuthorName, &comment.LikeCount, &comment.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (s *Storage) IncrementCommentLikes(id domain.CommentId) error {
	result, err := s.db.Exec(`UPDATE comments SET like_count = like_count + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return internal_errors.NotFound("Comment not found")
	}
	return nil
}

func (s *Storage) GetCommentLikeCount(id domain.CommentId) (int64, error) {
	var count int64
	err := s.db.QueryRow(`SELECT like_count FROM comments WHERE id = $1`, id).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, internal_errors.NotFound("Comment not found")
		}
		return 0, err
	}
	return count, nil
}
