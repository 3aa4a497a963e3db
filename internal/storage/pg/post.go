package pg

import (
	"database/sql"
	"errors"

	internal_errors "github.com/machipost-dev/machipost/internal/errors"
	"github.com/machipost-dev/machipost/internal/domain"
)

// CreatePost inserts a post; the store assigns id, created_at and the zero
// like count.
func (s *Storage) CreatePost(data domain.PostCreationData) (domain.Post, error) {
	var post domain.Post
	err := s.db.QueryRow(`
	INSERT INTO posts(content, images)
	VALUES($1, $2)
	RETURNING id, content, images, like_count, created_at`,
		data.Content, data.Images).Scan(&post.Id, &post.Content, &post.Images, &post.LikeCount, &post.CreatedAt)
	if err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

func (s *Storage) GetPost(id domain.PostId) (domain.Post, error) {
	var post domain.Post
	err := s.db.QueryRow(`
	SELECT id, content, images, like_count, created_at
	FROM posts
	WHERE id = $1`, id).Scan(&post.Id, &post.Content, &post.Images, &post.LikeCount, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Post not found")
		}
		return domain.Post{}, err
	}
	return post, nil
}

// ListPosts returns all posts newest first.
func (s *Storage) ListPosts() ([]domain.Post, error) {
	rows, err := s.db.Query(`
	SELECT id, content, images, like_count, created_at
	FROM posts
	ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.Id, &post.Content, &post.Images, &post.LikeCount, &post.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// IncrementPostLikes applies the store-side atomic increment. Concurrent
// likers all go through this single UPDATE, so no count is lost.
func (s *Storage) IncrementPostLikes(id domain.PostId) error {
	result, err := s.db.Exec(`UPDATE posts SET like_count = like_count + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return internal_errors.NotFound("Post not found")
	}
	return nil
}

// GetPostLikeCount reads the authoritative counter value.
func (s *Storage) GetPostLikeCount(id domain.PostId) (int64, error) {
	var count int64
	err := s.db.QueryRow(`SELECT like_count FROM posts WHERE id = $1`, id).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, internal_errors.NotFound("Post not found")
		}
		return 0, err
	}
	return count, nil
}
