package domain

import (
	"database/sql"
	"time"
)

type Comment struct {
	Id         CommentId
	PostId     PostId
	ParentId   sql.NullInt64 // null means top-level comment
	Content    string
	AuthorName sql.NullString
	LikeCount  int64
	CreatedAt  time.Time
}

type CommentCreationData struct {
	PostId     PostId
	ParentId   *CommentId
	Content    string
	AuthorName string
}

// DisplayAuthor returns the author name shown in the UI,
// falling back to the anonymous default.
func (c *Comment) DisplayAuthor() string {
	if c.AuthorName.Valid && c.AuthorName.String != "" {
		return c.AuthorName.String
	}
	return AnonymousAuthor
}
