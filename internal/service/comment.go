package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	internal_errors "github.com/machipost-dev/machipost/internal/errors"
	"github.com/machipost-dev/machipost/internal/domain"
)

type CommentService interface {
	Create(data domain.CommentCreationData) (domain.Comment, error)
	ListForPost(postId domain.PostId) ([]domain.Comment, error)
}

type CommentStorage interface {
	CreateComment(data domain.CommentCreationData) (domain.Comment, error)
	ListComments(postId domain.PostId) ([]domain.Comment, error)
}

type Comment struct {
	storage CommentStorage
}

func NewComment(storage CommentStorage) *Comment {
	return &Comment{storage: storage}
}

func (c *Comment) Create(data domain.CommentCreationData) (domain.Comment, error) {
	data.Content = strings.TrimSpace(data.Content)
	data.AuthorName = strings.TrimSpace(data.AuthorName)

	if data.Content == "" {
		return domain.Comment{}, internal_errors.BadRequest("Content is required")
	}
	if utf8.RuneCountInString(data.Content) > domain.CommentContentMaxLen {
		return domain.Comment{}, internal_errors.BadRequest(fmt.Sprintf("Content exceeds %d characters", domain.CommentContentMaxLen))
	}
	if utf8.RuneCountInString(data.AuthorName) > domain.AuthorNameMaxLen {
		return domain.Comment{}, internal_errors.BadRequest(fmt.Sprintf("Author name exceeds %d characters", domain.AuthorNameMaxLen))
	}

	return c.storage.CreateComment(data)
}

func (c *Comment) ListForPost(postId domain.PostId) ([]domain.Comment, error) {
	return c.storage.ListComments(postId)
}
