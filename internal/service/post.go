package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	internal_errors "github.com/machipost-dev/machipost/internal/errors"
	"github.com/machipost-dev/machipost/internal/domain"
)

type PostService interface {
	Create(data domain.PostCreationData) (domain.Post, error)
	Get(id domain.PostId) (domain.Post, error)
	List() ([]domain.Post, error)
}

type PostStorage interface {
	CreatePost(data domain.PostCreationData) (domain.Post, error)
	GetPost(id domain.PostId) (domain.Post, error)
	ListPosts() ([]domain.Post, error)
}

type Post struct {
	storage   PostStorage
	maxImages int
}

func NewPost(storage PostStorage, maxImages int) *Post {
	return &Post{storage: storage, maxImages: maxImages}
}

func (p *Post) Create(data domain.PostCreationData) (domain.Post, error) {
	data.Content = strings.TrimSpace(data.Content)
	if data.Content == "" {
		return domain.Post{}, internal_errors.BadRequest("Content is required")
	}
	if utf8.RuneCountInString(data.Content) > domain.PostContentMaxLen {
		return domain.Post{}, internal_errors.BadRequest(fmt.Sprintf("Content exceeds %d characters", domain.PostContentMaxLen))
	}
	if len(data.Images) > p.maxImages {
		return domain.Post{}, internal_errors.BadRequest(fmt.Sprintf("At most %d images per post", p.maxImages))
	}

	return p.storage.CreatePost(data)
}

func (p *Post) Get(id domain.PostId) (domain.Post, error) {
	return p.storage.GetPost(id)
}

func (p *Post) List() ([]domain.Post, error) {
	return p.storage.ListPosts()
}
