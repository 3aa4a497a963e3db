package service

import "github.com/machipost-dev/machipost/internal/domain"

type LikeService interface {
	LikePost(id domain.PostId) (int64, error)
	LikeComment(id domain.CommentId) (int64, error)
}

type CounterStorage interface {
	IncrementPostLikes(id domain.PostId) error
	GetPostLikeCount(id domain.PostId) (int64, error)
	IncrementCommentLikes(id domain.CommentId) error
	GetCommentLikeCount(id domain.CommentId) (int64, error)
}

// Like runs the increment-then-reread counter protocol. Atomicity of the
// increment belongs to the store; the fresh read-back is what gets displayed,
// so counts raised by concurrent likers in between are never understated.
type Like struct {
	storage CounterStorage
}

func NewLike(storage CounterStorage) *Like {
	return &Like{storage: storage}
}

// LikePost increments a post's like counter and returns the authoritative
// new value. If the increment fails the read-back is never attempted and the
// caller keeps showing the old count. If the read-back fails the increment
// still happened; the next full reload self-corrects.
func (l *Like) LikePost(id domain.PostId) (int64, error) {
	if err := l.storage.IncrementPostLikes(id); err != nil {
		return 0, err
	}
	return l.storage.GetPostLikeCount(id)
}

func (l *Like) LikeComment(id domain.CommentId) (int64, error) {
	if err := l.storage.IncrementCommentLikes(id); err != nil {
		return 0, err
	}
	return l.storage.GetCommentLikeCount(id)
}
