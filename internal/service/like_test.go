package service

import (
	"errors"
	"testing"

	"github.com/machipost-dev/machipost/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockCounterStorage implements CounterStorage
type MockCounterStorage struct {
	MockIncrementPostLikes    func(id domain.PostId) error
	MockGetPostLikeCount      func(id domain.PostId) (int64, error)
	MockIncrementCommentLikes func(id domain.CommentId) error
	MockGetCommentLikeCount   func(id domain.CommentId) (int64, error)
}

func (m *MockCounterStorage) IncrementPostLikes(id domain.PostId) error {
	if m.MockIncrementPostLikes != nil {
		return m.MockIncrementPostLikes(id)
	}
	return nil
}

func (m *MockCounterStorage) GetPostLikeCount(id domain.PostId) (int64, error) {
	if m.MockGetPostLikeCount != nil {
		return m.MockGetPostLikeCount(id)
	}
	return 0, nil
}

func (m *MockCounterStorage) IncrementCommentLikes(id domain.CommentId) error {
	if m.MockIncrementCommentLikes != nil {
		return m.MockIncrementCommentLikes(id)
	}
	return nil
}

func (m *MockCounterStorage) GetCommentLikeCount(id domain.CommentId) (int64, error) {
	if m.MockGetCommentLikeCount != nil {
		return m.MockGetCommentLikeCount(id)
	}
	return 0, nil
}

func TestLikePost(t *testing.T) {
	t.Run("returns the freshly read store value, not a local increment", func(t *testing.T) {
		incremented := false
		mock := &MockCounterStorage{
			MockIncrementPostLikes: func(id domain.PostId) error {
				assert.Equal(t, domain.PostId(7), id)
				incremented = true
				return nil
			},
			MockGetPostLikeCount: func(id domain.PostId) (int64, error) {
				require.True(t, incremented, "read-back must come after the increment")
				// other likers got in between; the read-back wins
				return 42, nil
			},
		}

		count, err := NewLike(mock).LikePost(7)
		require.NoError(t, err)
		assert.Equal(t, int64(42), count)
	})

	t.Run("failed increment aborts before the read-back", func(t *testing.T) {
		readBackCalled := false
		mock := &MockCounterStorage{
			MockIncrementPostLikes: func(id domain.PostId) error {
				return errors.New("store unavailable")
			},
			MockGetPostLikeCount: func(id domain.PostId) (int64, error) {
				readBackCalled = true
				return 0, nil
			},
		}

		_, err := NewLike(mock).LikePost(7)
		require.Error(t, err)
		assert.False(t, readBackCalled, "read-back must never run after a failed increment")
	})

	t.Run("failed read-back surfaces after a successful increment", func(t *testing.T) {
		incremented := false
		mock := &MockCounterStorage{
			MockIncrementPostLikes: func(id domain.PostId) error {
				incremented = true
				return nil
			},
			MockGetPostLikeCount: func(id domain.PostId) (int64, error) {
				return 0, errors.New("read failed")
			},
		}

		_, err := NewLike(mock).LikePost(7)
		require.Error(t, err)
		assert.True(t, incremented, "increment already happened in the store")
	})
}

func TestLikeComment(t *testing.T) {
	t.Run("increment then read-back", func(t *testing.T) {
		mock := &MockCounterStorage{
			MockGetCommentLikeCount: func(id domain.CommentId) (int64, error) {
				return 5, nil
			},
		}

		count, err := NewLike(mock).LikeComment(3)
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})

	t.Run("failed increment aborts", func(t *testing.T) {
		mock := &MockCounterStorage{
			MockIncrementCommentLikes: func(id domain.CommentId) error {
				return errors.New("nope")
			},
			MockGetCommentLikeCount: func(id domain.CommentId) (int64, error) {
				t.Fatal("read-back must not be attempted")
				return 0, nil
			},
		}

		_, err := NewLike(mock).LikeComment(3)
		assert.Error(t, err)
	})
}
