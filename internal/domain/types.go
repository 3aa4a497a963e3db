package domain

import "github.com/lib/pq"

type (
	PostId    = int64
	CommentId = int64

	// Images holds the public URLs of a post's uploaded images,
	// in the order the user selected them. Stored as a postgres array.
	Images = pq.StringArray
)

// Column limits, enforced before insert so the store never rejects on length.
const (
	PostContentMaxLen    = 2000
	CommentContentMaxLen = 500
	AuthorNameMaxLen     = 50
)

// AnonymousAuthor is displayed when a commenter leaves the name field empty.
const AnonymousAuthor = "anonymous"
