package domain

import "time"

type Post struct {
	Id        PostId
	Content   string
	Images    Images
	LikeCount int64
	CreatedAt time.Time
}

// to iterate thru layers: handler -> service -> storage
type PostCreationData struct {
	Content string
	Images  Images
}
