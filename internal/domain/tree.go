package domain

import "sort"

// CommentNode is a comment decorated with its replies. Derived view only,
// rebuilt from the flat stored list on every read and never persisted.
type CommentNode struct {
	Comment
	Replies []*CommentNode
}

// BuildCommentTree converts a flat list of one post's comments into a forest
// of reply trees. The input is expected in ascending created_at order (the
// store's query order); sibling replies keep that relative order and are not
// re-sorted after being attached to a parent.
//
// A comment whose parent_id references an id not present in the input becomes
// a root instead of failing. Roots are sorted ascending by created_at.
func BuildCommentTree(comments []Comment) []*CommentNode {
	nodes := make(map[CommentId]*CommentNode, len(comments))
	for i := range comments {
		nodes[comments[i].Id] = &CommentNode{Comment: comments[i]}
	}

	var roots []*CommentNode
	for i := range comments {
		node := nodes[comments[i].Id]
		if comments[i].ParentId.Valid {
			if parent, ok := nodes[comments[i].ParentId.Int64]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
			// dangling parent reference: degrade to top-level
		}
		roots = append(roots, node)
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].CreatedAt.Before(roots[j].CreatedAt)
	})
	return roots
}

// CountComments returns the number of comments in the forest, replies included.
func CountComments(roots []*CommentNode) int {
	n := 0
	for _, root := range roots {
		n += 1 + CountComments(root.Replies)
	}
	return n
}
