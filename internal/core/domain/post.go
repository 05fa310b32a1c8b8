package domain

import "time"

// PostStatus is the moderation state of a post.
type PostStatus string

const (
	PostPending  PostStatus = "pending"
	PostApproved PostStatus = "approved"
	PostRejected PostStatus = "rejected"
)

// validPostTransitions defines the moderation state machine. A post never
// returns to pending once it has been reviewed.
var validPostTransitions = map[PostStatus][]PostStatus{
	PostPending:  {PostApproved, PostRejected},
	PostApproved: {PostRejected},
	PostRejected: {PostApproved},
}

// Valid reports whether s is one of the known statuses.
func (s PostStatus) Valid() bool {
	switch s {
	case PostPending, PostApproved, PostRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s PostStatus) CanTransitionTo(next PostStatus) bool {
	for _, allowed := range validPostTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Author is the public identity of a post's writer.
type Author struct {
	ID       int64  `json:"id" bson:"id"`
	Username string `json:"username" bson:"username"`
}

// Post is a community post awaiting or past moderation.
type Post struct {
	ID           int64      `json:"id" bson:"_id"`
	Title        string     `json:"title" bson:"title"`
	Content      string     `json:"content" bson:"content"`
	Author       Author     `json:"author" bson:"author"`
	CategoryID   int64      `json:"categoryId" bson:"category_id"`
	CategoryName string     `json:"categoryName" bson:"category_name"`
	Status       PostStatus `json:"status" bson:"status"`
	CreatedAt    time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updated_at"`
}

// Identity returns the post id.
func (p Post) Identity() int64 { return p.ID }
