package domain

import "time"

// Category is a discussion area of the community. Categories are owned by the
// backend; the console only holds a read-through copy.
type Category struct {
	ID          int64     `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	PostCount   int       `json:"postCount" bson:"post_count"`
	SortOrder   int       `json:"sortOrder" bson:"sort_order"`
	CreatedTime time.Time `json:"createdTime" bson:"created_time"`
}

// Identity returns the category id.
func (c Category) Identity() int64 { return c.ID }
