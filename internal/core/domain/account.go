package domain

import "time"

// AccountStatus tells whether a community member may sign in and post.
type AccountStatus string

const (
	AccountActive AccountStatus = "active"
	AccountBanned AccountStatus = "banned"
)

// Valid reports whether s is one of the known statuses.
func (s AccountStatus) Valid() bool {
	return s == AccountActive || s == AccountBanned
}

// Toggled returns the opposite status: active becomes banned and vice versa.
func (s AccountStatus) Toggled() AccountStatus {
	if s == AccountActive {
		return AccountBanned
	}
	return AccountActive
}

// Account is a community member as seen by moderators.
type Account struct {
	ID        int64         `json:"id" bson:"_id"`
	Username  string        `json:"username" bson:"username"`
	Email     string        `json:"email" bson:"email"`
	Status    AccountStatus `json:"status" bson:"status"`
	JoinDate  time.Time     `json:"joinDate" bson:"join_date"`
	PostCount int           `json:"postCount" bson:"post_count"`
	LastLogin time.Time     `json:"lastLogin" bson:"last_login"`
}

// Identity returns the account id.
func (a Account) Identity() int64 { return a.ID }
