package domain

import "time"

// AuditAction names a moderation mutation recorded in the audit trail.
type AuditAction string

const (
	AuditCategoryCreated AuditAction = "category.created"
	AuditCategoryDeleted AuditAction = "category.deleted"
	AuditPostModerated   AuditAction = "post.moderated"
	AuditAccountStatus   AuditAction = "account.status_changed"
)

// AuditEntry records one successful moderation mutation.
type AuditEntry struct {
	ID       string      `json:"id" bson:"_id"`
	Action   AuditAction `json:"action" bson:"action"`
	Entity   string      `json:"entity" bson:"entity"`
	EntityID int64       `json:"entityId" bson:"entity_id"`
	Detail   string      `json:"detail" bson:"detail"`
	Actor    string      `json:"actor" bson:"actor"`
	At       time.Time   `json:"at" bson:"at"`
}

// ShardKey groups entries so that mutations of one entity stay ordered.
func (e AuditEntry) ShardKey() string {
	return e.Entity + ":" + formatID(e.EntityID)
}
