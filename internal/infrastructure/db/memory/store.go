// Package memory implements the repository ports with mutex-guarded maps. It
// is the default storage of the mock backend and is seeded from the fixtures.
package memory

import (
	"github.com/devhub/admin-console/internal/infrastructure/db/seed"
)

// Repositories bundles one repository per aggregate.
type Repositories struct {
	Admins     *AdminRepository
	Categories *CategoryRepository
	Posts      *PostRepository
	Accounts   *AccountRepository
	Audit      *AuditRepository
}

// NewSeeded returns repositories preloaded with the fixture data.
func NewSeeded() *Repositories {
	return &Repositories{
		Admins:     NewAdminRepository(),
		Categories: NewCategoryRepository(seed.Categories()...),
		Posts:      NewPostRepository(seed.Posts()...),
		Accounts:   NewAccountRepository(seed.Accounts()...),
		Audit:      NewAuditRepository(auditCapacity),
	}
}

func maxID[T interface{ Identity() int64 }](items []T) int64 {
	var highest int64
	for _, it := range items {
		if id := it.Identity(); id > highest {
			highest = id
		}
	}
	return highest
}

