package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devhub/admin-console/internal/infrastructure/db/seed"
)

// Repositories bundles one repository per aggregate, all backed by one database.
type Repositories struct {
	Admins     *AdminRepository
	Categories *CategoryRepository
	Posts      *PostRepository
	Accounts   *AccountRepository
	Audit      *AuditRepository
}

func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Admins:     NewAdminRepository(db),
		Categories: NewCategoryRepository(db),
		Posts:      NewPostRepository(db),
		Accounts:   NewAccountRepository(db),
		Audit:      NewAuditRepository(db),
	}
}

// EnsureIndexes creates the indexes of every collection.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{collectionAdmins, r.Admins.EnsureIndexes},
		{collectionCategories, r.Categories.EnsureIndexes},
		{collectionPosts, r.Posts.EnsureIndexes},
		{collectionAccounts, r.Accounts.EnsureIndexes},
		{collectionAudit, r.Audit.EnsureIndexes},
	}
	for _, s := range steps {
		if err := s.fn(ctx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", s.name, err)
		}
	}
	return nil
}

// Seed inserts the fixture data into empty collections. Collections that
// already hold documents are left untouched, so Seed is safe on every start.
func Seed(ctx context.Context, db *mongo.Database) error {
	categories := seed.Categories()
	if err := seedCollection(ctx, db.Collection(collectionCategories), toDocs(categories)); err != nil {
		return err
	}
	var highest int64
	for _, c := range categories {
		if c.ID > highest {
			highest = c.ID
		}
	}
	if err := newCounters(db).atLeast(ctx, sequenceCategory, highest); err != nil {
		return fmt.Errorf("seed counters: %w", err)
	}

	if err := seedCollection(ctx, db.Collection(collectionPosts), toDocs(seed.Posts())); err != nil {
		return err
	}
	return seedCollection(ctx, db.Collection(collectionAccounts), toDocs(seed.Accounts()))
}

func seedCollection(ctx context.Context, col *mongo.Collection, docs []interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count %s: %w", col.Name(), err)
	}
	if n > 0 {
		return nil
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed %s: %w", col.Name(), err)
	}
	return nil
}

func toDocs[T any](items []T) []interface{} {
	out := make([]interface{}, len(items))
	for i := range items {
		out[i] = items[i]
	}
	return out
}

func uniqueIndex() *options.IndexOptions {
	return options.Index().SetUnique(true)
}
