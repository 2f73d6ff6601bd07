package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/contentforge/admin-api/internal/core/domain"
)

// SeedIfEmpty loads the mock users and prompt versions into collections that
// hold no documents yet. Existing data is never touched.
func SeedIfEmpty(ctx context.Context, db *mongo.Database, users []*domain.User, prompts []*domain.PromptVersion) error {
	empty, err := isEmpty(ctx, db.Collection(collectionUsers))
	if err != nil {
		return err
	}
	if empty {
		if err := NewUserRepository(db).InsertMany(ctx, users); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	empty, err = isEmpty(ctx, db.Collection(collectionPrompts))
	if err != nil {
		return err
	}
	if empty {
		if err := NewPromptRepository(db).InsertMany(ctx, prompts); err != nil {
			return fmt.Errorf("seed prompts: %w", err)
		}
	}
	return nil
}

func isEmpty(ctx context.Context, coll *mongo.Collection) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return false, fmt.Errorf("count %s: %w", coll.Name(), err)
	}
	return n == 0, nil
}
