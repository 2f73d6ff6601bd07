package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/contentforge/admin-api/internal/core/domain"
)

const (
	collectionPrompts = "prompt_versions"
	// concurrent creates for the same type race on the unique
	// (prompt_type, version) index; the loser retries with the next number
	maxCreateAttempts   = 3
	maxActivateAttempts = 5
)

type PromptRepository struct {
	col *mongo.Collection
}

func NewPromptRepository(db *mongo.Database) *PromptRepository {
	return &PromptRepository{col: db.Collection(collectionPrompts)}
}

func (r *PromptRepository) Create(ctx context.Context, v *domain.PromptVersion) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		latest, err := r.latestVersion(ctx, v.PromptType)
		if err != nil {
			return err
		}
		v.Version = latest + 1

		_, err = r.col.InsertOne(ctx, v)
		if err == nil {
			return nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert prompt version: %w", err)
		}
		if exists, _ := r.exists(ctx, v.ID); exists {
			return domain.ErrConflict
		}
	}
	return fmt.Errorf("insert prompt version: %w: version number contention", domain.ErrConflict)
}

func (r *PromptRepository) Update(ctx context.Context, v *domain.PromptVersion) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": v.ID}, v)
	if err != nil {
		return fmt.Errorf("update prompt version: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PromptRepository) FindByID(ctx context.Context, id string) (*domain.PromptVersion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v domain.PromptVersion
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find prompt version: %w", err)
	}
	return &v, nil
}

func (r *PromptRepository) ListByType(ctx context.Context, t domain.PromptType) ([]*domain.PromptVersion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"prompt_type": string(t)}, options.Find().SetSort(bson.D{{Key: "version", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list prompt versions: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]*domain.PromptVersion, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode prompt versions: %w", err)
	}
	return out, nil
}

// Activate makes id the single active version of its type. The partial
// unique index from activeVersionIndex rejects a second active document, so
// a concurrent activation that promotes first makes this one archive the
// winner and try again. The last activation to land wins.
func (r *PromptRepository) Activate(ctx context.Context, id string, at time.Time) (*domain.PromptVersion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var target domain.PromptVersion
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&target); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find prompt version: %w", err)
	}

	if target.Status == domain.VersionActive {
		return &target, nil
	}

	for attempt := 0; attempt < maxActivateAttempts; attempt++ {
		if _, err := r.col.UpdateMany(ctx, otherActiveFilter(target.PromptType, id), archiveUpdate(at)); err != nil {
			return nil, fmt.Errorf("archive prompt versions: %w", err)
		}

		var updated domain.PromptVersion
		err := r.col.FindOneAndUpdate(ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"status": string(domain.VersionActive), "updated_at": at}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		switch {
		case err == nil:
			return &updated, nil
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, domain.ErrNotFound
		case !mongo.IsDuplicateKeyError(err):
			return nil, fmt.Errorf("activate prompt version: %w", err)
		}
	}
	return nil, fmt.Errorf("activate prompt version: %w: activation contention", domain.ErrConflict)
}

// otherActiveFilter matches every active version of t except id.
func otherActiveFilter(t domain.PromptType, id string) bson.M {
	return bson.M{
		"prompt_type": string(t),
		"status":      string(domain.VersionActive),
		"_id":         bson.M{"$ne": id},
	}
}

func archiveUpdate(at time.Time) bson.M {
	return bson.M{"$set": bson.M{"status": string(domain.VersionArchived), "updated_at": at}}
}

// activeVersionIndex allows at most one active version per prompt type.
func activeVersionIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: "prompt_type", Value: 1}},
		Options: options.Index().
			SetName("one_active_per_type").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": string(domain.VersionActive)}),
	}
}

// InsertMany is used to seed an empty collection; versions keep their numbers.
func (r *PromptRepository) InsertMany(ctx context.Context, versions []*domain.PromptVersion) error {
	if len(versions) == 0 {
		return nil
	}
	docs := make([]any, 0, len(versions))
	for _, v := range versions {
		docs = append(docs, v)
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert prompt versions: %w", err)
	}
	return nil
}

func (r *PromptRepository) latestVersion(ctx context.Context, t domain.PromptType) (int, error) {
	var latest struct {
		Version int `bson:"version"`
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}}).SetProjection(bson.M{"version": 1})
	err := r.col.FindOne(ctx, bson.M{"prompt_type": string(t)}, opts).Decode(&latest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, fmt.Errorf("latest prompt version: %w", err)
	}
	return latest.Version, nil
}

func (r *PromptRepository) exists(ctx context.Context, id string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
