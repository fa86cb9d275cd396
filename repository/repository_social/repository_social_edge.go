package repository_social

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soundhaven/soundhaven/domain"
	"github.com/soundhaven/soundhaven/domain/domain_social"
	"github.com/soundhaven/soundhaven/mongo"
)

type socialEdgeRepository struct {
	db         mongo.Database
	collection string
}

func NewSocialEdgeRepository(db mongo.Database, collection string) domain_social.SocialEdgeRepository {
	return &socialEdgeRepository{
		db:         db,
		collection: collection,
	}
}

func keyFilter(key domain_social.EdgeKey) bson.M {
	return bson.M{
		"subject_id":    key.SubjectID,
		"target_id":     key.TargetID,
		"target_kind":   key.TargetKind,
		"relation_kind": key.RelationKind,
	}
}

// Create relies on the unique tuple index: losing an insert race yields
// a duplicate-key error, and the winning row is fetched and returned so
// repeated creates always converge on the same edge.
func (r *socialEdgeRepository) Create(ctx context.Context, key domain_social.EdgeKey) (*domain_social.SocialEdge, error) {
	if existing, err := r.get(ctx, key); err == nil {
		return existing, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	edge := &domain_social.SocialEdge{
		ID:           primitive.NewObjectID(),
		SubjectID:    key.SubjectID,
		TargetID:     key.TargetID,
		TargetKind:   key.TargetKind,
		RelationKind: key.RelationKind,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := r.db.Collection(r.collection).InsertOne(ctx, edge); err != nil {
		if mongo.IsDuplicateKey(err) {
			return r.get(ctx, key)
		}
		return nil, fmt.Errorf("%w: insert edge: %v", domain.ErrStorage, err)
	}
	return edge, nil
}

func (r *socialEdgeRepository) get(ctx context.Context, key domain_social.EdgeKey) (*domain_social.SocialEdge, error) {
	var edge domain_social.SocialEdge
	err := r.db.Collection(r.collection).FindOne(ctx, keyFilter(key)).Decode(&edge)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s edge %s -> %s", domain.ErrNotFound, key.RelationKind, key.SubjectID.Hex(), key.TargetID.Hex())
		}
		return nil, fmt.Errorf("%w: get edge: %v", domain.ErrStorage, err)
	}
	return &edge, nil
}

func (r *socialEdgeRepository) Delete(ctx context.Context, key domain_social.EdgeKey) error {
	deleted, err := r.db.Collection(r.collection).DeleteOne(ctx, keyFilter(key))
	if err != nil {
		return fmt.Errorf("%w: delete edge: %v", domain.ErrStorage, err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: %s edge %s -> %s", domain.ErrNotFound, key.RelationKind, key.SubjectID.Hex(), key.TargetID.Hex())
	}
	return nil
}

func (r *socialEdgeRepository) Exists(ctx context.Context, key domain_social.EdgeKey) (bool, error) {
	count, err := r.db.Collection(r.collection).CountDocuments(ctx, keyFilter(key))
	if err != nil {
		return false, fmt.Errorf("%w: edge exists: %v", domain.ErrStorage, err)
	}
	return count > 0, nil
}

func (r *socialEdgeRepository) ListBySubject(ctx context.Context, subjectID primitive.ObjectID, relation domain.RelationKind, targetKind *domain.TargetKind, page domain.Page) ([]domain_social.SocialEdge, error) {
	filter := bson.M{"subject_id": subjectID, "relation_kind": relation}
	if targetKind != nil {
		filter["target_kind"] = *targetKind
	}
	return r.find(ctx, filter, page)
}

func (r *socialEdgeRepository) ListByTarget(ctx context.Context, targetID primitive.ObjectID, relation domain.RelationKind, targetKind *domain.TargetKind, page domain.Page) ([]domain_social.SocialEdge, error) {
	filter := bson.M{"target_id": targetID, "relation_kind": relation}
	if targetKind != nil {
		filter["target_kind"] = *targetKind
	}
	return r.find(ctx, filter, page)
}

func (r *socialEdgeRepository) find(ctx context.Context, filter bson.M, page domain.Page) ([]domain_social.SocialEdge, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Offset).
		SetLimit(page.Limit)
	cursor, err := r.db.Collection(r.collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list edges: %v", domain.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var edges []domain_social.SocialEdge
	if err := cursor.All(ctx, &edges); err != nil {
		return nil, fmt.Errorf("%w: decode edges: %v", domain.ErrStorage, err)
	}
	return edges, nil
}

func (r *socialEdgeRepository) CountBySubject(ctx context.Context, subjectID primitive.ObjectID, relation domain.RelationKind) (int64, error) {
	count, err := r.db.Collection(r.collection).CountDocuments(ctx, bson.M{
		"subject_id":    subjectID,
		"relation_kind": relation,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: count edges: %v", domain.ErrStorage, err)
	}
	return count, nil
}

func (r *socialEdgeRepository) CountByTarget(ctx context.Context, targetID primitive.ObjectID, relation domain.RelationKind) (int64, error) {
	count, err := r.db.Collection(r.collection).CountDocuments(ctx, bson.M{
		"target_id":     targetID,
		"relation_kind": relation,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: count edges: %v", domain.ErrStorage, err)
	}
	return count, nil
}
