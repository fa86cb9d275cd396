package domain_social

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
)

type SocialEdgeRepository interface {
	// Create inserts the edge if absent and returns the stored row either
	// way. A duplicate-key race resolves to the winning row, never an
	// error.
	Create(ctx context.Context, key EdgeKey) (*SocialEdge, error)

	// Delete removes the edge; ErrNotFound when it does not exist.
	Delete(ctx context.Context, key EdgeKey) error

	Exists(ctx context.Context, key EdgeKey) (bool, error)

	// ListBySubject returns edges created by subjectID, newest first.
	// targetKind narrows the result when non-nil.
	ListBySubject(ctx context.Context, subjectID primitive.ObjectID, relation domain.RelationKind, targetKind *domain.TargetKind, page domain.Page) ([]SocialEdge, error)

	// ListByTarget returns edges pointing at targetID, newest first.
	ListByTarget(ctx context.Context, targetID primitive.ObjectID, relation domain.RelationKind, targetKind *domain.TargetKind, page domain.Page) ([]SocialEdge, error)

	CountBySubject(ctx context.Context, subjectID primitive.ObjectID, relation domain.RelationKind) (int64, error)
	CountByTarget(ctx context.Context, targetID primitive.ObjectID, relation domain.RelationKind) (int64, error)
}
