package domain_music

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
)

type SongRepository interface {
	Create(ctx context.Context, song *Song) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Song, error)
	GetByAlbum(ctx context.Context, albumID primitive.ObjectID, page domain.Page) ([]Song, error)
	GetPopular(ctx context.Context, page domain.Page) ([]Song, error)
	Update(ctx context.Context, song *Song) error
	DeleteCascade(ctx context.Context, id primitive.ObjectID) error
	// IncrementPlayCount adds one play atomically; ErrNotFound when the
	// song does not exist.
	IncrementPlayCount(ctx context.Context, id primitive.ObjectID) error
}
