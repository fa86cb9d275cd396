package domain_music

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
)

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *Playlist) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Playlist, error)
	GetByOwner(ctx context.Context, ownerID primitive.ObjectID, page domain.Page) ([]Playlist, error)
	GetPublic(ctx context.Context, page domain.Page) ([]Playlist, error)
	CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
	Update(ctx context.Context, playlist *Playlist) error
	DeleteCascade(ctx context.Context, id primitive.ObjectID) error
}
