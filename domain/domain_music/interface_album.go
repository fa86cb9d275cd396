package domain_music

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
)

type AlbumRepository interface {
	Create(ctx context.Context, album *Album) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Album, error)
	GetByArtist(ctx context.Context, artistID primitive.ObjectID, page domain.Page) ([]Album, error)
	Update(ctx context.Context, album *Album) error
	DeleteCascade(ctx context.Context, id primitive.ObjectID) error
}
