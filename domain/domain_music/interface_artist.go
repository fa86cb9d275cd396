package domain_music

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *Artist) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Artist, error)
	GetPaginated(ctx context.Context, page domain.Page) ([]Artist, error)
	Update(ctx context.Context, artist *Artist) error
	// DeleteCascade removes the artist together with its albums, their
	// songs, and every playlist track or social edge referencing any of
	// them, all inside one transaction.
	DeleteCascade(ctx context.Context, id primitive.ObjectID) error
}
