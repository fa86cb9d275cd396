package repository_music

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
	"github.com/soundhaven/soundhaven/domain/domain_music"
	"github.com/soundhaven/soundhaven/mongo"
)

type playlistRepository struct {
	db         mongo.Database
	collection string
	withTx     txRunner
}

func NewPlaylistRepository(db mongo.Database, collection string) domain_music.PlaylistRepository {
	return &playlistRepository{
		db:         db,
		collection: collection,
		withTx:     mongo.WithTransaction,
	}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *domain_music.Playlist) error {
	if playlist.ID.IsZero() {
		playlist.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now

	if _, err := r.db.Collection(r.collection).InsertOne(ctx, playlist); err != nil {
		return fmt.Errorf("%w: insert playlist: %v", domain.ErrStorage, err)
	}
	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain_music.Playlist, error) {
	var playlist domain_music.Playlist
	err := r.db.Collection(r.collection).FindOne(ctx, bson.M{"_id": id}).Decode(&playlist)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: playlist %s", domain.ErrNotFound, id.Hex())
		}
		return nil, fmt.Errorf("%w: get playlist: %v", domain.ErrStorage, err)
	}
	return &playlist, nil
}

func (r *playlistRepository) GetByOwner(ctx context.Context, ownerID primitive.ObjectID, page domain.Page) ([]domain_music.Playlist, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetSkip(page.Offset).
		SetLimit(page.Limit)
	return r.find(ctx, bson.M{"owner_id": ownerID}, opts)
}

func (r *playlistRepository) GetPublic(ctx context.Context, page domain.Page) ([]domain_music.Playlist, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetSkip(page.Offset).
		SetLimit(page.Limit)
	return r.find(ctx, bson.M{"is_public": true}, opts)
}

func (r *playlistRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain_music.Playlist, error) {
	cursor, err := r.db.Collection(r.collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list playlists: %v", domain.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var playlists []domain_music.Playlist
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("%w: decode playlists: %v", domain.ErrStorage, err)
	}
	return playlists, nil
}

func (r *playlistRepository) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	count, err := r.db.Collection(r.collection).CountDocuments(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("%w: count playlists: %v", domain.ErrStorage, err)
	}
	return count, nil
}

func (r *playlistRepository) Update(ctx context.Context, playlist *domain_music.Playlist) error {
	playlist.UpdatedAt = time.Now().UTC()

	res, err := r.db.Collection(r.collection).UpdateOne(ctx,
		bson.M{"_id": playlist.ID},
		bson.M{"$set": playlist},
	)
	if err != nil {
		return fmt.Errorf("%w: update playlist: %v", domain.ErrStorage, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: playlist %s", domain.ErrNotFound, playlist.ID.Hex())
	}
	return nil
}

// DeleteCascade removes the playlist, all of its track rows, and edges
// targeting the playlist. Song edges are untouched.
func (r *playlistRepository) DeleteCascade(ctx context.Context, id primitive.ObjectID) error {
	return r.withTx(ctx, r.db.Client(), func(txCtx context.Context) error {
		deleted, err := r.db.Collection(r.collection).DeleteOne(txCtx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("%w: delete playlist: %v", domain.ErrStorage, err)
		}
		if deleted == 0 {
			return fmt.Errorf("%w: playlist %s", domain.ErrNotFound, id.Hex())
		}
		if _, err := r.db.Collection(domain.CollectionPlaylistTrack).DeleteMany(txCtx, bson.M{"playlist_id": id}); err != nil {
			return fmt.Errorf("%w: delete playlist tracks: %v", domain.ErrStorage, err)
		}
		return deleteEdgesForTargets(txCtx, r.db, map[domain.TargetKind][]primitive.ObjectID{
			domain.TargetPlaylist: {id},
		})
	})
}
