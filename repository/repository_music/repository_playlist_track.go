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

type playlistTrackRepository struct {
	db         mongo.Database
	collection string
	withTx     txRunner
}

func NewPlaylistTrackRepository(db mongo.Database, collection string) domain_music.PlaylistTrackRepository {
	return &playlistTrackRepository{
		db:         db,
		collection: collection,
		withTx:     mongo.WithTransaction,
	}
}

// Add is idempotent on the (playlist, song) pair. The unique index on
// the pair closes the check-then-insert race: a duplicate-key error
// means another writer won, so the winning row is returned.
func (r *playlistTrackRepository) Add(ctx context.Context, playlistID, songID, addedBy primitive.ObjectID, position *int) (*domain_music.PlaylistTrack, error) {
	if existing, err := r.get(ctx, playlistID, songID); err == nil {
		return existing, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	var pos int
	if position != nil {
		pos = *position
	} else {
		max, err := r.maxPosition(ctx, playlistID)
		if err != nil {
			return nil, err
		}
		pos = max + 1
	}

	track := &domain_music.PlaylistTrack{
		ID:         primitive.NewObjectID(),
		PlaylistID: playlistID,
		SongID:     songID,
		Position:   pos,
		AddedBy:    addedBy,
		AddedAt:    time.Now().UTC(),
	}
	if _, err := r.db.Collection(r.collection).InsertOne(ctx, track); err != nil {
		if mongo.IsDuplicateKey(err) {
			return r.get(ctx, playlistID, songID)
		}
		return nil, fmt.Errorf("%w: insert playlist track: %v", domain.ErrStorage, err)
	}
	return track, nil
}

func (r *playlistTrackRepository) get(ctx context.Context, playlistID, songID primitive.ObjectID) (*domain_music.PlaylistTrack, error) {
	var track domain_music.PlaylistTrack
	err := r.db.Collection(r.collection).FindOne(ctx, bson.M{
		"playlist_id": playlistID,
		"song_id":     songID,
	}).Decode(&track)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: song %s not in playlist %s", domain.ErrNotFound, songID.Hex(), playlistID.Hex())
		}
		return nil, fmt.Errorf("%w: get playlist track: %v", domain.ErrStorage, err)
	}
	return &track, nil
}

// maxPosition reports the highest position in the playlist, 0 when the
// playlist holds no tracks.
func (r *playlistTrackRepository) maxPosition(ctx context.Context, playlistID primitive.ObjectID) (int, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "position", Value: -1}}).
		SetLimit(1)
	cursor, err := r.db.Collection(r.collection).Find(ctx, bson.M{"playlist_id": playlistID}, opts)
	if err != nil {
		return 0, fmt.Errorf("%w: max position: %v", domain.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return 0, nil
	}
	var track domain_music.PlaylistTrack
	if err := cursor.Decode(&track); err != nil {
		return 0, fmt.Errorf("%w: decode playlist track: %v", domain.ErrStorage, err)
	}
	return track.Position, nil
}

func (r *playlistTrackRepository) Remove(ctx context.Context, playlistID, songID primitive.ObjectID) error {
	deleted, err := r.db.Collection(r.collection).DeleteOne(ctx, bson.M{
		"playlist_id": playlistID,
		"song_id":     songID,
	})
	if err != nil {
		return fmt.Errorf("%w: delete playlist track: %v", domain.ErrStorage, err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: song %s not in playlist %s", domain.ErrNotFound, songID.Hex(), playlistID.Hex())
	}
	return nil
}

func (r *playlistTrackRepository) ListSongs(ctx context.Context, playlistID primitive.ObjectID, page domain.Page) ([]domain_music.Song, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"playlist_id": playlistID}},
		{"$sort": bson.M{"position": 1, "added_at": 1}},
		{"$skip": page.Offset},
		{"$limit": page.Limit},
		{"$lookup": bson.M{
			"from":         domain.CollectionSong,
			"localField":   "song_id",
			"foreignField": "_id",
			"as":           "song",
		}},
		{"$unwind": "$song"},
		{"$replaceRoot": bson.M{"newRoot": "$song"}},
	}
	cursor, err := r.db.Collection(r.collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: list playlist songs: %v", domain.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var songs []domain_music.Song
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("%w: decode playlist songs: %v", domain.ErrStorage, err)
	}
	return songs, nil
}

// Reorder commits the valid subset of the batch in one transaction.
// Moves naming a song that is not in the playlist match nothing and are
// silently skipped; the rest land together or not at all.
func (r *playlistTrackRepository) Reorder(ctx context.Context, playlistID primitive.ObjectID, moves []domain_music.TrackMove) error {
	if len(moves) == 0 {
		return nil
	}
	return r.withTx(ctx, r.db.Client(), func(txCtx context.Context) error {
		for _, move := range moves {
			_, err := r.db.Collection(r.collection).UpdateOne(txCtx,
				bson.M{"playlist_id": playlistID, "song_id": move.SongID},
				bson.M{"$set": bson.M{"position": move.NewPosition}},
			)
			if err != nil {
				return fmt.Errorf("%w: reorder playlist track: %v", domain.ErrStorage, err)
			}
		}
		return nil
	})
}
