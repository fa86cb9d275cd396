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
	"github.com/soundhaven/soundhaven/domain/domain_util"
	"github.com/soundhaven/soundhaven/mongo"
)

type songRepository struct {
	db         mongo.Database
	collection string
	withTx     txRunner
}

func NewSongRepository(db mongo.Database, collection string) domain_music.SongRepository {
	return &songRepository{
		db:         db,
		collection: collection,
		withTx:     mongo.WithTransaction,
	}
}

func (r *songRepository) Create(ctx context.Context, song *domain_music.Song) error {
	if song.ID.IsZero() {
		song.ID = primitive.NewObjectID()
	}
	if song.TrackNumber == 0 {
		song.TrackNumber = 1
	}
	if song.DiscNumber == 0 {
		song.DiscNumber = 1
	}
	now := time.Now().UTC()
	song.CreatedAt = now
	song.UpdatedAt = now
	song.OrderTitle = domain_util.OrderName(song.Title)
	song.TitlePinyin = domain_util.PinyinKey(song.Title)

	if _, err := r.db.Collection(r.collection).InsertOne(ctx, song); err != nil {
		return fmt.Errorf("%w: insert song: %v", domain.ErrStorage, err)
	}
	return nil
}

func (r *songRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain_music.Song, error) {
	var song domain_music.Song
	err := r.db.Collection(r.collection).FindOne(ctx, bson.M{"_id": id}).Decode(&song)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: song %s", domain.ErrNotFound, id.Hex())
		}
		return nil, fmt.Errorf("%w: get song: %v", domain.ErrStorage, err)
	}
	return &song, nil
}

func (r *songRepository) GetByAlbum(ctx context.Context, albumID primitive.ObjectID, page domain.Page) ([]domain_music.Song, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "disc_number", Value: 1}, {Key: "track_number", Value: 1}}).
		SetSkip(page.Offset).
		SetLimit(page.Limit)
	return r.find(ctx, bson.M{"album_id": albumID}, opts)
}

func (r *songRepository) GetPopular(ctx context.Context, page domain.Page) ([]domain_music.Song, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "play_count", Value: -1}}).
		SetSkip(page.Offset).
		SetLimit(page.Limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *songRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain_music.Song, error) {
	cursor, err := r.db.Collection(r.collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list songs: %v", domain.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var songs []domain_music.Song
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("%w: decode songs: %v", domain.ErrStorage, err)
	}
	return songs, nil
}

func (r *songRepository) Update(ctx context.Context, song *domain_music.Song) error {
	song.UpdatedAt = time.Now().UTC()
	song.OrderTitle = domain_util.OrderName(song.Title)
	song.TitlePinyin = domain_util.PinyinKey(song.Title)

	res, err := r.db.Collection(r.collection).UpdateOne(ctx,
		bson.M{"_id": song.ID},
		bson.M{"$set": song},
	)
	if err != nil {
		return fmt.Errorf("%w: update song: %v", domain.ErrStorage, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: song %s", domain.ErrNotFound, song.ID.Hex())
	}
	return nil
}

// DeleteCascade removes the song, its playlist tracks, and edges
// targeting it. One transaction.
func (r *songRepository) DeleteCascade(ctx context.Context, id primitive.ObjectID) error {
	return r.withTx(ctx, r.db.Client(), func(txCtx context.Context) error {
		deleted, err := r.db.Collection(r.collection).DeleteOne(txCtx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("%w: delete song: %v", domain.ErrStorage, err)
		}
		if deleted == 0 {
			return fmt.Errorf("%w: song %s", domain.ErrNotFound, id.Hex())
		}
		if _, err := r.db.Collection(domain.CollectionPlaylistTrack).DeleteMany(txCtx, bson.M{"song_id": id}); err != nil {
			return fmt.Errorf("%w: delete playlist tracks: %v", domain.ErrStorage, err)
		}
		return deleteEdgesForTargets(txCtx, r.db, map[domain.TargetKind][]primitive.ObjectID{
			domain.TargetSong: {id},
		})
	})
}

// IncrementPlayCount is a single atomic $inc; no transaction needed.
func (r *songRepository) IncrementPlayCount(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.Collection(r.collection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"play_count": 1},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return fmt.Errorf("%w: increment play count: %v", domain.ErrStorage, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: song %s", domain.ErrNotFound, id.Hex())
	}
	return nil
}
