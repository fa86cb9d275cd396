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

type albumRepository struct {
	db         mongo.Database
	collection string
	withTx     txRunner
}

func NewAlbumRepository(db mongo.Database, collection string) domain_music.AlbumRepository {
	return &albumRepository{
		db:         db,
		collection: collection,
		withTx:     mongo.WithTransaction,
	}
}

func (r *albumRepository) Create(ctx context.Context, album *domain_music.Album) error {
	if album.ID.IsZero() {
		album.ID = primitive.NewObjectID()
	}
	if album.AlbumType == "" {
		album.AlbumType = domain_music.AlbumTypeAlbum
	}
	now := time.Now().UTC()
	album.CreatedAt = now
	album.UpdatedAt = now
	album.OrderTitle = domain_util.OrderName(album.Title)
	album.TitlePinyin = domain_util.PinyinKey(album.Title)

	if _, err := r.db.Collection(r.collection).InsertOne(ctx, album); err != nil {
		return fmt.Errorf("%w: insert album: %v", domain.ErrStorage, err)
	}
	return nil
}

func (r *albumRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain_music.Album, error) {
	var album domain_music.Album
	err := r.db.Collection(r.collection).FindOne(ctx, bson.M{"_id": id}).Decode(&album)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: album %s", domain.ErrNotFound, id.Hex())
		}
		return nil, fmt.Errorf("%w: get album: %v", domain.ErrStorage, err)
	}
	return &album, nil
}

func (r *albumRepository) GetByArtist(ctx context.Context, artistID primitive.ObjectID, page domain.Page) ([]domain_music.Album, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "release_date", Value: -1}}).
		SetSkip(page.Offset).
		SetLimit(page.Limit)

	cursor, err := r.db.Collection(r.collection).Find(ctx, bson.M{"artist_id": artistID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list albums: %v", domain.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var albums []domain_music.Album
	if err := cursor.All(ctx, &albums); err != nil {
		return nil, fmt.Errorf("%w: decode albums: %v", domain.ErrStorage, err)
	}
	return albums, nil
}

func (r *albumRepository) Update(ctx context.Context, album *domain_music.Album) error {
	album.UpdatedAt = time.Now().UTC()
	album.OrderTitle = domain_util.OrderName(album.Title)
	album.TitlePinyin = domain_util.PinyinKey(album.Title)

	res, err := r.db.Collection(r.collection).UpdateOne(ctx,
		bson.M{"_id": album.ID},
		bson.M{"$set": album},
	)
	if err != nil {
		return fmt.Errorf("%w: update album: %v", domain.ErrStorage, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: album %s", domain.ErrNotFound, album.ID.Hex())
	}
	return nil
}

// DeleteCascade removes the album, its songs, tracks referencing those
// songs, and edges targeting the album or its songs. One transaction.
func (r *albumRepository) DeleteCascade(ctx context.Context, id primitive.ObjectID) error {
	return r.withTx(ctx, r.db.Client(), func(txCtx context.Context) error {
		deleted, err := r.db.Collection(r.collection).DeleteOne(txCtx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("%w: delete album: %v", domain.ErrStorage, err)
		}
		if deleted == 0 {
			return fmt.Errorf("%w: album %s", domain.ErrNotFound, id.Hex())
		}

		songIDs, err := collectIDs(txCtx, r.db.Collection(domain.CollectionSong), bson.M{"album_id": id})
		if err != nil {
			return err
		}
		if _, err := r.db.Collection(domain.CollectionSong).DeleteMany(txCtx, bson.M{"album_id": id}); err != nil {
			return fmt.Errorf("%w: delete songs: %v", domain.ErrStorage, err)
		}
		if len(songIDs) > 0 {
			if _, err := r.db.Collection(domain.CollectionPlaylistTrack).DeleteMany(txCtx, bson.M{"song_id": bson.M{"$in": songIDs}}); err != nil {
				return fmt.Errorf("%w: delete playlist tracks: %v", domain.ErrStorage, err)
			}
		}
		return deleteEdgesForTargets(txCtx, r.db, map[domain.TargetKind][]primitive.ObjectID{
			domain.TargetAlbum: {id},
			domain.TargetSong:  songIDs,
		})
	})
}
