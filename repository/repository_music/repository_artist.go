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

// txRunner abstracts mongo.WithTransaction so the transactional paths
// can run against fakes without a live session.
type txRunner func(ctx context.Context, client mongo.Client, fn func(context.Context) error) error

type artistRepository struct {
	db         mongo.Database
	collection string
	withTx     txRunner
}

func NewArtistRepository(db mongo.Database, collection string) domain_music.ArtistRepository {
	return &artistRepository{
		db:         db,
		collection: collection,
		withTx:     mongo.WithTransaction,
	}
}

func (r *artistRepository) Create(ctx context.Context, artist *domain_music.Artist) error {
	if artist.ID.IsZero() {
		artist.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	artist.CreatedAt = now
	artist.UpdatedAt = now
	artist.OrderName = domain_util.OrderName(artist.StageName)
	artist.NamePinyin = domain_util.PinyinKey(artist.StageName)

	if _, err := r.db.Collection(r.collection).InsertOne(ctx, artist); err != nil {
		if mongo.IsDuplicateKey(err) {
			return fmt.Errorf("%w: stage name taken or user already has an artist profile", domain.ErrConflict)
		}
		return fmt.Errorf("%w: insert artist: %v", domain.ErrStorage, err)
	}
	return nil
}

func (r *artistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain_music.Artist, error) {
	var artist domain_music.Artist
	err := r.db.Collection(r.collection).FindOne(ctx, bson.M{"_id": id}).Decode(&artist)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: artist %s", domain.ErrNotFound, id.Hex())
		}
		return nil, fmt.Errorf("%w: get artist: %v", domain.ErrStorage, err)
	}
	return &artist, nil
}

func (r *artistRepository) GetPaginated(ctx context.Context, page domain.Page) ([]domain_music.Artist, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "order_name", Value: 1}}).
		SetSkip(page.Offset).
		SetLimit(page.Limit)

	cursor, err := r.db.Collection(r.collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list artists: %v", domain.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var artists []domain_music.Artist
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, fmt.Errorf("%w: decode artists: %v", domain.ErrStorage, err)
	}
	return artists, nil
}

func (r *artistRepository) Update(ctx context.Context, artist *domain_music.Artist) error {
	artist.UpdatedAt = time.Now().UTC()
	artist.OrderName = domain_util.OrderName(artist.StageName)
	artist.NamePinyin = domain_util.PinyinKey(artist.StageName)

	res, err := r.db.Collection(r.collection).UpdateOne(ctx,
		bson.M{"_id": artist.ID},
		bson.M{"$set": artist},
	)
	if err != nil {
		if mongo.IsDuplicateKey(err) {
			return fmt.Errorf("%w: stage name taken", domain.ErrConflict)
		}
		return fmt.Errorf("%w: update artist: %v", domain.ErrStorage, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: artist %s", domain.ErrNotFound, artist.ID.Hex())
	}
	return nil
}

// DeleteCascade removes the artist and everything hanging off it: albums,
// songs, playlist tracks pointing at those songs, and social edges
// targeting the artist, its albums, or its songs. One transaction.
func (r *artistRepository) DeleteCascade(ctx context.Context, id primitive.ObjectID) error {
	return r.withTx(ctx, r.db.Client(), func(txCtx context.Context) error {
		deleted, err := r.db.Collection(r.collection).DeleteOne(txCtx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("%w: delete artist: %v", domain.ErrStorage, err)
		}
		if deleted == 0 {
			return fmt.Errorf("%w: artist %s", domain.ErrNotFound, id.Hex())
		}

		albumIDs, err := collectIDs(txCtx, r.db.Collection(domain.CollectionAlbum), bson.M{"artist_id": id})
		if err != nil {
			return err
		}
		songIDs, err := collectIDs(txCtx, r.db.Collection(domain.CollectionSong), bson.M{"artist_id": id})
		if err != nil {
			return err
		}

		if _, err := r.db.Collection(domain.CollectionAlbum).DeleteMany(txCtx, bson.M{"artist_id": id}); err != nil {
			return fmt.Errorf("%w: delete albums: %v", domain.ErrStorage, err)
		}
		if _, err := r.db.Collection(domain.CollectionSong).DeleteMany(txCtx, bson.M{"artist_id": id}); err != nil {
			return fmt.Errorf("%w: delete songs: %v", domain.ErrStorage, err)
		}
		if len(songIDs) > 0 {
			if _, err := r.db.Collection(domain.CollectionPlaylistTrack).DeleteMany(txCtx, bson.M{"song_id": bson.M{"$in": songIDs}}); err != nil {
				return fmt.Errorf("%w: delete playlist tracks: %v", domain.ErrStorage, err)
			}
		}
		return deleteEdgesForTargets(txCtx, r.db, map[domain.TargetKind][]primitive.ObjectID{
			domain.TargetArtist: {id},
			domain.TargetAlbum:  albumIDs,
			domain.TargetSong:   songIDs,
		})
	})
}

func collectIDs(ctx context.Context, coll mongo.Collection, filter bson.M) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: collect ids: %v", domain.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode ids: %v", domain.ErrStorage, err)
	}
	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

func deleteEdgesForTargets(ctx context.Context, db mongo.Database, targets map[domain.TargetKind][]primitive.ObjectID) error {
	edges := db.Collection(domain.CollectionSocialEdge)
	for kind, ids := range targets {
		if len(ids) == 0 {
			continue
		}
		filter := bson.M{
			"target_id":   bson.M{"$in": ids},
			"target_kind": kind,
		}
		if _, err := edges.DeleteMany(ctx, filter); err != nil {
			return fmt.Errorf("%w: delete %s edges: %v", domain.ErrStorage, kind, err)
		}
	}
	return nil
}
