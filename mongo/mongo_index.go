package mongo

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soundhaven/soundhaven/domain"
)

// CreateIndexes declares the schema's constraints at startup. The unique
// indexes are load-bearing: idempotent social-edge and playlist-track
// inserts depend on the database rejecting the losing writer of a race.
func CreateIndexes(db Database, logger *log.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := db.Collection(domain.CollectionUser)
	createUniqueIndex(ctx, logger, users, bson.D{{Key: "email", Value: 1}}, "email_unique")
	createIndex(ctx, logger, users, bson.D{{Key: "username", Value: 1}}, "username")

	artists := db.Collection(domain.CollectionArtist)
	createUniqueIndex(ctx, logger, artists, bson.D{{Key: "stage_name", Value: 1}}, "stage_name_unique")
	// user_id is optional; uniqueness only applies to artists that are
	// claimed by a user account.
	createPartialUniqueIndex(ctx, logger, artists,
		bson.D{{Key: "user_id", Value: 1}},
		bson.M{"user_id": bson.M{"$type": "objectId"}},
		"user_id_unique")

	albums := db.Collection(domain.CollectionAlbum)
	createIndex(ctx, logger, albums, bson.D{{Key: "artist_id", Value: 1}}, "artist_id")
	createIndex(ctx, logger, albums, bson.D{{Key: "artist_id", Value: 1}, {Key: "release_date", Value: -1}}, "artist_release_compound")
	createIndex(ctx, logger, albums, bson.D{{Key: "order_title", Value: 1}}, "order_title")

	songs := db.Collection(domain.CollectionSong)
	createIndex(ctx, logger, songs, bson.D{{Key: "album_id", Value: 1}, {Key: "track_number", Value: 1}}, "album_track_compound")
	createIndex(ctx, logger, songs, bson.D{{Key: "artist_id", Value: 1}}, "artist_id")
	createIndex(ctx, logger, songs, bson.D{{Key: "play_count", Value: -1}}, "play_count")
	createIndex(ctx, logger, songs, bson.D{{Key: "order_title", Value: 1}}, "order_title")

	playlists := db.Collection(domain.CollectionPlaylist)
	createIndex(ctx, logger, playlists, bson.D{{Key: "owner_id", Value: 1}, {Key: "updated_at", Value: -1}}, "owner_updated_compound")
	createIndex(ctx, logger, playlists, bson.D{{Key: "is_public", Value: 1}, {Key: "updated_at", Value: -1}}, "public_updated_compound")

	tracks := db.Collection(domain.CollectionPlaylistTrack)
	createUniqueIndex(ctx, logger, tracks, bson.D{{Key: "playlist_id", Value: 1}, {Key: "song_id", Value: 1}}, "playlist_song_unique")
	createIndex(ctx, logger, tracks, bson.D{{Key: "playlist_id", Value: 1}, {Key: "position", Value: 1}}, "playlist_position_compound")
	createIndex(ctx, logger, tracks, bson.D{{Key: "song_id", Value: 1}}, "song_id")

	edges := db.Collection(domain.CollectionSocialEdge)
	createUniqueIndex(ctx, logger, edges, bson.D{
		{Key: "subject_id", Value: 1},
		{Key: "target_id", Value: 1},
		{Key: "target_kind", Value: 1},
		{Key: "relation_kind", Value: 1},
	}, "edge_tuple_unique")
	createIndex(ctx, logger, edges, bson.D{
		{Key: "subject_id", Value: 1},
		{Key: "relation_kind", Value: 1},
		{Key: "created_at", Value: -1},
	}, "subject_relation_created_compound")
	createIndex(ctx, logger, edges, bson.D{
		{Key: "target_id", Value: 1},
		{Key: "relation_kind", Value: 1},
		{Key: "created_at", Value: -1},
	}, "target_relation_created_compound")
}

func createIndex(ctx context.Context, logger *log.Logger, collection Collection, keys bson.D, name string) {
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}
	if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
		logger.Error("create index failed", "index", name, "err", err)
	}
}

func createUniqueIndex(ctx context.Context, logger *log.Logger, collection Collection, keys bson.D, name string) {
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
		logger.Error("create unique index failed", "index", name, "err", err)
	}
}

func createPartialUniqueIndex(ctx context.Context, logger *log.Logger, collection Collection, keys bson.D, filter bson.M, name string) {
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetUnique(true).SetPartialFilterExpression(filter),
	}
	if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
		logger.Error("create partial unique index failed", "index", name, "err", err)
	}
}
