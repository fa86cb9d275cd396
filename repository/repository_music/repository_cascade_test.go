package repository_music

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soundhaven/soundhaven/domain"
	"github.com/soundhaven/soundhaven/mongo"
)

// idCursor feeds collectIDs the projected _id documents.
func idCursor(ids ...primitive.ObjectID) *fakeCursor {
	docs := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, bson.M{"_id": id})
	}
	return &fakeCursor{docs: docs}
}

// filterRecorder captures every DeleteMany filter hitting a collection.
type filterRecorder struct {
	filters []bson.M
}

func (r *filterRecorder) hook() func(interface{}) (int64, error) {
	return func(filter interface{}) (int64, error) {
		r.filters = append(r.filters, filter.(bson.M))
		return 1, nil
	}
}

func edgeFilter(kind domain.TargetKind, ids ...primitive.ObjectID) bson.M {
	return bson.M{
		"target_id":   bson.M{"$in": ids},
		"target_kind": kind,
	}
}

func TestDeleteSongCascades(t *testing.T) {
	songID := primitive.NewObjectID()

	songs := &fakeCollection{
		deleteOneFn: func(filter interface{}) (int64, error) {
			assert.Equal(t, bson.M{"_id": songID}, filter)
			return 1, nil
		},
	}
	tracks := &filterRecorder{}
	edges := &filterRecorder{}
	db := &fakeDatabase{collections: map[string]mongo.Collection{
		domain.CollectionSong:          songs,
		domain.CollectionPlaylistTrack: &fakeCollection{deleteManyFn: tracks.hook()},
		domain.CollectionSocialEdge:    &fakeCollection{deleteManyFn: edges.hook()},
	}}

	repo := NewSongRepository(db, domain.CollectionSong).(*songRepository)
	repo.withTx = passthroughTx

	err := repo.DeleteCascade(context.Background(), songID)

	require.NoError(t, err)
	assert.Equal(t, []bson.M{{"song_id": songID}}, tracks.filters)
	assert.Equal(t, []bson.M{edgeFilter(domain.TargetSong, songID)}, edges.filters)
}

func TestDeleteSongCascadeNotFoundStopsShort(t *testing.T) {
	songs := &fakeCollection{
		deleteOneFn: func(interface{}) (int64, error) { return 0, nil },
	}
	tracks := &filterRecorder{}
	edges := &filterRecorder{}
	db := &fakeDatabase{collections: map[string]mongo.Collection{
		domain.CollectionSong:          songs,
		domain.CollectionPlaylistTrack: &fakeCollection{deleteManyFn: tracks.hook()},
		domain.CollectionSocialEdge:    &fakeCollection{deleteManyFn: edges.hook()},
	}}

	repo := NewSongRepository(db, domain.CollectionSong).(*songRepository)
	repo.withTx = passthroughTx

	err := repo.DeleteCascade(context.Background(), primitive.NewObjectID())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, tracks.filters)
	assert.Empty(t, edges.filters)
}

func TestDeletePlaylistCascades(t *testing.T) {
	playlistID := primitive.NewObjectID()

	playlists := &fakeCollection{
		deleteOneFn: func(filter interface{}) (int64, error) {
			assert.Equal(t, bson.M{"_id": playlistID}, filter)
			return 1, nil
		},
	}
	tracks := &filterRecorder{}
	edges := &filterRecorder{}
	db := &fakeDatabase{collections: map[string]mongo.Collection{
		domain.CollectionPlaylist:      playlists,
		domain.CollectionPlaylistTrack: &fakeCollection{deleteManyFn: tracks.hook()},
		domain.CollectionSocialEdge:    &fakeCollection{deleteManyFn: edges.hook()},
	}}

	repo := NewPlaylistRepository(db, domain.CollectionPlaylist).(*playlistRepository)
	repo.withTx = passthroughTx

	err := repo.DeleteCascade(context.Background(), playlistID)

	require.NoError(t, err)
	assert.Equal(t, []bson.M{{"playlist_id": playlistID}}, tracks.filters)
	// Edges pointing at the playlist's songs survive the delete.
	assert.Equal(t, []bson.M{edgeFilter(domain.TargetPlaylist, playlistID)}, edges.filters)
}

func TestDeleteAlbumCascadesToSongs(t *testing.T) {
	albumID := primitive.NewObjectID()
	songA := primitive.NewObjectID()
	songB := primitive.NewObjectID()

	albums := &fakeCollection{
		deleteOneFn: func(filter interface{}) (int64, error) {
			assert.Equal(t, bson.M{"_id": albumID}, filter)
			return 1, nil
		},
	}
	songDeletes := &filterRecorder{}
	songs := &fakeCollection{
		findFn: func(filter interface{}, _ ...*options.FindOptions) (mongo.Cursor, error) {
			assert.Equal(t, bson.M{"album_id": albumID}, filter)
			return idCursor(songA, songB), nil
		},
		deleteManyFn: songDeletes.hook(),
	}
	tracks := &filterRecorder{}
	edges := &filterRecorder{}
	db := &fakeDatabase{collections: map[string]mongo.Collection{
		domain.CollectionAlbum:         albums,
		domain.CollectionSong:          songs,
		domain.CollectionPlaylistTrack: &fakeCollection{deleteManyFn: tracks.hook()},
		domain.CollectionSocialEdge:    &fakeCollection{deleteManyFn: edges.hook()},
	}}

	repo := NewAlbumRepository(db, domain.CollectionAlbum).(*albumRepository)
	repo.withTx = passthroughTx

	err := repo.DeleteCascade(context.Background(), albumID)

	require.NoError(t, err)
	assert.Equal(t, []bson.M{{"album_id": albumID}}, songDeletes.filters)
	assert.Equal(t, []bson.M{{"song_id": bson.M{"$in": []primitive.ObjectID{songA, songB}}}}, tracks.filters)
	assert.ElementsMatch(t, []bson.M{
		edgeFilter(domain.TargetAlbum, albumID),
		edgeFilter(domain.TargetSong, songA, songB),
	}, edges.filters)
}

func TestDeleteArtistCascadesToAlbumsAndSongs(t *testing.T) {
	artistID := primitive.NewObjectID()
	albumID := primitive.NewObjectID()
	songA := primitive.NewObjectID()
	songB := primitive.NewObjectID()

	artists := &fakeCollection{
		deleteOneFn: func(filter interface{}) (int64, error) {
			assert.Equal(t, bson.M{"_id": artistID}, filter)
			return 1, nil
		},
	}
	albumDeletes := &filterRecorder{}
	albums := &fakeCollection{
		findFn: func(filter interface{}, _ ...*options.FindOptions) (mongo.Cursor, error) {
			assert.Equal(t, bson.M{"artist_id": artistID}, filter)
			return idCursor(albumID), nil
		},
		deleteManyFn: albumDeletes.hook(),
	}
	songDeletes := &filterRecorder{}
	songs := &fakeCollection{
		findFn: func(filter interface{}, _ ...*options.FindOptions) (mongo.Cursor, error) {
			assert.Equal(t, bson.M{"artist_id": artistID}, filter)
			return idCursor(songA, songB), nil
		},
		deleteManyFn: songDeletes.hook(),
	}
	tracks := &filterRecorder{}
	edges := &filterRecorder{}
	db := &fakeDatabase{collections: map[string]mongo.Collection{
		domain.CollectionArtist:        artists,
		domain.CollectionAlbum:         albums,
		domain.CollectionSong:          songs,
		domain.CollectionPlaylistTrack: &fakeCollection{deleteManyFn: tracks.hook()},
		domain.CollectionSocialEdge:    &fakeCollection{deleteManyFn: edges.hook()},
	}}

	repo := NewArtistRepository(db, domain.CollectionArtist).(*artistRepository)
	repo.withTx = passthroughTx

	err := repo.DeleteCascade(context.Background(), artistID)

	require.NoError(t, err)
	assert.Equal(t, []bson.M{{"artist_id": artistID}}, albumDeletes.filters)
	assert.Equal(t, []bson.M{{"artist_id": artistID}}, songDeletes.filters)
	assert.Equal(t, []bson.M{{"song_id": bson.M{"$in": []primitive.ObjectID{songA, songB}}}}, tracks.filters)
	assert.ElementsMatch(t, []bson.M{
		edgeFilter(domain.TargetArtist, artistID),
		edgeFilter(domain.TargetAlbum, albumID),
		edgeFilter(domain.TargetSong, songA, songB),
	}, edges.filters)
}
