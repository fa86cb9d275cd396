package repository_music

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
	"github.com/soundhaven/soundhaven/domain/domain_music"
	"github.com/soundhaven/soundhaven/mongo"
)

func trackRepoWith(coll *fakeCollection) *playlistTrackRepository {
	db := &fakeDatabase{collections: map[string]mongo.Collection{
		domain.CollectionPlaylistTrack: coll,
	}}
	repo := NewPlaylistTrackRepository(db, domain.CollectionPlaylistTrack).(*playlistTrackRepository)
	repo.withTx = passthroughTx
	return repo
}

func TestAddReturnsExistingRowUnchanged(t *testing.T) {
	playlistID := primitive.NewObjectID()
	songID := primitive.NewObjectID()
	existing := domain_music.PlaylistTrack{
		ID:         primitive.NewObjectID(),
		PlaylistID: playlistID,
		SongID:     songID,
		Position:   3,
	}

	inserted := false
	coll := &fakeCollection{
		findOneFn: func(interface{}) mongo.SingleResult {
			return &fakeSingleResult{doc: existing}
		},
		insertOneFn: func(interface{}) (interface{}, error) {
			inserted = true
			return nil, nil
		},
	}

	repo := trackRepoWith(coll)
	track, err := repo.Add(context.Background(), playlistID, songID, primitive.NewObjectID(), nil)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, track.ID)
	assert.Equal(t, 3, track.Position)
	assert.False(t, inserted)
}

func TestAddAppendsAtMaxPlusOne(t *testing.T) {
	playlistID := primitive.NewObjectID()
	songID := primitive.NewObjectID()

	var insertedDoc *domain_music.PlaylistTrack
	coll := &fakeCollection{
		findOneFn: func(interface{}) mongo.SingleResult {
			return &fakeSingleResult{err: driver.ErrNoDocuments}
		},
		findFn: func(_ interface{}, _ ...*options.FindOptions) (mongo.Cursor, error) {
			return &fakeCursor{docs: []interface{}{
				domain_music.PlaylistTrack{PlaylistID: playlistID, Position: 7},
			}}, nil
		},
		insertOneFn: func(document interface{}) (interface{}, error) {
			insertedDoc = document.(*domain_music.PlaylistTrack)
			return insertedDoc.ID, nil
		},
	}

	repo := trackRepoWith(coll)
	track, err := repo.Add(context.Background(), playlistID, songID, primitive.NewObjectID(), nil)

	require.NoError(t, err)
	require.NotNil(t, insertedDoc)
	assert.Equal(t, 8, track.Position)
}

func TestAddEmptyPlaylistStartsAtOne(t *testing.T) {
	coll := &fakeCollection{
		findOneFn: func(interface{}) mongo.SingleResult {
			return &fakeSingleResult{err: driver.ErrNoDocuments}
		},
		findFn: func(_ interface{}, _ ...*options.FindOptions) (mongo.Cursor, error) {
			return &fakeCursor{}, nil
		},
		insertOneFn: func(document interface{}) (interface{}, error) {
			return nil, nil
		},
	}

	repo := trackRepoWith(coll)
	track, err := repo.Add(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), nil)

	require.NoError(t, err)
	assert.Equal(t, 1, track.Position)
}

func TestAddExplicitPositionStoredVerbatim(t *testing.T) {
	searched := false
	coll := &fakeCollection{
		findOneFn: func(interface{}) mongo.SingleResult {
			return &fakeSingleResult{err: driver.ErrNoDocuments}
		},
		findFn: func(_ interface{}, _ ...*options.FindOptions) (mongo.Cursor, error) {
			searched = true
			return &fakeCursor{}, nil
		},
		insertOneFn: func(document interface{}) (interface{}, error) {
			return nil, nil
		},
	}

	repo := trackRepoWith(coll)
	pos := 3
	track, err := repo.Add(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), &pos)

	require.NoError(t, err)
	assert.Equal(t, 3, track.Position)
	// An explicit position never triggers the max lookup, even when it
	// duplicates an occupied slot.
	assert.False(t, searched)
}

func TestAddLosingRaceReturnsWinner(t *testing.T) {
	playlistID := primitive.NewObjectID()
	songID := primitive.NewObjectID()
	winner := domain_music.PlaylistTrack{
		ID:         primitive.NewObjectID(),
		PlaylistID: playlistID,
		SongID:     songID,
		Position:   5,
	}

	findCalls := 0
	coll := &fakeCollection{
		findOneFn: func(interface{}) mongo.SingleResult {
			findCalls++
			if findCalls == 1 {
				return &fakeSingleResult{err: driver.ErrNoDocuments}
			}
			return &fakeSingleResult{doc: winner}
		},
		findFn: func(_ interface{}, _ ...*options.FindOptions) (mongo.Cursor, error) {
			return &fakeCursor{}, nil
		},
		insertOneFn: func(interface{}) (interface{}, error) {
			return nil, duplicateKeyErr()
		},
	}

	repo := trackRepoWith(coll)
	track, err := repo.Add(context.Background(), playlistID, songID, primitive.NewObjectID(), nil)

	require.NoError(t, err)
	assert.Equal(t, winner.ID, track.ID)
	assert.Equal(t, 5, track.Position)
}

func TestRemoveStrict(t *testing.T) {
	coll := &fakeCollection{
		deleteOneFn: func(interface{}) (int64, error) { return 0, nil },
	}

	repo := trackRepoWith(coll)
	err := repo.Remove(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReorderSkipsAbsentPair(t *testing.T) {
	playlistID := primitive.NewObjectID()
	present := primitive.NewObjectID()
	alsoPresent := primitive.NewObjectID()
	absent := primitive.NewObjectID()

	var filters []bson.M
	var updates []bson.M
	coll := &fakeCollection{
		updateOneFn: func(filter, update interface{}) (*driver.UpdateResult, error) {
			f := filter.(bson.M)
			filters = append(filters, f)
			updates = append(updates, update.(bson.M))
			matched := int64(1)
			if f["song_id"] == absent {
				matched = 0
			}
			return &driver.UpdateResult{MatchedCount: matched}, nil
		},
	}

	repo := trackRepoWith(coll)
	err := repo.Reorder(context.Background(), playlistID, []domain_music.TrackMove{
		{SongID: present, NewPosition: 2},
		{SongID: absent, NewPosition: 9},
		{SongID: alsoPresent, NewPosition: 1},
	})

	require.NoError(t, err)
	// The absent pair matches nothing; the batch still issues every
	// update and succeeds.
	require.Len(t, filters, 3)
	for _, f := range filters {
		assert.Equal(t, playlistID, f["playlist_id"])
	}
	assert.Equal(t, bson.M{"$set": bson.M{"position": 2}}, updates[0])
	assert.Equal(t, bson.M{"$set": bson.M{"position": 9}}, updates[1])
	assert.Equal(t, bson.M{"$set": bson.M{"position": 1}}, updates[2])
}

func TestReorderAbortsBatchOnUpdateError(t *testing.T) {
	calls := 0
	coll := &fakeCollection{
		updateOneFn: func(_, _ interface{}) (*driver.UpdateResult, error) {
			calls++
			if calls == 2 {
				return nil, errors.New("write conflict")
			}
			return &driver.UpdateResult{MatchedCount: 1}, nil
		},
	}

	repo := trackRepoWith(coll)
	err := repo.Reorder(context.Background(), primitive.NewObjectID(), []domain_music.TrackMove{
		{SongID: primitive.NewObjectID(), NewPosition: 1},
		{SongID: primitive.NewObjectID(), NewPosition: 2},
		{SongID: primitive.NewObjectID(), NewPosition: 3},
	})

	// The failing update surfaces through the transaction callback and
	// aborts the rest of the batch.
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Equal(t, 2, calls)
}

func TestReorderEmptyBatchSkipsTransaction(t *testing.T) {
	repo := trackRepoWith(&fakeCollection{})
	started := false
	repo.withTx = func(ctx context.Context, _ mongo.Client, fn func(context.Context) error) error {
		started = true
		return fn(ctx)
	}

	err := repo.Reorder(context.Background(), primitive.NewObjectID(), nil)

	require.NoError(t, err)
	assert.False(t, started)
}
