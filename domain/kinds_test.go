package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTargetKind(t *testing.T) {
	for _, valid := range []string{"song", "album", "playlist", "artist", "user"} {
		kind, err := ParseTargetKind(valid)
		require.NoError(t, err)
		assert.Equal(t, TargetKind(valid), kind)
	}

	for _, invalid := range []string{"", "Song", "track", "media"} {
		_, err := ParseTargetKind(invalid)
		assert.ErrorIs(t, err, ErrValidation, "input %q", invalid)
	}
}

func TestParseRelationKind(t *testing.T) {
	for _, valid := range []string{"like", "follow", "library"} {
		relation, err := ParseRelationKind(valid)
		require.NoError(t, err)
		assert.Equal(t, RelationKind(valid), relation)
	}

	_, err := ParseRelationKind("starred")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewPageClamps(t *testing.T) {
	assert.Equal(t, Page{Offset: 0, Limit: 100}, NewPage(-5, 0))
	assert.Equal(t, Page{Offset: 10, Limit: 50}, NewPage(10, 50))
	assert.Equal(t, Page{Offset: 0, Limit: 1000}, NewPage(0, 5000))
}

func TestActorOwnsArtist(t *testing.T) {
	actor := Actor{}
	assert.False(t, actor.HasArtist())

	artistID := primitive.NewObjectID()
	actor.ArtistID = &artistID
	assert.True(t, actor.OwnsArtist(artistID))
	assert.False(t, actor.OwnsArtist(primitive.NewObjectID()))
}
