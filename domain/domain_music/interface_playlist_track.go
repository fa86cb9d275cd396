package domain_music

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
)

type PlaylistTrackRepository interface {
	// Add inserts the (playlist, song) membership. When the pair already
	// exists the existing row is returned unchanged. A nil position means
	// append at max+1 (1 for an empty playlist); an explicit position is
	// stored verbatim even if it collides.
	Add(ctx context.Context, playlistID, songID, addedBy primitive.ObjectID, position *int) (*PlaylistTrack, error)

	// Remove deletes the membership; ErrNotFound when the pair is absent.
	// Remaining positions are never renumbered.
	Remove(ctx context.Context, playlistID, songID primitive.ObjectID) error

	// ListSongs returns the playlist's songs ascending by position.
	ListSongs(ctx context.Context, playlistID primitive.ObjectID, page domain.Page) ([]Song, error)

	// Reorder applies the batch as one transaction. Moves whose pair is
	// not in the playlist are skipped; the rest commit all-or-nothing.
	Reorder(ctx context.Context, playlistID primitive.ObjectID, moves []TrackMove) error
}
