package usecase_music

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
	"github.com/soundhaven/soundhaven/domain/domain_music"
)

// PlaylistTrackUsecase manages playlist membership and ordering.
// Adding is open to the owner and, for collaborative playlists, any
// authenticated user; removal and reorder stay owner-only.
type PlaylistTrackUsecase struct {
	trackRepo domain_music.PlaylistTrackRepository
	songRepo  domain_music.SongRepository
	ownership *OwnershipUsecase
	timeout   time.Duration
}

func NewPlaylistTrackUsecase(
	trackRepo domain_music.PlaylistTrackRepository,
	songRepo domain_music.SongRepository,
	ownership *OwnershipUsecase,
	timeout time.Duration,
) *PlaylistTrackUsecase {
	return &PlaylistTrackUsecase{
		trackRepo: trackRepo,
		songRepo:  songRepo,
		ownership: ownership,
		timeout:   timeout,
	}
}

// Add appends when position is nil, stores the requested position
// verbatim otherwise, and returns the existing row unchanged when the
// song is already in the playlist.
func (uc *PlaylistTrackUsecase) Add(ctx context.Context, actor domain.Actor, playlistID, songID primitive.ObjectID, position *int) (*domain_music.PlaylistTrack, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if _, err := uc.ownership.CanAddTracks(ctx, actor, playlistID); err != nil {
		return nil, err
	}
	// The song must exist; membership of a phantom song would survive
	// the cascade deletes.
	if _, err := uc.songRepo.GetByID(ctx, songID); err != nil {
		return nil, err
	}
	return uc.trackRepo.Add(ctx, playlistID, songID, actor.ID, position)
}

func (uc *PlaylistTrackUsecase) Remove(ctx context.Context, actor domain.Actor, playlistID, songID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.ownership.AuthorizePlaylist(ctx, actor, playlistID); err != nil {
		return err
	}
	return uc.trackRepo.Remove(ctx, playlistID, songID)
}

// ListSongs applies the same visibility rule as reading the playlist.
func (uc *PlaylistTrackUsecase) ListSongs(ctx context.Context, actor domain.Actor, playlistID primitive.ObjectID, page domain.Page) ([]domain_music.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.ownership.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if !playlist.IsPublic && playlist.OwnerID != actor.ID && !actor.IsSuperuser {
		return nil, fmt.Errorf("%w: playlist %s is private", domain.ErrPermissionDenied, playlistID.Hex())
	}
	return uc.trackRepo.ListSongs(ctx, playlistID, page)
}

// Reorder applies the batch atomically; moves naming songs not in the
// playlist are skipped rather than failing the batch.
func (uc *PlaylistTrackUsecase) Reorder(ctx context.Context, actor domain.Actor, playlistID primitive.ObjectID, moves []domain_music.TrackMove) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.ownership.AuthorizePlaylist(ctx, actor, playlistID); err != nil {
		return err
	}
	return uc.trackRepo.Reorder(ctx, playlistID, moves)
}
