package usecase_music

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
	"github.com/soundhaven/soundhaven/domain/domain_music"
)

// PlaylistUsecase manages playlist records. Track membership lives in
// PlaylistTrackUsecase.
type PlaylistUsecase struct {
	playlistRepo domain_music.PlaylistRepository
	ownership    *OwnershipUsecase
	timeout      time.Duration
}

func NewPlaylistUsecase(
	playlistRepo domain_music.PlaylistRepository,
	ownership *OwnershipUsecase,
	timeout time.Duration,
) *PlaylistUsecase {
	return &PlaylistUsecase{
		playlistRepo: playlistRepo,
		ownership:    ownership,
		timeout:      timeout,
	}
}

// Create always assigns the actor as owner, regardless of the payload.
func (uc *PlaylistUsecase) Create(ctx context.Context, actor domain.Actor, playlist *domain_music.Playlist) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if strings.TrimSpace(playlist.Name) == "" {
		return fmt.Errorf("%w: playlist name is required", domain.ErrValidation)
	}
	playlist.OwnerID = actor.ID
	return uc.playlistRepo.Create(ctx, playlist)
}

// Get hides private playlists from everyone but their owner and the
// superuser.
func (uc *PlaylistUsecase) Get(ctx context.Context, actor domain.Actor, id primitive.ObjectID) (*domain_music.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !playlist.IsPublic && playlist.OwnerID != actor.ID && !actor.IsSuperuser {
		return nil, fmt.Errorf("%w: playlist %s is private", domain.ErrPermissionDenied, id.Hex())
	}
	return playlist, nil
}

func (uc *PlaylistUsecase) ListMine(ctx context.Context, actor domain.Actor, page domain.Page) ([]domain_music.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.playlistRepo.GetByOwner(ctx, actor.ID, page)
}

func (uc *PlaylistUsecase) ListPublic(ctx context.Context, page domain.Page) ([]domain_music.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.playlistRepo.GetPublic(ctx, page)
}

// Update keeps the stored owner; ownership of a playlist never moves.
func (uc *PlaylistUsecase) Update(ctx context.Context, actor domain.Actor, playlist *domain_music.Playlist) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if strings.TrimSpace(playlist.Name) == "" {
		return fmt.Errorf("%w: playlist name is required", domain.ErrValidation)
	}
	if err := uc.ownership.AuthorizePlaylist(ctx, actor, playlist.ID); err != nil {
		return err
	}
	current, err := uc.playlistRepo.GetByID(ctx, playlist.ID)
	if err != nil {
		return err
	}
	playlist.OwnerID = current.OwnerID
	return uc.playlistRepo.Update(ctx, playlist)
}

func (uc *PlaylistUsecase) Delete(ctx context.Context, actor domain.Actor, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.ownership.AuthorizePlaylist(ctx, actor, id); err != nil {
		return err
	}
	return uc.playlistRepo.DeleteCascade(ctx, id)
}
