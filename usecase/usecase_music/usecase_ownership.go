package usecase_music

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
	"github.com/soundhaven/soundhaven/domain/domain_music"
)

// OwnershipUsecase answers "may this actor write this record". Catalog
// records resolve through the artist chain (song -> album -> artist ->
// claiming user); playlists resolve through their owner. Superusers
// pass every check.
type OwnershipUsecase struct {
	artistRepo   domain_music.ArtistRepository
	albumRepo    domain_music.AlbumRepository
	songRepo     domain_music.SongRepository
	playlistRepo domain_music.PlaylistRepository
	timeout      time.Duration
}

func NewOwnershipUsecase(
	artistRepo domain_music.ArtistRepository,
	albumRepo domain_music.AlbumRepository,
	songRepo domain_music.SongRepository,
	playlistRepo domain_music.PlaylistRepository,
	timeout time.Duration,
) *OwnershipUsecase {
	return &OwnershipUsecase{
		artistRepo:   artistRepo,
		albumRepo:    albumRepo,
		songRepo:     songRepo,
		playlistRepo: playlistRepo,
		timeout:      timeout,
	}
}

// AuthorizeArtist allows the superuser, the user who claimed the artist
// profile, or an actor whose linked profile is the artist itself.
func (uc *OwnershipUsecase) AuthorizeArtist(ctx context.Context, actor domain.Actor, artistID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if actor.IsSuperuser {
		return nil
	}
	if actor.OwnsArtist(artistID) {
		return nil
	}
	artist, err := uc.artistRepo.GetByID(ctx, artistID)
	if err != nil {
		return err
	}
	if artist.UserID != nil && *artist.UserID == actor.ID {
		return nil
	}
	return fmt.Errorf("%w: artist %s is not managed by user %s", domain.ErrPermissionDenied, artistID.Hex(), actor.ID.Hex())
}

// AuthorizeAlbum walks album -> artist and applies the artist rule.
func (uc *OwnershipUsecase) AuthorizeAlbum(ctx context.Context, actor domain.Actor, albumID primitive.ObjectID) error {
	if actor.IsSuperuser {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	album, err := uc.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return err
	}
	return uc.AuthorizeArtist(ctx, actor, album.ArtistID)
}

// AuthorizeSong walks song -> album -> artist. The song's own artist_id
// is authoritative for the walk; the catalog usecase keeps it equal to
// the album's.
func (uc *OwnershipUsecase) AuthorizeSong(ctx context.Context, actor domain.Actor, songID primitive.ObjectID) error {
	if actor.IsSuperuser {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	song, err := uc.songRepo.GetByID(ctx, songID)
	if err != nil {
		return err
	}
	return uc.AuthorizeArtist(ctx, actor, song.ArtistID)
}

// AuthorizePlaylist allows only the owner and the superuser. Collab
// playlists open up track membership, not the playlist record itself.
func (uc *OwnershipUsecase) AuthorizePlaylist(ctx context.Context, actor domain.Actor, playlistID primitive.ObjectID) error {
	if actor.IsSuperuser {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.OwnerID == actor.ID {
		return nil
	}
	return fmt.Errorf("%w: playlist %s is not owned by user %s", domain.ErrPermissionDenied, playlistID.Hex(), actor.ID.Hex())
}

// CanAddTracks is the weaker playlist check: the owner always may, any
// authenticated user may when the playlist is collaborative, and the
// superuser always may.
func (uc *OwnershipUsecase) CanAddTracks(ctx context.Context, actor domain.Actor, playlistID primitive.ObjectID) (*domain_music.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if actor.IsSuperuser || playlist.OwnerID == actor.ID || playlist.IsCollaborative {
		return playlist, nil
	}
	return nil, fmt.Errorf("%w: playlist %s does not accept tracks from user %s", domain.ErrPermissionDenied, playlistID.Hex(), actor.ID.Hex())
}
