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

// CatalogUsecase covers artist, album, and song writes. Every mutation
// runs the ownership cascade first; song writes additionally pin the
// song's artist to the owning album's artist.
type CatalogUsecase struct {
	artistRepo domain_music.ArtistRepository
	albumRepo  domain_music.AlbumRepository
	songRepo   domain_music.SongRepository
	ownership  *OwnershipUsecase
	timeout    time.Duration
}

func NewCatalogUsecase(
	artistRepo domain_music.ArtistRepository,
	albumRepo domain_music.AlbumRepository,
	songRepo domain_music.SongRepository,
	ownership *OwnershipUsecase,
	timeout time.Duration,
) *CatalogUsecase {
	return &CatalogUsecase{
		artistRepo: artistRepo,
		albumRepo:  albumRepo,
		songRepo:   songRepo,
		ownership:  ownership,
		timeout:    timeout,
	}
}

// CreateArtist registers a profile. A non-superuser may only claim the
// profile for themselves, and only one claim per user holds (enforced
// by the partial unique index on user_id).
func (uc *CatalogUsecase) CreateArtist(ctx context.Context, actor domain.Actor, artist *domain_music.Artist) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if strings.TrimSpace(artist.StageName) == "" {
		return fmt.Errorf("%w: stage name is required", domain.ErrValidation)
	}
	if !actor.IsSuperuser {
		if artist.UserID == nil {
			artist.UserID = &actor.ID
		} else if *artist.UserID != actor.ID {
			return fmt.Errorf("%w: cannot claim an artist profile for another user", domain.ErrPermissionDenied)
		}
	}
	return uc.artistRepo.Create(ctx, artist)
}

func (uc *CatalogUsecase) GetArtist(ctx context.Context, id primitive.ObjectID) (*domain_music.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.artistRepo.GetByID(ctx, id)
}

func (uc *CatalogUsecase) ListArtists(ctx context.Context, page domain.Page) ([]domain_music.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.artistRepo.GetPaginated(ctx, page)
}

func (uc *CatalogUsecase) UpdateArtist(ctx context.Context, actor domain.Actor, artist *domain_music.Artist) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.ownership.AuthorizeArtist(ctx, actor, artist.ID); err != nil {
		return err
	}
	if strings.TrimSpace(artist.StageName) == "" {
		return fmt.Errorf("%w: stage name is required", domain.ErrValidation)
	}
	// Re-claiming under a different user stays a superuser operation.
	if !actor.IsSuperuser {
		current, err := uc.artistRepo.GetByID(ctx, artist.ID)
		if err != nil {
			return err
		}
		artist.UserID = current.UserID
	}
	return uc.artistRepo.Update(ctx, artist)
}

func (uc *CatalogUsecase) DeleteArtist(ctx context.Context, actor domain.Actor, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.ownership.AuthorizeArtist(ctx, actor, id); err != nil {
		return err
	}
	return uc.artistRepo.DeleteCascade(ctx, id)
}

// CreateAlbum requires ownership of the target artist at creation time.
func (uc *CatalogUsecase) CreateAlbum(ctx context.Context, actor domain.Actor, album *domain_music.Album) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if strings.TrimSpace(album.Title) == "" {
		return fmt.Errorf("%w: album title is required", domain.ErrValidation)
	}
	if album.ArtistID.IsZero() {
		return fmt.Errorf("%w: album artist is required", domain.ErrValidation)
	}
	if err := uc.ownership.AuthorizeArtist(ctx, actor, album.ArtistID); err != nil {
		return err
	}
	return uc.albumRepo.Create(ctx, album)
}

func (uc *CatalogUsecase) GetAlbum(ctx context.Context, id primitive.ObjectID) (*domain_music.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.albumRepo.GetByID(ctx, id)
}

func (uc *CatalogUsecase) ListAlbumsByArtist(ctx context.Context, artistID primitive.ObjectID, page domain.Page) ([]domain_music.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.albumRepo.GetByArtist(ctx, artistID, page)
}

// UpdateAlbum re-checks ownership against the stored record, so moving
// an album to another artist needs ownership of both sides.
func (uc *CatalogUsecase) UpdateAlbum(ctx context.Context, actor domain.Actor, album *domain_music.Album) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if strings.TrimSpace(album.Title) == "" {
		return fmt.Errorf("%w: album title is required", domain.ErrValidation)
	}
	if err := uc.ownership.AuthorizeAlbum(ctx, actor, album.ID); err != nil {
		return err
	}
	current, err := uc.albumRepo.GetByID(ctx, album.ID)
	if err != nil {
		return err
	}
	if album.ArtistID != current.ArtistID {
		if err := uc.ownership.AuthorizeArtist(ctx, actor, album.ArtistID); err != nil {
			return err
		}
	}
	return uc.albumRepo.Update(ctx, album)
}

func (uc *CatalogUsecase) DeleteAlbum(ctx context.Context, actor domain.Actor, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.ownership.AuthorizeAlbum(ctx, actor, id); err != nil {
		return err
	}
	return uc.albumRepo.DeleteCascade(ctx, id)
}

// CreateSong derives the song's artist from its album; a caller-supplied
// artist_id that disagrees with the album is rejected.
func (uc *CatalogUsecase) CreateSong(ctx context.Context, actor domain.Actor, song *domain_music.Song) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if strings.TrimSpace(song.Title) == "" {
		return fmt.Errorf("%w: song title is required", domain.ErrValidation)
	}
	if song.AlbumID.IsZero() {
		return fmt.Errorf("%w: song album is required", domain.ErrValidation)
	}
	album, err := uc.albumRepo.GetByID(ctx, song.AlbumID)
	if err != nil {
		return err
	}
	if !song.ArtistID.IsZero() && song.ArtistID != album.ArtistID {
		return fmt.Errorf("%w: song artist must match album artist", domain.ErrValidation)
	}
	song.ArtistID = album.ArtistID
	if err := uc.ownership.AuthorizeArtist(ctx, actor, album.ArtistID); err != nil {
		return err
	}
	return uc.songRepo.Create(ctx, song)
}

func (uc *CatalogUsecase) GetSong(ctx context.Context, id primitive.ObjectID) (*domain_music.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.songRepo.GetByID(ctx, id)
}

func (uc *CatalogUsecase) ListSongsByAlbum(ctx context.Context, albumID primitive.ObjectID, page domain.Page) ([]domain_music.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.songRepo.GetByAlbum(ctx, albumID, page)
}

func (uc *CatalogUsecase) ListPopularSongs(ctx context.Context, page domain.Page) ([]domain_music.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.songRepo.GetPopular(ctx, page)
}

// UpdateSong re-validates the album pairing, covering moves between
// albums as well as stale artist ids on the incoming record.
func (uc *CatalogUsecase) UpdateSong(ctx context.Context, actor domain.Actor, song *domain_music.Song) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if strings.TrimSpace(song.Title) == "" {
		return fmt.Errorf("%w: song title is required", domain.ErrValidation)
	}
	if err := uc.ownership.AuthorizeSong(ctx, actor, song.ID); err != nil {
		return err
	}
	album, err := uc.albumRepo.GetByID(ctx, song.AlbumID)
	if err != nil {
		return err
	}
	if !song.ArtistID.IsZero() && song.ArtistID != album.ArtistID {
		return fmt.Errorf("%w: song artist must match album artist", domain.ErrValidation)
	}
	song.ArtistID = album.ArtistID
	if err := uc.ownership.AuthorizeArtist(ctx, actor, album.ArtistID); err != nil {
		return err
	}
	return uc.songRepo.Update(ctx, song)
}

func (uc *CatalogUsecase) DeleteSong(ctx context.Context, actor domain.Actor, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.ownership.AuthorizeSong(ctx, actor, id); err != nil {
		return err
	}
	return uc.songRepo.DeleteCascade(ctx, id)
}
