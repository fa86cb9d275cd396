package usecase_social

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
	"github.com/soundhaven/soundhaven/domain/domain_music"
	"github.com/soundhaven/soundhaven/domain/domain_social"
)

// SocialGraphUsecase drives like/follow/library edges. The edge store
// itself is kind-agnostic; this layer validates the target exists and
// applies the one domain gate the store does not know about: private
// playlists cannot be followed.
type SocialGraphUsecase struct {
	edgeRepo     domain_social.SocialEdgeRepository
	userRepo     domain_music.UserRepository
	artistRepo   domain_music.ArtistRepository
	albumRepo    domain_music.AlbumRepository
	songRepo     domain_music.SongRepository
	playlistRepo domain_music.PlaylistRepository
	timeout      time.Duration
}

func NewSocialGraphUsecase(
	edgeRepo domain_social.SocialEdgeRepository,
	userRepo domain_music.UserRepository,
	artistRepo domain_music.ArtistRepository,
	albumRepo domain_music.AlbumRepository,
	songRepo domain_music.SongRepository,
	playlistRepo domain_music.PlaylistRepository,
	timeout time.Duration,
) *SocialGraphUsecase {
	return &SocialGraphUsecase{
		edgeRepo:     edgeRepo,
		userRepo:     userRepo,
		artistRepo:   artistRepo,
		albumRepo:    albumRepo,
		songRepo:     songRepo,
		playlistRepo: playlistRepo,
		timeout:      timeout,
	}
}

// Create is idempotent: repeating the call returns the same edge. The
// target must exist, and following a playlist requires it to be public
// unless the actor owns it.
func (uc *SocialGraphUsecase) Create(ctx context.Context, actor domain.Actor, targetID primitive.ObjectID, targetKind domain.TargetKind, relation domain.RelationKind) (*domain_social.SocialEdge, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.checkTarget(ctx, actor, targetID, targetKind, relation); err != nil {
		return nil, err
	}
	return uc.edgeRepo.Create(ctx, domain_social.EdgeKey{
		SubjectID:    actor.ID,
		TargetID:     targetID,
		TargetKind:   targetKind,
		RelationKind: relation,
	})
}

// Destroy is strict: removing an edge that does not exist yields
// ErrNotFound.
func (uc *SocialGraphUsecase) Destroy(ctx context.Context, actor domain.Actor, targetID primitive.ObjectID, targetKind domain.TargetKind, relation domain.RelationKind) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.edgeRepo.Delete(ctx, domain_social.EdgeKey{
		SubjectID:    actor.ID,
		TargetID:     targetID,
		TargetKind:   targetKind,
		RelationKind: relation,
	})
}

func (uc *SocialGraphUsecase) Exists(ctx context.Context, actor domain.Actor, targetID primitive.ObjectID, targetKind domain.TargetKind, relation domain.RelationKind) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.edgeRepo.Exists(ctx, domain_social.EdgeKey{
		SubjectID:    actor.ID,
		TargetID:     targetID,
		TargetKind:   targetKind,
		RelationKind: relation,
	})
}

// ListBySubject returns the actor's edges for one relation, newest
// first, optionally narrowed to a target kind.
func (uc *SocialGraphUsecase) ListBySubject(ctx context.Context, subjectID primitive.ObjectID, relation domain.RelationKind, targetKind *domain.TargetKind, page domain.Page) ([]domain_social.SocialEdge, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.edgeRepo.ListBySubject(ctx, subjectID, relation, targetKind, page)
}

func (uc *SocialGraphUsecase) ListByTarget(ctx context.Context, targetID primitive.ObjectID, relation domain.RelationKind, targetKind *domain.TargetKind, page domain.Page) ([]domain_social.SocialEdge, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.edgeRepo.ListByTarget(ctx, targetID, relation, targetKind, page)
}

// checkTarget loads the target record, surfacing ErrNotFound for
// dangling ids, and applies the playlist-follow visibility gate.
func (uc *SocialGraphUsecase) checkTarget(ctx context.Context, actor domain.Actor, targetID primitive.ObjectID, targetKind domain.TargetKind, relation domain.RelationKind) error {
	switch targetKind {
	case domain.TargetSong:
		_, err := uc.songRepo.GetByID(ctx, targetID)
		return err
	case domain.TargetAlbum:
		_, err := uc.albumRepo.GetByID(ctx, targetID)
		return err
	case domain.TargetArtist:
		_, err := uc.artistRepo.GetByID(ctx, targetID)
		return err
	case domain.TargetUser:
		if targetID == actor.ID && relation == domain.RelationFollow {
			return fmt.Errorf("%w: cannot follow yourself", domain.ErrValidation)
		}
		_, err := uc.userRepo.GetByID(ctx, targetID)
		return err
	case domain.TargetPlaylist:
		playlist, err := uc.playlistRepo.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		if relation == domain.RelationFollow && !playlist.IsPublic && playlist.OwnerID != actor.ID && !actor.IsSuperuser {
			return fmt.Errorf("%w: playlist %s is private", domain.ErrPermissionDenied, targetID.Hex())
		}
		return nil
	}
	return fmt.Errorf("%w: unknown target kind %q", domain.ErrValidation, targetKind)
}
