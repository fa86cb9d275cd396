package usecase_social

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
	"github.com/soundhaven/soundhaven/domain/domain_music"
	"github.com/soundhaven/soundhaven/domain/domain_social"
)

// PlayUsecase is the counter layer: monotonic play counts on songs and
// the derived per-user stats. Counts are recomputed per call, nothing
// is cached.
type PlayUsecase struct {
	songRepo     domain_music.SongRepository
	playlistRepo domain_music.PlaylistRepository
	edgeRepo     domain_social.SocialEdgeRepository
	timeout      time.Duration
}

func NewPlayUsecase(
	songRepo domain_music.SongRepository,
	playlistRepo domain_music.PlaylistRepository,
	edgeRepo domain_social.SocialEdgeRepository,
	timeout time.Duration,
) *PlayUsecase {
	return &PlayUsecase{
		songRepo:     songRepo,
		playlistRepo: playlistRepo,
		edgeRepo:     edgeRepo,
		timeout:      timeout,
	}
}

// RecordPlay bumps the song's play count by one; ErrNotFound when the
// song does not exist.
func (uc *PlayUsecase) RecordPlay(ctx context.Context, songID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.songRepo.IncrementPlayCount(ctx, songID)
}

// StatsFor composes the per-user counters from the edge store and the
// playlist store. TotalPlays stays zero until a per-user play ledger
// exists.
func (uc *PlayUsecase) StatsFor(ctx context.Context, userID primitive.ObjectID) (*domain_social.UserStats, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	stats := &domain_social.UserStats{}

	var err error
	if stats.LikesCount, err = uc.edgeRepo.CountBySubject(ctx, userID, domain.RelationLike); err != nil {
		return nil, err
	}
	if stats.LibraryCount, err = uc.edgeRepo.CountBySubject(ctx, userID, domain.RelationLibrary); err != nil {
		return nil, err
	}
	if stats.FollowingCount, err = uc.edgeRepo.CountBySubject(ctx, userID, domain.RelationFollow); err != nil {
		return nil, err
	}
	if stats.FollowersCount, err = uc.edgeRepo.CountByTarget(ctx, userID, domain.RelationFollow); err != nil {
		return nil, err
	}
	if stats.PlaylistsCount, err = uc.playlistRepo.CountByOwner(ctx, userID); err != nil {
		return nil, err
	}
	return stats, nil
}
