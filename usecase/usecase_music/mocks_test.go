package usecase_music

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
	"github.com/soundhaven/soundhaven/domain/domain_music"
)

type mockArtistRepo struct{ mock.Mock }

func (m *mockArtistRepo) Create(ctx context.Context, artist *domain_music.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *mockArtistRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain_music.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain_music.Artist), args.Error(1)
}

func (m *mockArtistRepo) GetPaginated(ctx context.Context, page domain.Page) ([]domain_music.Artist, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain_music.Artist), args.Error(1)
}

func (m *mockArtistRepo) Update(ctx context.Context, artist *domain_music.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *mockArtistRepo) DeleteCascade(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockAlbumRepo struct{ mock.Mock }

func (m *mockAlbumRepo) Create(ctx context.Context, album *domain_music.Album) error {
	return m.Called(ctx, album).Error(0)
}

func (m *mockAlbumRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain_music.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain_music.Album), args.Error(1)
}

func (m *mockAlbumRepo) GetByArtist(ctx context.Context, artistID primitive.ObjectID, page domain.Page) ([]domain_music.Album, error) {
	args := m.Called(ctx, artistID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain_music.Album), args.Error(1)
}

func (m *mockAlbumRepo) Update(ctx context.Context, album *domain_music.Album) error {
	return m.Called(ctx, album).Error(0)
}

func (m *mockAlbumRepo) DeleteCascade(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockSongRepo struct{ mock.Mock }

func (m *mockSongRepo) Create(ctx context.Context, song *domain_music.Song) error {
	return m.Called(ctx, song).Error(0)
}

func (m *mockSongRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain_music.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain_music.Song), args.Error(1)
}

func (m *mockSongRepo) GetByAlbum(ctx context.Context, albumID primitive.ObjectID, page domain.Page) ([]domain_music.Song, error) {
	args := m.Called(ctx, albumID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain_music.Song), args.Error(1)
}

func (m *mockSongRepo) GetPopular(ctx context.Context, page domain.Page) ([]domain_music.Song, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain_music.Song), args.Error(1)
}

func (m *mockSongRepo) Update(ctx context.Context, song *domain_music.Song) error {
	return m.Called(ctx, song).Error(0)
}

func (m *mockSongRepo) DeleteCascade(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSongRepo) IncrementPlayCount(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockPlaylistRepo struct{ mock.Mock }

func (m *mockPlaylistRepo) Create(ctx context.Context, playlist *domain_music.Playlist) error {
	return m.Called(ctx, playlist).Error(0)
}

func (m *mockPlaylistRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain_music.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain_music.Playlist), args.Error(1)
}

func (m *mockPlaylistRepo) GetByOwner(ctx context.Context, ownerID primitive.ObjectID, page domain.Page) ([]domain_music.Playlist, error) {
	args := m.Called(ctx, ownerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain_music.Playlist), args.Error(1)
}

func (m *mockPlaylistRepo) GetPublic(ctx context.Context, page domain.Page) ([]domain_music.Playlist, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain_music.Playlist), args.Error(1)
}

func (m *mockPlaylistRepo) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPlaylistRepo) Update(ctx context.Context, playlist *domain_music.Playlist) error {
	return m.Called(ctx, playlist).Error(0)
}

func (m *mockPlaylistRepo) DeleteCascade(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockTrackRepo struct{ mock.Mock }

func (m *mockTrackRepo) Add(ctx context.Context, playlistID, songID, addedBy primitive.ObjectID, position *int) (*domain_music.PlaylistTrack, error) {
	args := m.Called(ctx, playlistID, songID, addedBy, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain_music.PlaylistTrack), args.Error(1)
}

func (m *mockTrackRepo) Remove(ctx context.Context, playlistID, songID primitive.ObjectID) error {
	return m.Called(ctx, playlistID, songID).Error(0)
}

func (m *mockTrackRepo) ListSongs(ctx context.Context, playlistID primitive.ObjectID, page domain.Page) ([]domain_music.Song, error) {
	args := m.Called(ctx, playlistID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain_music.Song), args.Error(1)
}

func (m *mockTrackRepo) Reorder(ctx context.Context, playlistID primitive.ObjectID, moves []domain_music.TrackMove) error {
	return m.Called(ctx, playlistID, moves).Error(0)
}
