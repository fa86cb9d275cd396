package domain

const (
	CollectionUser = "music_users"
)
const (
	CollectionArtist = "music_artists"
)
const (
	CollectionAlbum = "music_albums"
)
const (
	CollectionSong = "music_songs"
)
const (
	CollectionPlaylist = "music_playlists"
)
const (
	CollectionPlaylistTrack = "music_playlist_tracks"
)
const (
	CollectionSocialEdge = "social_edges"
)
