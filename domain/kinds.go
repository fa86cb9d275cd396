package domain

import "fmt"

// TargetKind discriminates what a social edge points at. Closed set;
// unknown values are rejected at the boundary instead of being stored.
type TargetKind string

const (
	TargetSong     TargetKind = "song"
	TargetAlbum    TargetKind = "album"
	TargetPlaylist TargetKind = "playlist"
	TargetArtist   TargetKind = "artist"
	TargetUser     TargetKind = "user"
)

// RelationKind discriminates the social relation an edge represents.
type RelationKind string

const (
	RelationLike    RelationKind = "like"
	RelationFollow  RelationKind = "follow"
	RelationLibrary RelationKind = "library"
)

func ParseTargetKind(s string) (TargetKind, error) {
	switch TargetKind(s) {
	case TargetSong, TargetAlbum, TargetPlaylist, TargetArtist, TargetUser:
		return TargetKind(s), nil
	}
	return "", fmt.Errorf("%w: unknown target kind %q", ErrValidation, s)
}

func ParseRelationKind(s string) (RelationKind, error) {
	switch RelationKind(s) {
	case RelationLike, RelationFollow, RelationLibrary:
		return RelationKind(s), nil
	}
	return "", fmt.Errorf("%w: unknown relation kind %q", ErrValidation, s)
}
