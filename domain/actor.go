package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Actor is the authenticated caller as resolved by the auth layer. The
// core never issues tokens; it only consumes this shape.
type Actor struct {
	ID          primitive.ObjectID
	IsSuperuser bool
	// ArtistID is set when the user has claimed an artist profile.
	ArtistID *primitive.ObjectID
}

// HasArtist reports whether the actor is linked to an artist profile.
func (a Actor) HasArtist() bool {
	return a.ArtistID != nil && !a.ArtistID.IsZero()
}

// OwnsArtist reports whether the actor's linked profile is artistID.
// Superuser bypass is applied by the ownership usecase, not here.
func (a Actor) OwnsArtist(artistID primitive.ObjectID) bool {
	return a.HasArtist() && *a.ArtistID == artistID
}
