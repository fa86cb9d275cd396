package domain_music

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Playlist struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	OwnerID         primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description" json:"description"`
	IsPublic        bool               `bson:"is_public" json:"is_public"`
	IsCollaborative bool               `bson:"is_collaborative" json:"is_collaborative"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// PlaylistTrack joins a playlist to a song at an integer position.
// Positions within a playlist are consumed in ascending order; they may
// be sparse and, for explicitly requested positions, may collide.
type PlaylistTrack struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	PlaylistID primitive.ObjectID `bson:"playlist_id" json:"playlist_id"`
	SongID     primitive.ObjectID `bson:"song_id" json:"song_id"`
	Position   int                `bson:"position" json:"position"`
	AddedBy    primitive.ObjectID `bson:"added_by" json:"added_by"`
	AddedAt    time.Time          `bson:"added_at" json:"added_at"`
}

// TrackMove is one entry of a reorder batch.
type TrackMove struct {
	SongID      primitive.ObjectID `bson:"song_id" json:"song_id"`
	NewPosition int                `bson:"new_position" json:"new_position"`
}
