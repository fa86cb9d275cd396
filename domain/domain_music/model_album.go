package domain_music

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AlbumType string

const (
	AlbumTypeSingle AlbumType = "single"
	AlbumTypeEP     AlbumType = "ep"
	AlbumTypeAlbum  AlbumType = "album"
)

type Album struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	ArtistID    primitive.ObjectID `bson:"artist_id" json:"artist_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	AlbumType   AlbumType          `bson:"album_type" json:"album_type"`
	ReleaseDate *time.Time         `bson:"release_date,omitempty" json:"release_date,omitempty"`
	IsPublic    bool               `bson:"is_public" json:"is_public"`
	TotalTracks int                `bson:"total_tracks" json:"total_tracks"`
	DurationMS  int64              `bson:"duration_ms" json:"duration_ms"`
	Label       string             `bson:"label" json:"label"`

	OrderTitle  string `bson:"order_title" json:"-"`
	TitlePinyin string `bson:"title_pinyin" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
