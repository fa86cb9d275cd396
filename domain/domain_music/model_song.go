package domain_music

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Song struct {
	ID primitive.ObjectID `bson:"_id" json:"id"`
	// ArtistID must always equal the owning album's artist_id; the
	// catalog usecase rejects any write that would break the pair.
	ArtistID    primitive.ObjectID `bson:"artist_id" json:"artist_id"`
	AlbumID     primitive.ObjectID `bson:"album_id" json:"album_id"`
	Title       string             `bson:"title" json:"title"`
	DurationMS  int64              `bson:"duration_ms" json:"duration_ms"`
	TrackNumber int                `bson:"track_number" json:"track_number"`
	DiscNumber  int                `bson:"disc_number" json:"disc_number"`
	Explicit    bool               `bson:"explicit" json:"explicit"`
	Lyrics      string             `bson:"lyrics" json:"lyrics"`
	PlayCount   int64              `bson:"play_count" json:"play_count"`

	OrderTitle  string `bson:"order_title" json:"-"`
	TitlePinyin string `bson:"title_pinyin" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
