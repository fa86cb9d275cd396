package domain_music

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Artist struct {
	ID primitive.ObjectID `bson:"_id" json:"id"`
	// UserID links the profile to the account that owns it; nil for
	// unclaimed catalog-only artists. At most one artist per user.
	UserID    *primitive.ObjectID `bson:"user_id,omitempty" json:"user_id,omitempty"`
	StageName string              `bson:"stage_name" json:"stage_name"`
	Biography string              `bson:"biography" json:"biography"`
	AvatarURL string              `bson:"avatar_url" json:"avatar_url"`
	Verified  bool                `bson:"verified" json:"verified"`

	// Derived sort keys, regenerated on every name change.
	OrderName  string `bson:"order_name" json:"-"`
	NamePinyin string `bson:"name_pinyin" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
