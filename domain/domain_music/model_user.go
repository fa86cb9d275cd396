package domain_music

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Email          string             `bson:"email" json:"email"`
	Username       string             `bson:"username" json:"username"`
	FullName       string             `bson:"full_name" json:"full_name"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	IsActive       bool               `bson:"is_active" json:"is_active"`
	IsSuperuser    bool               `bson:"is_superuser" json:"is_superuser"`
	IsPremium      bool               `bson:"is_premium" json:"is_premium"`
	AvatarURL      string             `bson:"avatar_url" json:"avatar_url"`
	Country        string             `bson:"country" json:"country"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
