package repository_music

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/soundhaven/soundhaven/domain"
	"github.com/soundhaven/soundhaven/domain/domain_music"
	"github.com/soundhaven/soundhaven/mongo"
)

type userRepository struct {
	db         mongo.Database
	collection string
}

func NewUserRepository(db mongo.Database, collection string) domain_music.UserRepository {
	return &userRepository{
		db:         db,
		collection: collection,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain_music.User, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.HashedPassword = string(hashed)

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.db.Collection(r.collection).InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKey(err) {
			return fmt.Errorf("%w: email already registered", domain.ErrConflict)
		}
		return fmt.Errorf("%w: insert user: %v", domain.ErrStorage, err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain_music.User, error) {
	var user domain_music.User
	err := r.db.Collection(r.collection).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id.Hex())
		}
		return nil, fmt.Errorf("%w: get user: %v", domain.ErrStorage, err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain_music.User) error {
	user.UpdatedAt = time.Now().UTC()
	res, err := r.db.Collection(r.collection).UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": user},
	)
	if err != nil {
		return fmt.Errorf("%w: update user: %v", domain.ErrStorage, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, user.ID.Hex())
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := r.db.Collection(r.collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: delete user: %v", domain.ErrStorage, err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, id.Hex())
	}
	return nil
}
