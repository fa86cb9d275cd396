package domain_social

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
)

// SocialEdge is one like/follow/library relation from a user to a
// target. The (subject, target, target_kind, relation_kind) tuple is
// unique; creation is idempotent, rows are never updated in place.
type SocialEdge struct {
	ID           primitive.ObjectID  `bson:"_id" json:"id"`
	SubjectID    primitive.ObjectID  `bson:"subject_id" json:"subject_id"`
	TargetID     primitive.ObjectID  `bson:"target_id" json:"target_id"`
	TargetKind   domain.TargetKind   `bson:"target_kind" json:"target_kind"`
	RelationKind domain.RelationKind `bson:"relation_kind" json:"relation_kind"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
}

// EdgeKey identifies a single edge.
type EdgeKey struct {
	SubjectID    primitive.ObjectID
	TargetID     primitive.ObjectID
	TargetKind   domain.TargetKind
	RelationKind domain.RelationKind
}

// UserStats are the per-user counts derived from the social graph and
// the playlist store. Recomputed per call, no caching.
type UserStats struct {
	LikesCount     int64 `json:"likes_count"`
	LibraryCount   int64 `json:"library_count"`
	FollowingCount int64 `json:"following_count"`
	FollowersCount int64 `json:"followers_count"`
	PlaylistsCount int64 `json:"playlists_count"`
	// TotalPlays stays zero until a play-history ledger exists.
	TotalPlays int64 `json:"total_plays"`
}
