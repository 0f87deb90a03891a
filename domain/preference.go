package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenreSelection is one onboarding genre pick. Weight is optional; older
// records carry only the name.
type GenreSelection struct {
	Name   string  `bson:"name" json:"name"`
	Weight float64 `bson:"weight,omitempty" json:"weight,omitempty"`
}

// OnboardingPreference holds the choices captured once at signup.
type OnboardingPreference struct {
	Genres          []GenreSelection `bson:"genres" json:"genres"`
	FavoriteAuthors []string         `bson:"favorite_authors" json:"favoriteAuthors"`
	CompletedAt     time.Time        `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
}

// ImplicitPreference accumulates behavior-derived signals. GenreWeights is
// written by the tracking service and has shipped in several shapes over
// time, so it is decoded loosely and normalized by the preference repository.
type ImplicitPreference struct {
	GenreWeights interface{} `bson:"genre_weights,omitempty" json:"genreWeights,omitempty"`
	UpdatedAt    time.Time   `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// UserPreference is the per-user preference record embedded in the users
// collection. Read-only from this service's perspective.
type UserPreference struct {
	Onboarding *OnboardingPreference `bson:"onboarding,omitempty" json:"onboarding,omitempty"`
	Implicit   *ImplicitPreference   `bson:"implicit_preferences,omitempty" json:"implicitPreferences,omitempty"`
}

// ResolvedPreferences is the flattened view the feed engine works with. A
// missing preference record resolves to the zero value, which is valid input:
// the popularity tier still runs.
type ResolvedPreferences struct {
	GenreNames   []string
	AuthorNames  []string
	GenreWeights map[string]float64
}

// PreferenceRepository loads preference records. A missing record is not an
// error: implementations return the empty ResolvedPreferences.
type PreferenceRepository interface {
	GetByUserID(ctx context.Context, userID string) (ResolvedPreferences, error)
}

// UserRepository exposes the relationship lookups behind the non-engine feed
// types (favorites, reading list, follows).
type UserRepository interface {
	FavoriteBookIDs(ctx context.Context, userID string) ([]primitive.ObjectID, error)
	ReadingBookIDs(ctx context.Context, userID string) ([]primitive.ObjectID, error)
	FollowingIDs(ctx context.Context, userID string) ([]string, error)
	FavoriteBookIDsOfUsers(ctx context.Context, userIDs []string) ([]primitive.ObjectID, error)
}
