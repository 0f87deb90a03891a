package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shelfmate/shelfmate-server/domain"
	"github.com/shelfmate/shelfmate-server/internal/genreutil"
	"github.com/shelfmate/shelfmate-server/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type preferenceRepository struct {
	db         mongo.Database
	collection string
}

func NewPreferenceRepository(db mongo.Database, collection string) domain.PreferenceRepository {
	return &preferenceRepository{
		db:         db,
		collection: collection,
	}
}

// GetByUserID resolves a user's preference record into the flattened engine
// input. A missing user, a missing onboarding sub-record, or an unparsable
// user id all resolve to empty preferences; the feed still has its
// popularity tier.
func (r *preferenceRepository) GetByUserID(ctx context.Context, userID string) (domain.ResolvedPreferences, error) {
	var empty domain.ResolvedPreferences

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return empty, nil
	}

	coll := r.db.Collection(r.collection)
	var record struct {
		Preferences domain.UserPreference `bson:"preferences"`
	}
	result := coll.FindOne(ctx, bson.M{"_id": oid})
	if err := result.Decode(&record); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return empty, nil
		}
		return empty, fmt.Errorf("preference lookup failed: %w", err)
	}

	onboarding := record.Preferences.Onboarding
	if onboarding == nil {
		return empty, nil
	}

	resolved := domain.ResolvedPreferences{
		GenreWeights: map[string]float64{},
	}
	for _, g := range onboarding.Genres {
		name := genreutil.NormalizeLabel(g.Name)
		if name == "" {
			continue
		}
		resolved.GenreNames = append(resolved.GenreNames, name)
		if g.Weight > 0 {
			resolved.GenreWeights[name] = g.Weight
		}
	}
	for _, a := range onboarding.FavoriteAuthors {
		if a != "" {
			resolved.AuthorNames = append(resolved.AuthorNames, a)
		}
	}

	if record.Preferences.Implicit != nil {
		for genre, weight := range normalizeGenreWeights(record.Preferences.Implicit.GenreWeights) {
			resolved.GenreWeights[genre] += weight
		}
	}
	return resolved, nil
}

// normalizeGenreWeights accepts the genre-weight encodings the tracking
// service has shipped over time: a map document, an ordered document, a
// {k, v} entry array, or nothing. Anything unrecognized is dropped rather
// than surfaced as an error.
func normalizeGenreWeights(raw interface{}) map[string]float64 {
	weights := make(map[string]float64)

	switch v := raw.(type) {
	case nil:
	case map[string]float64:
		for k, w := range v {
			setWeight(weights, k, w)
		}
	case map[string]interface{}:
		for k, w := range v {
			if f, ok := toFloat(w); ok {
				setWeight(weights, k, f)
			}
		}
	case bson.M:
		for k, w := range v {
			if f, ok := toFloat(w); ok {
				setWeight(weights, k, f)
			}
		}
	case bson.D:
		for _, e := range v {
			if f, ok := toFloat(e.Value); ok {
				setWeight(weights, e.Key, f)
			}
		}
	case bson.A:
		// Serialized Map entries: [{k: "mystery", v: 3}, ...]
		for _, item := range v {
			entry, ok := item.(bson.M)
			if !ok {
				if d, isD := item.(bson.D); isD {
					entry = d.Map()
				} else {
					continue
				}
			}
			key, _ := entry["k"].(string)
			if f, ok := toFloat(entry["v"]); ok {
				setWeight(weights, key, f)
			}
		}
	}
	return weights
}

func setWeight(weights map[string]float64, key string, value float64) {
	key = genreutil.NormalizeLabel(key)
	if key != "" {
		weights[key] = value
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
