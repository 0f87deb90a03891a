package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNormalizeGenreWeights_MapEncoding(t *testing.T) {
	weights := normalizeGenreWeights(bson.M{"Mystery": 3.5, "history": int32(2)})
	assert.Equal(t, 3.5, weights["mystery"])
	assert.Equal(t, 2.0, weights["history"])
}

func TestNormalizeGenreWeights_OrderedDocEncoding(t *testing.T) {
	weights := normalizeGenreWeights(bson.D{
		{Key: "fantasy", Value: int64(4)},
		{Key: "Poetry ", Value: 1.25},
	})
	assert.Equal(t, 4.0, weights["fantasy"])
	assert.Equal(t, 1.25, weights["poetry"])
}

func TestNormalizeGenreWeights_EntryArrayEncoding(t *testing.T) {
	// Serialized Map shape: [{k, v}, ...]
	weights := normalizeGenreWeights(bson.A{
		bson.M{"k": "romance", "v": 2.0},
		bson.D{{Key: "k", Value: "horror"}, {Key: "v", Value: int32(1)}},
	})
	assert.Equal(t, 2.0, weights["romance"])
	assert.Equal(t, 1.0, weights["horror"])
}

func TestNormalizeGenreWeights_PlainMaps(t *testing.T) {
	assert.Equal(t, 1.5, normalizeGenreWeights(map[string]float64{"drama": 1.5})["drama"])
	assert.Equal(t, 3.0, normalizeGenreWeights(map[string]interface{}{"drama": 3.0})["drama"])
}

func TestNormalizeGenreWeights_AbsentOrMalformed(t *testing.T) {
	assert.Empty(t, normalizeGenreWeights(nil))
	assert.Empty(t, normalizeGenreWeights("not a map"))
	assert.Empty(t, normalizeGenreWeights(42))
	// Non-numeric values are dropped, not surfaced as errors.
	assert.Empty(t, normalizeGenreWeights(bson.M{"mystery": "lots"}))
	// Blank keys are dropped.
	assert.Empty(t, normalizeGenreWeights(bson.M{"  ": 2.0}))
}
