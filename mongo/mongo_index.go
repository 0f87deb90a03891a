package mongo

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shelfmate/shelfmate-server/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes builds the indexes backing the feed query paths. The tier
// queries sort by rating and ratings count over regex category filters;
// without the compound rating index deep pages force full collection scans.
func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	books := db.Collection(domain.CollectionBooks)
	createIndex(ctx, books, bson.D{
		{Key: "average_rating", Value: -1},
		{Key: "ratings_count", Value: -1}}, "rating_count_compound")
	createIndex(ctx, books, bson.D{
		{Key: "average_rating", Value: -1},
		{Key: "ratings_count", Value: -1},
		{Key: "published_date", Value: -1}}, "rating_count_published_compound")
	createIndex(ctx, books, bson.D{{Key: "categories", Value: 1}}, "categories")
	createIndex(ctx, books, bson.D{{Key: "authors", Value: 1}}, "authors")
	createIndex(ctx, books, bson.D{{Key: "isbn13", Value: 1}}, "isbn13")

	users := db.Collection(domain.CollectionUsers)
	createIndex(ctx, users, bson.D{{Key: "following", Value: 1}}, "following")
}

func createIndex(ctx context.Context, coll Collection, keys bson.D, name string) {
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}
	if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
		log.Warn().Err(err).Str("index", name).Msg("index creation failed")
	}
}
