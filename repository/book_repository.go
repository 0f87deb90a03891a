package repository

import (
	"context"
	"fmt"
	"regexp"

	"github.com/shelfmate/shelfmate-server/domain"
	"github.com/shelfmate/shelfmate-server/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Popularity floor for the fallback tier. Books below it are either too
// obscure or too poorly received to recommend blind.
const (
	popularMinRating  = 3.5
	popularMinRatings = 10
)

type bookRepository struct {
	db         mongo.Database
	collection string
}

func NewBookRepository(db mongo.Database, collection string) domain.CatalogRepository {
	return &bookRepository{
		db:         db,
		collection: collection,
	}
}

// coverFilter keeps only books with a usable cover reference. Feed cards
// without artwork test terribly, so every tier requires one.
func coverFilter() bson.M {
	return bson.M{"$exists": true, "$nin": bson.A{nil, ""}}
}

// categoryClauses builds one case-insensitive substring match per label.
// Catalog category strings are free text ("Fiction / Mystery & Detective"),
// so equality matching would miss most of them.
func categoryClauses(labels []string) bson.A {
	clauses := bson.A{}
	for _, label := range labels {
		if label == "" {
			continue
		}
		clauses = append(clauses, bson.M{"categories": bson.M{
			"$regex":   regexp.QuoteMeta(label),
			"$options": "i",
		}})
	}
	return clauses
}

func authorClauses(tokens []string) bson.A {
	clauses := bson.A{}
	for _, token := range tokens {
		if token == "" {
			continue
		}
		clauses = append(clauses, bson.M{"authors": bson.M{
			"$regex":   regexp.QuoteMeta(token),
			"$options": "i",
		}})
	}
	return clauses
}

func (r *bookRepository) find(ctx context.Context, filter bson.M, sort bson.D, limit int64) ([]domain.Book, error) {
	coll := r.db.Collection(r.collection)

	opts := options.Find().SetSort(sort).SetLimit(limit)
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var books []domain.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("catalog decode failed: %w", err)
	}
	return books, nil
}

func (r *bookRepository) FindByPreferences(ctx context.Context, genres []string, authorTokens []string, limit int64) ([]domain.Book, error) {
	clauses := categoryClauses(genres)
	clauses = append(clauses, authorClauses(authorTokens)...)
	if len(clauses) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"cover_image": coverFilter(),
		"$or":         clauses,
	}
	sort := bson.D{
		{Key: "average_rating", Value: -1},
		{Key: "ratings_count", Value: -1},
		{Key: "published_date", Value: -1},
	}
	return r.find(ctx, filter, sort, limit)
}

func (r *bookRepository) FindByCategories(ctx context.Context, categories []string, exclude []primitive.ObjectID, limit int64) ([]domain.Book, error) {
	clauses := categoryClauses(categories)
	if len(clauses) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"cover_image": coverFilter(),
		"$or":         clauses,
	}
	if len(exclude) > 0 {
		filter["_id"] = bson.M{"$nin": exclude}
	}
	sort := bson.D{
		{Key: "average_rating", Value: -1},
		{Key: "ratings_count", Value: -1},
	}
	return r.find(ctx, filter, sort, limit)
}

func (r *bookRepository) FindByAuthors(ctx context.Context, authorTokens []string, limit int64) ([]domain.Book, error) {
	clauses := authorClauses(authorTokens)
	if len(clauses) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"cover_image": coverFilter(),
		"$or":         clauses,
	}
	sort := bson.D{
		{Key: "average_rating", Value: -1},
		{Key: "ratings_count", Value: -1},
		{Key: "published_date", Value: -1},
	}
	return r.find(ctx, filter, sort, limit)
}

func (r *bookRepository) FindPopular(ctx context.Context, exclude []primitive.ObjectID, limit int64) ([]domain.Book, error) {
	filter := bson.M{
		"cover_image":    coverFilter(),
		"average_rating": bson.M{"$gte": popularMinRating},
		"ratings_count":  bson.M{"$gte": popularMinRatings},
	}
	if len(exclude) > 0 {
		filter["_id"] = bson.M{"$nin": exclude}
	}
	sort := bson.D{
		{Key: "average_rating", Value: -1},
		{Key: "ratings_count", Value: -1},
	}
	return r.find(ctx, filter, sort, limit)
}

func (r *bookRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Book, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	filter := bson.M{"_id": bson.M{"$in": ids}}
	sort := bson.D{
		{Key: "average_rating", Value: -1},
		{Key: "ratings_count", Value: -1},
	}
	return r.find(ctx, filter, sort, int64(len(ids)))
}
