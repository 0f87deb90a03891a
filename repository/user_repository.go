package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shelfmate/shelfmate-server/domain"
	"github.com/shelfmate/shelfmate-server/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

const readingStatusReading = "reading"

type userRepository struct {
	db         mongo.Database
	collection string
}

func NewUserRepository(db mongo.Database, collection string) domain.UserRepository {
	return &userRepository{
		db:         db,
		collection: collection,
	}
}

type userRelations struct {
	Favorites   []primitive.ObjectID `bson:"favorites"`
	Following   []primitive.ObjectID `bson:"following"`
	ReadingList []readingEntry       `bson:"reading_list"`
}

type readingEntry struct {
	BookID primitive.ObjectID `bson:"book_id"`
	Status string             `bson:"status"`
}

func (r *userRepository) getRelations(ctx context.Context, userID string) (*userRelations, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	coll := r.db.Collection(r.collection)
	var relations userRelations
	result := coll.FindOne(ctx, bson.M{"_id": oid})
	if err := result.Decode(&relations); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return &userRelations{}, nil
		}
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	return &relations, nil
}

func (r *userRepository) FavoriteBookIDs(ctx context.Context, userID string) ([]primitive.ObjectID, error) {
	relations, err := r.getRelations(ctx, userID)
	if err != nil {
		return nil, err
	}
	return relations.Favorites, nil
}

func (r *userRepository) ReadingBookIDs(ctx context.Context, userID string) ([]primitive.ObjectID, error) {
	relations, err := r.getRelations(ctx, userID)
	if err != nil {
		return nil, err
	}
	var ids []primitive.ObjectID
	for _, entry := range relations.ReadingList {
		if entry.Status == readingStatusReading {
			ids = append(ids, entry.BookID)
		}
	}
	return ids, nil
}

func (r *userRepository) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	relations, err := r.getRelations(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(relations.Following))
	for _, oid := range relations.Following {
		ids = append(ids, oid.Hex())
	}
	return ids, nil
}

func (r *userRepository) FavoriteBookIDsOfUsers(ctx context.Context, userIDs []string) ([]primitive.ObjectID, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	oids := make([]primitive.ObjectID, 0, len(userIDs))
	for _, id := range userIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}

	coll := r.db.Collection(r.collection)
	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("friends lookup failed: %w", err)
	}
	defer cursor.Close(ctx)

	seen := make(map[primitive.ObjectID]struct{})
	var bookIDs []primitive.ObjectID
	for cursor.Next(ctx) {
		var relations userRelations
		if err := cursor.Decode(&relations); err != nil {
			continue
		}
		for _, id := range relations.Favorites {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			bookIDs = append(bookIDs, id)
		}
	}
	return bookIDs, nil
}
