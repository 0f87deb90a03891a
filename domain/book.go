package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaceholderCoverURL is served whenever a catalog entry has no usable cover
// reference. The catalog is imported from heterogeneous sources and cover
// fields are frequently blank.
const PlaceholderCoverURL = "https://static.shelfmate.app/covers/placeholder.png"

// Book is a read-only catalog entity. The engine never writes to the books
// collection; ingestion is owned by a separate service.
type Book struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Authors       []string           `bson:"authors" json:"authors"`
	Description   string             `bson:"description" json:"description"`
	Categories    []string           `bson:"categories" json:"categories"`
	AverageRating float64            `bson:"average_rating" json:"rating"`
	RatingsCount  int                `bson:"ratings_count" json:"ratingsCount"`
	PublishedDate time.Time          `bson:"published_date" json:"publishedDate"`
	CoverImage    string             `bson:"cover_image" json:"-"`
	PageCount     int                `bson:"page_count" json:"pageCount"`
	Publisher     string             `bson:"publisher" json:"publisher"`
	ISBN13        string             `bson:"isbn13" json:"isbn13"`
	ISBN          string             `bson:"isbn" json:"isbn"`
	ExternalIDs   map[string]string  `bson:"external_ids,omitempty" json:"externalIds,omitempty"`
}

// PrimaryAuthor returns the first author, the display name used by list views.
func (b Book) PrimaryAuthor() string {
	if len(b.Authors) == 0 {
		return ""
	}
	return b.Authors[0]
}

type BookResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Author        string            `json:"author"`
	Authors       []string          `json:"authors"`
	Description   string            `json:"description"`
	PublishedDate time.Time         `json:"publishedDate"`
	CoverURL      string            `json:"coverUrl"`
	Rating        float64           `json:"rating"`
	RatingsCount  int               `json:"ratingsCount"`
	PageCount     int               `json:"pageCount"`
	Categories    []string          `json:"categories"`
	Publisher     string            `json:"publisher"`
	ISBN13        string            `json:"isbn13"`
	ISBN          string            `json:"isbn"`
	ExternalIDs   map[string]string `json:"externalIds,omitempty"`
}

func NewBookResponse(b Book) BookResponse {
	cover := b.CoverImage
	if cover == "" {
		cover = PlaceholderCoverURL
	}
	return BookResponse{
		ID:            b.ID.Hex(),
		Title:         b.Title,
		Author:        b.PrimaryAuthor(),
		Authors:       b.Authors,
		Description:   b.Description,
		PublishedDate: b.PublishedDate,
		CoverURL:      cover,
		Rating:        b.AverageRating,
		RatingsCount:  b.RatingsCount,
		PageCount:     b.PageCount,
		Categories:    b.Categories,
		Publisher:     b.Publisher,
		ISBN13:        b.ISBN13,
		ISBN:          b.ISBN,
		ExternalIDs:   b.ExternalIDs,
	}
}

func NewBookResponses(books []Book) []BookResponse {
	responses := make([]BookResponse, 0, len(books))
	for _, b := range books {
		responses = append(responses, NewBookResponse(b))
	}
	return responses
}

// CatalogRepository is the read-only query surface over the books collection.
// Category and author matching is case-insensitive substring matching because
// catalog strings are inconsistently formatted free text.
type CatalogRepository interface {
	// FindByPreferences matches books carrying a cover whose categories match
	// any of the given labels or whose authors match any of the given tokens.
	FindByPreferences(ctx context.Context, genres []string, authorTokens []string, limit int64) ([]Book, error)

	// FindByCategories matches covered books by category label only,
	// excluding the given ids.
	FindByCategories(ctx context.Context, categories []string, exclude []primitive.ObjectID, limit int64) ([]Book, error)

	// FindByAuthors matches covered books by author token only.
	FindByAuthors(ctx context.Context, authorTokens []string, limit int64) ([]Book, error)

	// FindPopular returns well-rated covered books, excluding the given ids.
	FindPopular(ctx context.Context, exclude []primitive.ObjectID, limit int64) ([]Book, error)

	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Book, error)
}
