package domain

import "context"

// Feed types accepted by GET /feed/personalized. Only FeedTypeOnboarding runs
// the tiered assembly engine; the rest are single-query lookups. Unknown
// values fall back to FeedTypeRecommended.
const (
	FeedTypeRecommended     = "recommended"
	FeedTypeFavorites       = "favorites"
	FeedTypeAuthors         = "authors"
	FeedTypeGenres          = "genres"
	FeedTypeContinueReading = "continue-reading"
	FeedTypeFriends         = "friends"
	FeedTypeOnboarding      = "onboarding"
)

// Candidate tiers, in decreasing specificity.
const (
	TierExactMatch   = 1
	TierRelatedGenre = 2
	TierPopularity   = 3
)

// Candidate is a retrieved book tagged with the tier that produced it. Never
// persisted; it only lives for the duration of one assembly call.
type Candidate struct {
	Book Book
	Tier int
}

// FeedPage is the paginated output of one assembly call. Total and HasMore
// are computed against the superset assembled for this request, not a cached
// catalog count, so they may drift slightly between consecutive requests.
type FeedPage struct {
	Books   []Book
	Page    int
	Limit   int
	Total   int
	HasMore bool
}

// FeedResponse is the HTTP envelope. Pagination fields are present only when
// the tiered engine was exercised.
type FeedResponse struct {
	Books   []BookResponse `json:"books"`
	Type    string         `json:"type"`
	Count   int            `json:"count"`
	Page    *int           `json:"page,omitempty"`
	Total   *int           `json:"total,omitempty"`
	HasMore *bool          `json:"hasMore,omitempty"`
}

type FeedUsecase interface {
	// AssembleOnboarding runs the full tiered engine: preference resolution,
	// genre expansion, three catalog tiers, dedup, seeded shuffle of the
	// popularity tier, and pagination. It degrades instead of failing: a
	// fully unavailable catalog yields an empty page, never an error.
	AssembleOnboarding(ctx context.Context, userID string, page, limit int) (*FeedPage, error)

	Recommended(ctx context.Context, userID string, limit int) ([]Book, error)
	Favorites(ctx context.Context, userID string, limit int) ([]Book, error)
	ByFavoriteAuthors(ctx context.Context, userID string, limit int) ([]Book, error)
	ByGenres(ctx context.Context, userID string, limit int) ([]Book, error)
	ContinueReading(ctx context.Context, userID string, limit int) ([]Book, error)
	FriendsActivity(ctx context.Context, userID string, limit int) ([]Book, error)
}
