package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shelfmate/shelfmate-server/api/middleware"
	"github.com/shelfmate/shelfmate-server/domain"
)

// Server-enforced pagination bounds. The onboarding feed allows deeper pulls
// because clients prefetch it during signup.
const (
	defaultLimit       = 20
	maxLimit           = 50
	onboardingDefault  = 50
	onboardingMaxLimit = 200
)

type FeedController struct {
	FeedUsecase domain.FeedUsecase
}

func NewFeedController(feedUsecase domain.FeedUsecase) *FeedController {
	return &FeedController{FeedUsecase: feedUsecase}
}

// Fetch handles GET /feed/personalized. Only the onboarding type exercises
// the tiered engine and carries pagination metadata; the rest are simple
// relationship lookups. Unknown types silently serve the recommended feed.
func (fc *FeedController) Fetch(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	feedType := c.Query("type")
	if feedType == "" {
		feedType = domain.FeedTypeRecommended
	}

	page := positiveQueryInt(c, "page", 1)
	limit := resolveLimit(c, feedType)

	if feedType == domain.FeedTypeOnboarding {
		feedPage, err := fc.FeedUsecase.AssembleOnboarding(c.Request.Context(), userID, page, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, domain.FeedResponse{
			Books:   domain.NewBookResponses(feedPage.Books),
			Type:    feedType,
			Count:   len(feedPage.Books),
			Page:    &feedPage.Page,
			Total:   &feedPage.Total,
			HasMore: &feedPage.HasMore,
		})
		return
	}

	books, err := fc.lookup(c, feedType, userID, limit)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("type", feedType).Msg("feed lookup failed")
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, domain.FeedResponse{
		Books: domain.NewBookResponses(books),
		Type:  feedType,
		Count: len(books),
	})
}

func (fc *FeedController) lookup(c *gin.Context, feedType, userID string, limit int) ([]domain.Book, error) {
	ctx := c.Request.Context()
	switch feedType {
	case domain.FeedTypeFavorites:
		return fc.FeedUsecase.Favorites(ctx, userID, limit)
	case domain.FeedTypeAuthors:
		return fc.FeedUsecase.ByFavoriteAuthors(ctx, userID, limit)
	case domain.FeedTypeGenres:
		return fc.FeedUsecase.ByGenres(ctx, userID, limit)
	case domain.FeedTypeContinueReading:
		return fc.FeedUsecase.ContinueReading(ctx, userID, limit)
	case domain.FeedTypeFriends:
		return fc.FeedUsecase.FriendsActivity(ctx, userID, limit)
	default:
		return fc.FeedUsecase.Recommended(ctx, userID, limit)
	}
}

func resolveLimit(c *gin.Context, feedType string) int {
	fallback, ceiling := defaultLimit, maxLimit
	if feedType == domain.FeedTypeOnboarding {
		fallback, ceiling = onboardingDefault, onboardingMaxLimit
	}
	limit := positiveQueryInt(c, "limit", fallback)
	if limit > ceiling {
		limit = ceiling
	}
	return limit
}

func positiveQueryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
