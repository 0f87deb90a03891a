package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shelfmate/shelfmate-server/api/middleware"
	"github.com/shelfmate/shelfmate-server/domain"
	"github.com/shelfmate/shelfmate-server/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testUserID = "64b0c8f2a1d3e4f5a6b7c8d9"

func setupFeedRouter(usecase domain.FeedUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, testUserID)
	})
	fc := NewFeedController(usecase)
	router.GET("/feed/personalized", fc.Fetch)
	return router
}

func doFeedRequest(t *testing.T, router *gin.Engine, query string) (*httptest.ResponseRecorder, domain.FeedResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/feed/personalized"+query, nil)
	router.ServeHTTP(w, req)

	var body domain.FeedResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func someBooks(n int) []domain.Book {
	books := make([]domain.Book, n)
	for i := range books {
		books[i] = domain.Book{ID: primitive.NewObjectID(), Title: "Book", Authors: []string{"Author"}}
	}
	return books
}

func TestFetch_OnboardingCarriesPaginationEnvelope(t *testing.T) {
	usecase := new(mocks.FeedUsecase)
	usecase.On("AssembleOnboarding", mock.Anything, testUserID, 2, 50).Return(&domain.FeedPage{
		Books:   someBooks(50),
		Page:    2,
		Limit:   50,
		Total:   160,
		HasMore: true,
	}, nil)

	router := setupFeedRouter(usecase)
	w, body := doFeedRequest(t, router, "?type=onboarding&page=2")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "onboarding", body.Type)
	assert.Equal(t, 50, body.Count)
	require.NotNil(t, body.Page)
	assert.Equal(t, 2, *body.Page)
	require.NotNil(t, body.Total)
	assert.Equal(t, 160, *body.Total)
	require.NotNil(t, body.HasMore)
	assert.True(t, *body.HasMore)
	usecase.AssertExpectations(t)
}

func TestFetch_OnboardingLimitCapped(t *testing.T) {
	usecase := new(mocks.FeedUsecase)
	usecase.On("AssembleOnboarding", mock.Anything, testUserID, 1, 200).Return(&domain.FeedPage{}, nil)

	router := setupFeedRouter(usecase)
	w, _ := doFeedRequest(t, router, "?type=onboarding&limit=9999")

	assert.Equal(t, http.StatusOK, w.Code)
	usecase.AssertExpectations(t)
}

func TestFetch_DefaultTypeIsRecommended(t *testing.T) {
	usecase := new(mocks.FeedUsecase)
	usecase.On("Recommended", mock.Anything, testUserID, 20).Return(someBooks(3), nil)

	router := setupFeedRouter(usecase)
	w, body := doFeedRequest(t, router, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "recommended", body.Type)
	assert.Equal(t, 3, body.Count)
	// No pagination fields outside the tiered engine.
	assert.Nil(t, body.Page)
	assert.Nil(t, body.Total)
	assert.Nil(t, body.HasMore)
}

func TestFetch_UnknownTypeFallsBackToRecommended(t *testing.T) {
	usecase := new(mocks.FeedUsecase)
	usecase.On("Recommended", mock.Anything, testUserID, 20).Return(someBooks(1), nil)

	router := setupFeedRouter(usecase)
	w, body := doFeedRequest(t, router, "?type=definitely-not-a-feed")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "definitely-not-a-feed", body.Type)
	usecase.AssertExpectations(t)
}

func TestFetch_LimitCappedForSimpleTypes(t *testing.T) {
	usecase := new(mocks.FeedUsecase)
	usecase.On("Favorites", mock.Anything, testUserID, 50).Return(someBooks(2), nil)

	router := setupFeedRouter(usecase)
	w, _ := doFeedRequest(t, router, "?type=favorites&limit=120")

	assert.Equal(t, http.StatusOK, w.Code)
	usecase.AssertExpectations(t)
}

func TestFetch_BadPageFallsBackToDefault(t *testing.T) {
	usecase := new(mocks.FeedUsecase)
	usecase.On("AssembleOnboarding", mock.Anything, testUserID, 1, 50).Return(&domain.FeedPage{}, nil)

	router := setupFeedRouter(usecase)
	w, _ := doFeedRequest(t, router, "?type=onboarding&page=-3")

	assert.Equal(t, http.StatusOK, w.Code)
	usecase.AssertExpectations(t)
}

func TestFetch_LookupErrorIsServerError(t *testing.T) {
	usecase := new(mocks.FeedUsecase)
	usecase.On("FriendsActivity", mock.Anything, testUserID, 20).Return(nil, errors.New("boom"))

	router := setupFeedRouter(usecase)
	w, _ := doFeedRequest(t, router, "?type=friends")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFetch_PlaceholderCover(t *testing.T) {
	usecase := new(mocks.FeedUsecase)
	usecase.On("Recommended", mock.Anything, testUserID, 20).Return([]domain.Book{
		{ID: primitive.NewObjectID(), Title: "No Cover"},
		{ID: primitive.NewObjectID(), Title: "Covered", CoverImage: "https://covers.example.com/1.jpg"},
	}, nil)

	router := setupFeedRouter(usecase)
	_, body := doFeedRequest(t, router, "?type=recommended")

	require.Len(t, body.Books, 2)
	assert.Equal(t, domain.PlaceholderCoverURL, body.Books[0].CoverURL)
	assert.Equal(t, "https://covers.example.com/1.jpg", body.Books[1].CoverURL)
}
