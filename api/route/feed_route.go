package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shelfmate/shelfmate-server/api/controller"
	"github.com/shelfmate/shelfmate-server/domain"
	"github.com/shelfmate/shelfmate-server/mongo"
	"github.com/shelfmate/shelfmate-server/repository"
	"github.com/shelfmate/shelfmate-server/usecase"
)

func NewFeedRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	preferenceRepo := repository.NewPreferenceRepository(db, domain.CollectionUsers)
	userRepo := repository.NewUserRepository(db, domain.CollectionUsers)
	bookRepo := repository.NewBookRepository(db, domain.CollectionBooks)

	feedUsecase := usecase.NewFeedUsecase(preferenceRepo, userRepo, bookRepo, timeout)
	feedController := controller.NewFeedController(feedUsecase)

	feedGroup := group.Group("/feed")
	{
		// GET /feed/personalized?type=onboarding&page=1&limit=50
		feedGroup.GET("/personalized", feedController.Fetch)
	}
}
