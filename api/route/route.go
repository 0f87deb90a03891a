package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shelfmate/shelfmate-server/api/controller"
	"github.com/shelfmate/shelfmate-server/api/middleware"
	"github.com/shelfmate/shelfmate-server/bootstrap"
	"github.com/shelfmate/shelfmate-server/mongo"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, gin *gin.Engine) {
	gin.Use(middleware.RequestIDMiddleware())

	publicRouter := gin.Group("")
	healthController := controller.NewHealthController(db)
	publicRouter.GET("/healthz", healthController.Check)

	protectedRouter := gin.Group("")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))
	NewFeedRouter(timeout, db, protectedRouter)
}
