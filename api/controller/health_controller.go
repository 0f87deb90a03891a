package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelfmate/shelfmate-server/domain"
	"github.com/shelfmate/shelfmate-server/mongo"
)

type HealthController struct {
	DB mongo.Database
}

func NewHealthController(db mongo.Database) *HealthController {
	return &HealthController{DB: db}
}

func (hc *HealthController) Check(c *gin.Context) {
	if err := hc.DB.Client().Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, domain.ErrorResponse{Message: "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
