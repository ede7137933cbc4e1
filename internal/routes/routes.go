package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"sport_events/internal/controllers"
)

func SetupRouter(ec *controllers.EventController) *gin.Engine {
	r := gin.New()

	// Recovery + request logging middleware
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	EventRoutes(r, ec)

	return r
}
