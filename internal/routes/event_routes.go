package routes

import (
	"github.com/gin-gonic/gin"

	"sport_events/internal/controllers"
)

func EventRoutes(r *gin.Engine, ec *controllers.EventController) {
	events := r.Group("/api/events")
	{
		events.POST("/create", ec.CreateEvent)
		events.GET("/all", ec.GetAllEvents)
		events.GET("/all-details", ec.GetAllEventsWithDetails)
		events.GET("/:id/basic", ec.GetEventByID)
		events.GET("/:id/details", ec.GetEventWithDetails)
		events.DELETE("/:id", ec.DeleteEvent)
		events.GET("/between", ec.GetEventsBetweenDates)
		events.GET("/filterByDate", ec.GetEventsByDateFilter)
		events.GET("/filterByCategoryAndDate", ec.GetEventsByCategoryAndDateFilter)
		events.GET("/filterByPartOfDay", ec.GetEventsByPartOfDay)
		events.GET("/associated/:userid", ec.GetEventsByCoordinator)
	}

	r.GET("/api/categories", ec.ListSportCategories)
}
