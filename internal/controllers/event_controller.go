package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sport_events/internal/models"
	"sport_events/internal/service"
)

const dateLayout = "2006-01-02"

// EventController maps HTTP requests onto the event service.
type EventController struct {
	events *service.EventService
}

// NewEventController wires a controller with its service.
func NewEventController(events *service.EventService) *EventController {
	return &EventController{events: events}
}

// CreateEvent handles POST /api/events/create.
func (ec *EventController) CreateEvent(c *gin.Context) {
	var input models.Event
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event input: " + err.Error()})
		return
	}

	created, err := ec.events.CreateEvent(c.Request.Context(), &input)
	if err != nil {
		if service.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logrus.WithError(err).Error("CreateEvent: could not create event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetAllEventsWithDetails handles GET /api/events/all-details.
func (ec *EventController) GetAllEventsWithDetails(c *gin.Context) {
	events, err := ec.events.GetAllEventsWithDetails(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEventWithDetails handles GET /api/events/:id/details.
func (ec *EventController) GetEventWithDetails(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	event, err := ec.events.GetEventWithDetails(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching event"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// GetEventByID handles GET /api/events/:id/basic.
func (ec *EventController) GetEventByID(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	event, err := ec.events.GetEventByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching event"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// GetAllEvents handles GET /api/events/all.
func (ec *EventController) GetAllEvents(c *gin.Context) {
	events, err := ec.events.GetAllEvents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// DeleteEvent handles DELETE /api/events/:id.
func (ec *EventController) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	if err := ec.events.DeleteEvent(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetEventsBetweenDates handles GET /api/events/between?startDate=&endDate=.
func (ec *EventController) GetEventsBetweenDates(c *gin.Context) {
	start, errStart := time.Parse(dateLayout, c.Query("startDate"))
	end, errEnd := time.Parse(dateLayout, c.Query("endDate"))
	if errStart != nil || errEnd != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	events, err := ec.events.GetEventsBetweenDates(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
		return
	}
	c.JSON(http.StatusOK, models.ToDTOs(events))
}

// GetEventsByDateFilter handles GET /api/events/filterByDate?filter=.
func (ec *EventController) GetEventsByDateFilter(c *gin.Context) {
	filter, err := service.ParseDateFilter(c.Query("filter"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := ec.events.GetEventsByDateFilter(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
		return
	}
	c.JSON(http.StatusOK, models.ToDTOs(events))
}

// GetEventsByCategoryAndDateFilter handles
// GET /api/events/filterByCategoryAndDate?categoryName=&filter=.
// An event is returned only when it is in both the category list and the
// date bucket.
func (ec *EventController) GetEventsByCategoryAndDateFilter(c *gin.Context) {
	filter, err := service.ParseDateFilter(c.Query("filter"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	byCategory, err := ec.events.GetEventsBySportCategory(ctx, c.Query("categoryName"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
		return
	}

	byDate, err := ec.events.GetEventsByDateFilter(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
		return
	}

	inCategory := make(map[uint]bool, len(byCategory))
	for _, e := range byCategory {
		inCategory[e.ID] = true
	}

	intersection := []models.Event{}
	for _, e := range byDate {
		if inCategory[e.ID] {
			intersection = append(intersection, e)
		}
	}
	c.JSON(http.StatusOK, models.ToDTOs(intersection))
}

// GetEventsByPartOfDay handles GET /api/events/filterByPartOfDay?part=.
func (ec *EventController) GetEventsByPartOfDay(c *gin.Context) {
	part, err := service.ParsePartOfDay(c.Query("part"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := ec.events.FindEventsByPartOfDay(c.Request.Context(), part)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
		return
	}
	c.JSON(http.StatusOK, models.ToDTOs(events))
}

// GetEventsByCoordinator handles GET /api/events/associated/:userid.
func (ec *EventController) GetEventsByCoordinator(c *gin.Context) {
	id, ok := parseID(c, c.Param("userid"))
	if !ok {
		return
	}

	events, err := ec.events.GetEventsByCoordinator(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// ListSportCategories handles GET /api/categories.
func (ec *EventController) ListSportCategories(c *gin.Context) {
	categories, err := ec.events.ListSportCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func parseID(c *gin.Context, raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id: " + raw})
		return 0, false
	}
	return uint(id), true
}
