package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sport_events/internal/models"
)

// EventStore is the persistence surface the service needs.
type EventStore interface {
	Save(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindAll(ctx context.Context) ([]models.Event, error)
	DeleteByID(ctx context.Context, id uint) error
	FindByCoordinatorID(ctx context.Context, coordinatorID uint) ([]models.Event, error)
	FindByCategoryName(ctx context.Context, name string) ([]models.Event, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Event, error)
	FindByDate(ctx context.Context, day time.Time) ([]models.Event, error)
	FindFromDate(ctx context.Context, day time.Time) ([]models.Event, error)
	FindByTimeRange(ctx context.Context, start, end models.TimeOfDay) ([]models.Event, error)
}

// CategoryStore resolves sport categories referenced by events.
type CategoryStore interface {
	FindByID(ctx context.Context, id uint) (*models.SportCategory, error)
	FindAll(ctx context.Context) ([]models.SportCategory, error)
}

// GeoClient looks up locations and routes in the geolocation service.
type GeoClient interface {
	GetLocationByID(ctx context.Context, id uint) (*models.Location, error)
	GetRouteByID(ctx context.Context, id uint) (*models.Route, error)
}

// EventService orchestrates validation, geolocation resolution and
// date-bucket filtering. It holds no state between requests.
type EventService struct {
	events     EventStore
	categories CategoryStore
	geo        GeoClient

	// now is swappable so date-bucket queries are testable.
	now func() time.Time
}

// NewEventService wires the service with its dependencies.
func NewEventService(events EventStore, categories CategoryStore, geo GeoClient) *EventService {
	return &EventService{
		events:     events,
		categories: categories,
		geo:        geo,
		now:        time.Now,
	}
}

// CreateEvent validates the referenced category, resolves the required route
// or location, and persists the event. The resolved geolocation value is
// attached to the returned event but not stored.
func (s *EventService) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	categoryID := event.SportCategoryID
	if categoryID == 0 {
		categoryID = event.SportCategory.ID
	}

	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSportCategoryNotFound
		}
		return nil, fmt.Errorf("resolve sport category: %w", err)
	}
	event.SportCategory = *category
	event.SportCategoryID = category.ID

	if category.RequiresRoute {
		if event.RouteID == nil {
			return nil, ErrRouteIDRequired
		}
		route, err := s.geo.GetRouteByID(ctx, *event.RouteID)
		if err != nil || route == nil {
			// Absence and transport failure both reject the creation.
			return nil, ErrRouteNotFound
		}
		event.Route = route
	} else {
		if event.LocationID == nil {
			return nil, ErrLocationNotFound
		}
		location, err := s.geo.GetLocationByID(ctx, *event.LocationID)
		if err != nil || location == nil {
			return nil, ErrLocationNotFound
		}
		event.Location = location
	}

	if err := s.events.Save(ctx, event); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}
	return event, nil
}

// GetEventByID loads an event without enrichment.
func (s *EventService) GetEventByID(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return event, nil
}

// GetAllEvents lists every event without enrichment.
func (s *EventService) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	return s.events.FindAll(ctx)
}

// DeleteEvent removes an event by id, or ErrEventNotFound without touching
// the store.
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if _, err := s.GetEventByID(ctx, id); err != nil {
		return err
	}
	return s.events.DeleteByID(ctx, id)
}

// GetEventWithDetails loads an event and attaches its location/route from the
// geolocation service. Enrichment is best effort: a failed lookup is logged
// and the field stays unset so the detail view still renders.
func (s *EventService) GetEventWithDetails(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.enrich(ctx, event)
	return event, nil
}

// GetAllEventsWithDetails lists every event with best-effort enrichment.
func (s *EventService) GetAllEventsWithDetails(ctx context.Context) ([]models.Event, error) {
	events, err := s.events.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		s.enrich(ctx, &events[i])
	}
	return events, nil
}

func (s *EventService) enrich(ctx context.Context, event *models.Event) {
	if event.LocationID != nil {
		location, err := s.geo.GetLocationByID(ctx, *event.LocationID)
		if err != nil {
			logrus.WithError(err).WithField("event_id", event.ID).Warn("could not fetch location details")
		} else {
			event.Location = location
		}
	}

	if event.RouteID != nil {
		route, err := s.geo.GetRouteByID(ctx, *event.RouteID)
		if err != nil {
			logrus.WithError(err).WithField("event_id", event.ID).Warn("could not fetch route details")
		} else {
			event.Route = route
		}
	}
}

// GetEventsBetweenDates returns events starting in [start, end].
func (s *EventService) GetEventsBetweenDates(ctx context.Context, start, end time.Time) ([]models.Event, error) {
	return s.events.FindByDateRange(ctx, start, end)
}

// GetEventsForToday returns events starting on the current date.
func (s *EventService) GetEventsForToday(ctx context.Context) ([]models.Event, error) {
	return s.events.FindByDate(ctx, s.now())
}

// GetEventsForTomorrow returns events starting on the next date.
func (s *EventService) GetEventsForTomorrow(ctx context.Context) ([]models.Event, error) {
	return s.events.FindByDate(ctx, s.now().AddDate(0, 0, 1))
}

// GetEventsThisWeek returns events in the rolling seven-day window from now.
func (s *EventService) GetEventsThisWeek(ctx context.Context) ([]models.Event, error) {
	today := s.now()
	return s.events.FindByDateRange(ctx, today, today.AddDate(0, 0, 7))
}

// GetEventsAfterThisWeek returns events from the next Monday onward. Unlike
// GetEventsThisWeek this anchors to the calendar week, so the two buckets can
// overlap or diverge depending on the current weekday.
func (s *EventService) GetEventsAfterThisWeek(ctx context.Context) ([]models.Event, error) {
	return s.events.FindFromDate(ctx, nextMonday(s.now()))
}

// nextMonday returns the first Monday strictly after the given day.
func nextMonday(from time.Time) time.Time {
	day := from.AddDate(0, 0, 1)
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// GetEventsByDateFilter dispatches a parsed date bucket to its query.
func (s *EventService) GetEventsByDateFilter(ctx context.Context, filter DateFilter) ([]models.Event, error) {
	switch filter {
	case FilterToday:
		return s.GetEventsForToday(ctx)
	case FilterTomorrow:
		return s.GetEventsForTomorrow(ctx)
	case FilterThisWeek:
		return s.GetEventsThisWeek(ctx)
	case FilterAfterThisWeek:
		return s.GetEventsAfterThisWeek(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDateFilter, filter)
	}
}

// FindEventsByPartOfDay returns events whose start time falls in the bucket's
// clock ranges. Night spans midnight, so its two ranges are concatenated; the
// ranges are disjoint, so no event appears twice.
func (s *EventService) FindEventsByPartOfDay(ctx context.Context, part PartOfDay) ([]models.Event, error) {
	ranges, ok := partOfDayRanges[part]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPartOfDay, part)
	}

	events := []models.Event{}
	for _, r := range ranges {
		batch, err := s.events.FindByTimeRange(ctx, r.start, r.end)
		if err != nil {
			return nil, fmt.Errorf("query time range: %w", err)
		}
		events = append(events, batch...)
	}
	return events, nil
}

// GetEventsBySportCategory returns events whose category name matches exactly.
func (s *EventService) GetEventsBySportCategory(ctx context.Context, categoryName string) ([]models.Event, error) {
	return s.events.FindByCategoryName(ctx, categoryName)
}

// GetEventsByCoordinator returns the events a user coordinates.
func (s *EventService) GetEventsByCoordinator(ctx context.Context, coordinatorID uint) ([]models.Event, error) {
	return s.events.FindByCoordinatorID(ctx, coordinatorID)
}

// ListSportCategories returns all categories.
func (s *EventService) ListSportCategories(ctx context.Context) ([]models.SportCategory, error) {
	return s.categories.FindAll(ctx)
}
