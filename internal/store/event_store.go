package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sport_events/internal/models"
)

const dateLayout = "2006-01-02"

// EventStore persists events in Postgres through GORM.
type EventStore struct {
	db *gorm.DB
}

// NewEventStore wraps a GORM handle.
func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{db: db}
}

// Save inserts the event and fills in its generated id.
func (s *EventStore) Save(ctx context.Context, event *models.Event) error {
	return s.db.WithContext(ctx).Create(event).Error
}

// FindByID loads one event with its category, or gorm.ErrRecordNotFound.
func (s *EventStore) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := s.db.WithContext(ctx).Preload("SportCategory").First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindAll returns every stored event.
func (s *EventStore) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.WithContext(ctx).Preload("SportCategory").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteByID removes an event. Callers check existence first; deleting a
// missing id is not an error at this layer.
func (s *EventStore) DeleteByID(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Event{}, id).Error
}

// FindByCoordinatorID returns the events coordinated by the given user.
func (s *EventStore) FindByCoordinatorID(ctx context.Context, coordinatorID uint) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Preload("SportCategory").
		Where("id_coordinator = ?", coordinatorID).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// FindByCategoryName returns events whose category name matches exactly.
func (s *EventStore) FindByCategoryName(ctx context.Context, name string) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Joins("JOIN sport_categories ON sport_categories.id = events.sport_category_id").
		Where("sport_categories.name = ?", name).
		Preload("SportCategory").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// FindByDateRange returns events starting between the two dates, inclusive.
func (s *EventStore) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Preload("SportCategory").
		Where("start_date BETWEEN ? AND ?", start.Format(dateLayout), end.Format(dateLayout)).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// FindByDate returns events starting on exactly the given day.
func (s *EventStore) FindByDate(ctx context.Context, day time.Time) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Preload("SportCategory").
		Where("start_date = ?", day.Format(dateLayout)).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// FindFromDate returns events starting on or after the given day.
func (s *EventStore) FindFromDate(ctx context.Context, day time.Time) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Preload("SportCategory").
		Where("start_date >= ?", day.Format(dateLayout)).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// FindByTimeRange returns events whose start time falls inside the clock
// range, inclusive on both ends. The date column is ignored.
func (s *EventStore) FindByTimeRange(ctx context.Context, start, end models.TimeOfDay) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Preload("SportCategory").
		Where("start_time BETWEEN ? AND ?", start, end).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
