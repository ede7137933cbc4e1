package models

import (
	"time"

	"gorm.io/gorm"
)

// Event represents a scheduled sporting activity. Location and Route are
// transient enrichment fields filled from the geolocation service on the
// detail paths; only LocationID/RouteID are persisted.
type Event struct {
	gorm.Model

	IDCoordinator          uint      `json:"id_coordinator"`
	Name                   string    `json:"name" binding:"required"`
	Description            string    `json:"description"`
	MaxParticipants        int       `json:"max_participants"`
	CurrentNumParticipants int       `json:"current_num_participants"`
	StartDate              time.Time `json:"start_date" gorm:"type:date"`
	StartTime              TimeOfDay `json:"start_time" gorm:"type:time"`

	SportCategoryID uint          `json:"sport_category_id"`
	SportCategory   SportCategory `gorm:"foreignKey:SportCategoryID" json:"sport_category"`

	LocationID *uint `json:"location_id,omitempty"`
	RouteID    *uint `json:"route_id,omitempty"`

	Location *Location `gorm:"-" json:"location,omitempty"`
	Route    *Route    `gorm:"-" json:"route,omitempty"`
}

// EventDTO is the reduced projection returned by the list/filter endpoints.
type EventDTO struct {
	ID                     uint      `json:"id"`
	IDCoordinator          uint      `json:"id_coordinator"`
	Name                   string    `json:"name"`
	Description            string    `json:"description"`
	MaxParticipants        int       `json:"max_participants"`
	CurrentNumParticipants int       `json:"current_num_participants"`
	StartDate              string    `json:"start_date"`
	StartTime              TimeOfDay `json:"start_time"`
	CategoryName           string    `json:"category_name"`
}

// ToDTO flattens an event for list responses.
func (e Event) ToDTO() EventDTO {
	return EventDTO{
		ID:                     e.ID,
		IDCoordinator:          e.IDCoordinator,
		Name:                   e.Name,
		Description:            e.Description,
		MaxParticipants:        e.MaxParticipants,
		CurrentNumParticipants: e.CurrentNumParticipants,
		StartDate:              e.StartDate.Format("2006-01-02"),
		StartTime:              e.StartTime,
		CategoryName:           e.SportCategory.Name,
	}
}

// ToDTOs maps a slice of events to their list projection.
func ToDTOs(events []Event) []EventDTO {
	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, e.ToDTO())
	}
	return dtos
}
