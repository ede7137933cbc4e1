package models

import (
	"gorm.io/gorm"
)

// SportCategory classifies events and decides whether an event of this
// category needs a route (e.g. marathon) or a simple point location.
// Categories are administered out-of-band; events reference them, never own them.
type SportCategory struct {
	gorm.Model

	Name          string `json:"name" binding:"required"`
	IconPath      string `json:"icon_path"`
	RequiresRoute bool   `json:"requires_route" gorm:"default:false"`
}
