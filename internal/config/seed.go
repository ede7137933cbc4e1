package config

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sport_events/internal/models"
)

// SeedSampleData inserts a couple of categories and events for local
// development. It is a no-op when categories already exist.
func SeedSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.SportCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	football := models.SportCategory{Name: "Football", IconPath: "/icons/football.png"}
	marathon := models.SportCategory{Name: "Marathon", IconPath: "/icons/marathon.png", RequiresRoute: true}
	if err := db.Create(&football).Error; err != nil {
		return err
	}
	if err := db.Create(&marathon).Error; err != nil {
		return err
	}

	locationID := uint(1)
	routeID := uint(1)
	events := []models.Event{
		{
			IDCoordinator:          1,
			Name:                   "Football Match",
			Description:            "A friendly football match",
			MaxParticipants:        22,
			CurrentNumParticipants: 10,
			StartDate:              time.Now().AddDate(0, 0, 3),
			StartTime:              models.NewTimeOfDay(17, 30),
			SportCategoryID:        football.ID,
			LocationID:             &locationID,
		},
		{
			IDCoordinator:          2,
			Name:                   "City Marathon",
			Description:            "The annual city marathon",
			MaxParticipants:        500,
			CurrentNumParticipants: 320,
			StartDate:              time.Now().AddDate(0, 1, 0),
			StartTime:              models.NewTimeOfDay(7, 0),
			SportCategoryID:        marathon.ID,
			RouteID:                &routeID,
		},
	}
	for i := range events {
		if err := db.Create(&events[i]).Error; err != nil {
			return err
		}
	}

	logrus.Info("Sample events have been saved")
	return nil
}
