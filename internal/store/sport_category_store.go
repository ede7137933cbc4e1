package store

import (
	"context"

	"gorm.io/gorm"

	"sport_events/internal/models"
)

// SportCategoryStore persists sport categories. Categories are administered
// out-of-band (seeding, migrations); the API only reads them.
type SportCategoryStore struct {
	db *gorm.DB
}

// NewSportCategoryStore wraps a GORM handle.
func NewSportCategoryStore(db *gorm.DB) *SportCategoryStore {
	return &SportCategoryStore{db: db}
}

// Save inserts a category; used by seeding and tests.
func (s *SportCategoryStore) Save(ctx context.Context, category *models.SportCategory) error {
	return s.db.WithContext(ctx).Create(category).Error
}

// FindByID loads one category, or gorm.ErrRecordNotFound.
func (s *SportCategoryStore) FindByID(ctx context.Context, id uint) (*models.SportCategory, error) {
	var category models.SportCategory
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindByName looks a category up by exact name.
func (s *SportCategoryStore) FindByName(ctx context.Context, name string) (*models.SportCategory, error) {
	var category models.SportCategory
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindAll returns every category.
func (s *SportCategoryStore) FindAll(ctx context.Context) ([]models.SportCategory, error) {
	var categories []models.SportCategory
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
