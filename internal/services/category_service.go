package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListForUser returns the union of default categories and the user's custom
// categories, sorted by name.
func (s *categoryService) ListForUser(userID string) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.
		Where("is_default = ? OR user_id = ?", true, userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// CreateCustom creates a custom category owned by the user. Custom categories
// are never marked default.
func (s *categoryService) CreateCustom(userID, name, icon, color string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	category := &models.Category{
		UserID:    &userID,
		Name:      name,
		Icon:      icon,
		Color:     color,
		IsDefault: false,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// GetVisibleByID retrieves a category by ID if it is visible to the user,
// meaning a shared default or one of the user's own.
func (s *categoryService) GetVisibleByID(userID, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.
		Where("id = ? AND (is_default = ? OR user_id = ?)", categoryID, true, userID).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// SeedDefaults installs the shared default categories. Existing defaults are
// matched by name and get their icon/color refreshed; missing ones are
// created. Safe to run on every startup.
func (s *categoryService) SeedDefaults(defaults []models.Category) error {
	for _, def := range defaults {
		var existing models.Category
		err := s.db.
			Where("name = ? AND is_default = ? AND user_id IS NULL", def.Name, true).
			First(&existing).Error

		switch {
		case err == nil:
			updates := map[string]interface{}{"icon": def.Icon, "color": def.Color}
			if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			category := models.Category{
				Name:      def.Name,
				Icon:      def.Icon,
				Color:     def.Color,
				IsDefault: true,
			}
			if err := s.db.Create(&category).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		default:
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}
