package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// ResolveLocalUser finds the local user for an external identity, creating it
// on first sight. Two requests racing on a brand-new identity both succeed:
// the loser of the insert re-fetches the winner's row.
func (s *userService) ResolveLocalUser(identity Identity) (*models.User, error) {
	if identity.ExternalID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	var user models.User
	err := s.db.Where("external_id = ?", identity.ExternalID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user = models.User{
		ExternalID: identity.ExternalID,
		Email:      identity.Email,
		Name:       identity.Name,
		ImageURL:   identity.ImageURL,
	}
	if createErr := s.db.Create(&user).Error; createErr != nil {
		// Unique index on external_id: a concurrent request won the insert.
		var existing models.User
		if fetchErr := s.db.Where("external_id = ?", identity.ExternalID).First(&existing).Error; fetchErr == nil {
			return &existing, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, createErr)
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}
