package Iservices

import "kivo-assistant/internal/domain/entities"

// IProfileService defines the methods the style-profile service must implement.
type IProfileService interface {
	FindOrCreate(userID string) entities.StyleProfile
	SaveAsync(profile entities.StyleProfile)
	Save(profile entities.StyleProfile) error
}
