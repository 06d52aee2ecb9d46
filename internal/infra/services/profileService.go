package services

import (
	"context"
	"fmt"
	"time"

	"kivo-assistant/internal/domain/entities"
	"kivo-assistant/internal/domain/interfaces/repository"
	repocontants "kivo-assistant/internal/domain/interfaces/repository/contants"
	"kivo-assistant/internal/infra/logger"
)

// ProfileService is the service responsible for StyleProfile persistence.
type ProfileService struct {
	ProfileRepository repository.Repository[entities.StyleProfile]
	Ctx               context.Context
	Logger            *logger.Logger
}

// NewProfileService creates a new instance of the service.
func NewProfileService(profileRepository repository.Repository[entities.StyleProfile], ctx context.Context, logger *logger.Logger) *ProfileService {
	return &ProfileService{
		ProfileRepository: profileRepository,
		Ctx:               ctx,
		Logger:            logger,
	}
}

// FindOrCreate loads the profile for a user, or returns a fresh one on the
// first message. A load failure degrades to a fresh profile; it never
// surfaces to the reply path.
func (ps *ProfileService) FindOrCreate(userID string) entities.StyleProfile {
	profile, err := ps.ProfileRepository.FindByUserID(ps.Ctx, repocontants.STYLE_PROFILE_COLLECTION, userID)
	if err != nil {
		ps.Logger.Warn(fmt.Sprintf("Profile not found for user %s. Initializing new profile.", userID))
		return entities.StyleProfile{
			UserID:    userID,
			Slang:     []string{},
			UpdatedAt: time.Now(),
		}
	}
	return profile
}

// Save merges the profile into durable storage keyed by user id.
func (ps *ProfileService) Save(profile entities.StyleProfile) error {
	// Clear _id so the upsert never conflicts with an existing document.
	profile.ID = ""

	_, err := ps.ProfileRepository.Update(ps.Ctx, repocontants.STYLE_PROFILE_COLLECTION, profile.UserID, profile)
	if err != nil {
		ps.Logger.Error(fmt.Sprintf("Failed to save StyleProfile for user '%s': %v", profile.UserID, err))
		return err
	}
	return nil
}

// SaveAsync persists the profile without blocking the reply. Failures are
// logged and dropped.
func (ps *ProfileService) SaveAsync(profile entities.StyleProfile) {
	go func() {
		if err := ps.Save(profile); err != nil {
			ps.Logger.Warn(fmt.Sprintf("Async profile save dropped for user '%s'", profile.UserID))
		}
	}()
}
