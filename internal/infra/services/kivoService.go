package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"kivo-assistant/internal/domain/dto"
	"kivo-assistant/internal/domain/entities"
	"kivo-assistant/internal/domain/interfaces/repository"
	Iservices "kivo-assistant/internal/domain/interfaces/services"
	"kivo-assistant/internal/infra/logger"
	"kivo-assistant/internal/kivo"
)

// userSession pairs a live engine session with its own lock so two rapid
// messages from the same user serialize their read-modify-write on the
// profile and the emotional state. The profile here is the authoritative
// copy: it is loaded from the store once on first contact and written behind
// after every turn, so an in-flight save can never feed a stale profile back
// into the next turn.
type userSession struct {
	mu      sync.Mutex
	sess    *kivo.Session
	profile entities.StyleProfile
	loaded  bool
}

// KivoService runs the deterministic persona engine per user and dispatches
// the persistence side effects without blocking the reply.
type KivoService struct {
	Logger         *logger.Logger
	ProfileService Iservices.IProfileService
	HistoryStore   repository.HistoryStore
	Engine         *kivo.Engine

	mu       sync.Mutex
	sessions map[string]*userSession
}

func NewKivoService(logger *logger.Logger, profileService Iservices.IProfileService, historyStore repository.HistoryStore) *KivoService {
	return &KivoService{
		Logger:         logger,
		ProfileService: profileService,
		HistoryStore:   historyStore,
		Engine:         kivo.NewEngine(),
		sessions:       map[string]*userSession{},
	}
}

// Evaluate handles one turn for a user. The engine itself cannot fail; the
// error return exists only for the service contract.
func (ks *KivoService) Evaluate(userID string, message string) (dto.KivoResponse, error) {
	us := ks.sessionFor(userID)

	us.mu.Lock()
	defer us.mu.Unlock()

	if !us.loaded {
		us.profile = ks.ProfileService.FindOrCreate(userID)
		us.loaded = true
	}

	result := ks.Engine.Evaluate(message, us.sess, &us.profile, time.Now())

	ks.ProfileService.SaveAsync(us.profile)
	ks.appendHistoryAsync(userID, result.Emotion)

	return dto.KivoResponse{
		Response:  result.Response,
		FinalMode: result.FinalMode,
		Emotion:   result.Emotion,
	}, nil
}

// sessionFor returns the live session for a user, hydrating a new one from
// the durable emotion history on first contact.
func (ks *KivoService) sessionFor(userID string) *userSession {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	if us, ok := ks.sessions[userID]; ok {
		return us
	}

	sess := kivo.NewSession(userID)
	if records, err := ks.HistoryStore.LastN(context.Background(), userID, 10); err == nil {
		for _, rec := range records {
			sess.RecordEmotion(rec.Emotion, rec.Timestamp)
		}
	}

	us := &userSession{sess: sess}
	ks.sessions[userID] = us
	return us
}

// appendHistoryAsync records the turn's emotion without blocking the reply.
// History is keyed by user id so a new in-process session rehydrates from it.
func (ks *KivoService) appendHistoryAsync(userID string, emotion string) {
	record := entities.EmotionRecord{Emotion: emotion, Timestamp: time.Now()}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := ks.HistoryStore.Append(ctx, userID, record); err != nil {
			ks.Logger.Warn(fmt.Sprintf("Emotion history append dropped for user '%s': %v", userID, err))
		}
	}()
}
