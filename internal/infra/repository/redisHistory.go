package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"kivo-assistant/internal/domain/entities"
)

const historyCap = 10

// RedisHistoryStore keeps the per-session emotion history as a capped redis
// list: RPush appends, LTrim bounds, LRange reads the tail.
type RedisHistoryStore struct {
	client *redis.Client
	prefix string
}

func NewRedisHistoryStore(client *redis.Client) *RedisHistoryStore {
	return &RedisHistoryStore{client: client, prefix: "kivo:history"}
}

func (s *RedisHistoryStore) key(sessionID string) string {
	return fmt.Sprintf("%s:%s", s.prefix, sessionID)
}

func (s *RedisHistoryStore) Append(ctx context.Context, sessionID string, record entities.EmotionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	key := s.key(sessionID)
	if err := s.client.RPush(ctx, key, string(data)).Err(); err != nil {
		return err
	}
	return s.client.LTrim(ctx, key, -historyCap, -1).Err()
}

func (s *RedisHistoryStore) LastN(ctx context.Context, sessionID string, n int) ([]entities.EmotionRecord, error) {
	raw, err := s.client.LRange(ctx, s.key(sessionID), int64(-n), -1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]entities.EmotionRecord, 0, len(raw))
	for _, item := range raw {
		var rec entities.EmotionRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
