package redis

import (
	"encoding/json"
	"fmt"

	"astrocal-server/config"
	"astrocal-server/db"
	"astrocal-server/models"
)

const SESSION_SELECTED_DATE_KEY_FORMAT = "session_selected_date_v1:%s"

// RedisSessionDAO persists each session's selected date in Redis.
type RedisSessionDAO struct {
	client db.RedisClient
}

// NewRedisSessionDAO initializes a RedisSessionDAO with the Redis client.
func NewRedisSessionDAO(client db.RedisClient) *RedisSessionDAO {
	return &RedisSessionDAO{client: client}
}

// GetSelectedDate returns the stored selected date for the session, or
// nil when the session has no stored selection yet.
func (dao *RedisSessionDAO) GetSelectedDate(sessionID string) (*models.SelectedDate, error) {
	key := fmt.Sprintf(SESSION_SELECTED_DATE_KEY_FORMAT, sessionID)
	str, err := dao.client.Get(key)
	if err != nil {
		if db.IsKeyNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get selected date from redis: %w", err)
	}
	var d models.SelectedDate
	if err := json.Unmarshal([]byte(str), &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal selected date JSON: %w", err)
	}
	return &d, nil
}

// SetSelectedDate stores the session's selected date, refreshing the
// session TTL.
func (dao *RedisSessionDAO) SetSelectedDate(sessionID string, d models.SelectedDate) error {
	key := fmt.Sprintf(SESSION_SELECTED_DATE_KEY_FORMAT, sessionID)
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal selected date for session %s: %w", sessionID, err)
	}
	if err := dao.client.SetWithExpiry(key, string(data), config.SESSION_TTL); err != nil {
		return fmt.Errorf("failed to set selected date in redis: %w", err)
	}
	return nil
}

// DeleteSelectedDate drops the session's stored selection.
func (dao *RedisSessionDAO) DeleteSelectedDate(sessionID string) error {
	key := fmt.Sprintf(SESSION_SELECTED_DATE_KEY_FORMAT, sessionID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete selected date key %s: %w", key, err)
	}
	return nil
}
