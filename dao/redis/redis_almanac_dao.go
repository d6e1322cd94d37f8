package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"astrocal-server/config"
	"astrocal-server/db"
	"astrocal-server/models"
)

const ALMANAC_KEY_FORMAT = "almanac_v1:%s"

// RedisAlmanacDAO caches computed almanacs per ISO date.
type RedisAlmanacDAO struct {
	client db.RedisClient
}

// NewRedisAlmanacDAO initializes a RedisAlmanacDAO with the Redis client.
func NewRedisAlmanacDAO(client db.RedisClient) *RedisAlmanacDAO {
	return &RedisAlmanacDAO{client: client}
}

// SetAlmanac caches the almanac for its date.
func (dao *RedisAlmanacDAO) SetAlmanac(a *models.Almanac) error {
	key := fmt.Sprintf(ALMANAC_KEY_FORMAT, a.Date.ISO())
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal almanac for %s: %w", a.Date.ISO(), err)
	}
	if err := dao.client.SetWithExpiry(key, string(data), config.ALMANAC_CACHE_TTL); err != nil {
		return fmt.Errorf("failed to set almanac in redis: %w", err)
	}
	return nil
}

// GetAlmanac returns the cached almanac for the date, or nil on a
// cache miss.
func (dao *RedisAlmanacDAO) GetAlmanac(date models.SelectedDate) (*models.Almanac, error) {
	key := fmt.Sprintf(ALMANAC_KEY_FORMAT, date.ISO())
	str, err := dao.client.Get(key)
	if err != nil {
		if db.IsKeyNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get almanac from redis: %w", err)
	}
	var a models.Almanac
	if err := json.Unmarshal([]byte(str), &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal almanac JSON: %w", err)
	}
	return &a, nil
}

// ListCachedDates returns the ISO dates of all cached almanacs.
func (dao *RedisAlmanacDAO) ListCachedDates() ([]string, error) {
	pattern := fmt.Sprintf(ALMANAC_KEY_FORMAT, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list almanac keys: %w", err)
	}
	prefix := fmt.Sprintf(ALMANAC_KEY_FORMAT, "")
	dates := make([]string, 0, len(keys))
	for _, k := range keys {
		dates = append(dates, strings.TrimPrefix(k, prefix))
	}
	return dates, nil
}
