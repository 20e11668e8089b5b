package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/dbmetrics"
)

const keyPrefix = "barber:business_settings:"

// Cache кэширует настройки бизнеса в Redis поверх Store.
// Ошибки Redis не прерывают запрос: они логируются, и чтение идёт напрямую в Store.
// Внутри транзакции кэш не используется, чтобы запись проверялась по актуальным настройкам.
type Cache struct {
	store  Store
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewCache создает кэш настроек
func NewCache(store Store, client *redis.Client, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		store:  store,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get возвращает настройки из кэша или из Store
func (c *Cache) Get(ctx context.Context, id int64) (*domain.BusinessSettings, error) {
	if dbmetrics.IsInTransaction(ctx) {
		return c.store.Get(ctx, id)
	}

	key := cacheKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached domain.BusinessSettings
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		c.logger.Warn("SettingsCache: corrupted entry %s, reloading", key)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("SettingsCache: failed to read %s: %v", key, err)
	}

	settings, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.put(ctx, key, settings)

	return settings, nil
}

// EnsureDefaults создает настройки по умолчанию и сбрасывает кэш
func (c *Cache) EnsureDefaults(ctx context.Context, settings domain.BusinessSettings) (bool, error) {
	created, err := c.store.EnsureDefaults(ctx, settings)
	if err != nil {
		return false, err
	}
	c.invalidate(ctx, settings.ID)
	return created, nil
}

// Update сохраняет настройки и сбрасывает кэш
func (c *Cache) Update(ctx context.Context, settings domain.BusinessSettings) error {
	if err := c.store.Update(ctx, settings); err != nil {
		return err
	}
	c.invalidate(ctx, settings.ID)
	return nil
}

func (c *Cache) put(ctx context.Context, key string, settings *domain.BusinessSettings) {
	data, err := json.Marshal(settings)
	if err != nil {
		c.logger.Error("SettingsCache: failed to encode settings: %v", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("SettingsCache: failed to write %s: %v", key, err)
	}
}

func (c *Cache) invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		c.logger.Warn("SettingsCache: failed to invalidate %s: %v", cacheKey(id), err)
	}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, id)
}
