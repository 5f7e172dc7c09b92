// Package venue кэширует снимки площадок (вместе с бронированиями) в Redis.
// Снимок считается устаревшим после TTL; создание бронирования всегда читает
// площадку мимо кэша и инвалидирует ее.
package venue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

const scanBatch = 100

// List закэшированная страница списка или результат поиска
type List struct {
	Venues     []domain.Venue `json:"venues"`
	Page       int            `json:"page"`
	PageCount  int            `json:"pageCount"`
	TotalCount int            `json:"totalCount"`
	IsLastPage bool           `json:"isLastPage"`
}

// Cache кэш площадок
// Все методы безопасны для вызова на nil (кэш выключен)
type Cache struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
}

// NewCache создает кэш поверх клиента Redis
func NewCache(client redis.UniversalClient, ttl time.Duration, prefix string) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client, ttl: ttl, prefix: prefix}
}

// NewRedisClient подключается к Redis и проверяет соединение
// При недоступности Redis возвращает ошибку: вызывающий код может работать без кэша
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrCacheFailure, addr, err)
	}

	return client, nil
}

// Get возвращает снимок площадки
func (c *Cache) Get(ctx context.Context, id string) (*domain.Venue, error) {
	if c == nil {
		return nil, ErrCacheMiss
	}

	var v domain.Venue
	if err := c.getJSON(ctx, c.venueKey(id), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Set сохраняет снимок площадки на TTL
func (c *Cache) Set(ctx context.Context, v *domain.Venue) error {
	if c == nil || v == nil {
		return nil
	}
	return c.setJSON(ctx, c.venueKey(v.ID), v)
}

// GetList возвращает закэшированный список по ключу из ListKey
func (c *Cache) GetList(ctx context.Context, key string) (*List, error) {
	if c == nil {
		return nil, ErrCacheMiss
	}

	var l List
	if err := c.getJSON(ctx, c.listKey(key), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// SetList сохраняет список на TTL
func (c *Cache) SetList(ctx context.Context, key string, l *List) error {
	if c == nil || l == nil {
		return nil
	}
	return c.setJSON(ctx, c.listKey(key), l)
}

// Invalidate удаляет снимок площадки и все закэшированные списки
// (в списках площадка могла встречаться с прежними бронированиями)
func (c *Cache) Invalidate(ctx context.Context, id string) error {
	if c == nil {
		return nil
	}

	keys := []string{}
	if id != "" {
		keys = append(keys, c.venueKey(id))
	}

	iter := c.client.Scan(ctx, 0, c.listKey("*"), scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: scan lists: %v", ErrCacheFailure, err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: delete %d keys: %v", ErrCacheFailure, len(keys), err)
	}
	return nil
}

// ListKey строит ключ списка из частей запроса
func ListKey(kind string, parts ...string) string {
	return kind + ":" + strings.Join(parts, ":")
}

func (c *Cache) venueKey(id string) string {
	return c.prefix + ":venue:" + id
}

func (c *Cache) listKey(key string) string {
	return c.prefix + ":venues:" + key
}

func (c *Cache) getJSON(ctx context.Context, key string, dest interface{}) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("%w: get %s: %v", ErrCacheFailure, key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrCacheFailure, key, err)
	}
	return nil
}

func (c *Cache) setJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrCacheFailure, key, err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCacheFailure, key, err)
	}
	return nil
}
