package audit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"

	"github.com/akshara-fonts/akshara/app/repository"
	"github.com/akshara-fonts/akshara/internal/pkg/cache"
)

const (
	webfontServesKey = "font:counters:webfont"
	downloadsKey     = "font:counters:downloads"
)

// Counter batches per-font serve counters in Redis so the hot webfont path
// does not write a database row per request beyond the audit entry.
type Counter struct {
	client *redis.Client
}

// NewCounter creates a counter backed by the shared Redis client.
func NewCounter() *Counter {
	return &Counter{client: cache.GetClient()}
}

// AddWebfontServe increments the pending webfont serve counter for a font
func (c *Counter) AddWebfontServe(fontID string) error {
	return c.client.HIncrBy(context.Background(), webfontServesKey, fontID, 1).Err()
}

// AddDownload increments the pending download counter for a font
func (c *Counter) AddDownload(fontID string) error {
	return c.client.HIncrBy(context.Background(), downloadsKey, fontID, 1).Err()
}

// FlushAll drains both counter hashes into the font store.
func (c *Counter) FlushAll(fonts repository.FontRepository) error {
	if err := c.flushHash(webfontServesKey, fonts, true); err != nil {
		return err
	}
	return c.flushHash(downloadsKey, fonts, false)
}

// flushHash drains a Redis hash atomically and applies the batched
// increments. Uses RENAME to a temporary key so in-flight increments are
// not lost during the drain.
func (c *Counter) flushHash(redisKey string, fonts repository.FontRepository, webfont bool) error {
	ctx := context.Background()

	tmpKey := fmt.Sprintf("%s:tmp:%d", redisKey, time.Now().UnixNano())
	if err := c.client.Do(ctx, "RENAME", redisKey, tmpKey).Err(); err != nil {
		// Key absent means nothing to flush.
		if err == redis.Nil || strings.Contains(strings.ToLower(err.Error()), "no such key") {
			return nil
		}
		return err
	}
	defer c.client.Del(ctx, tmpKey)

	data, err := c.client.HGetAll(ctx, tmpKey).Result()
	if err != nil {
		return err
	}

	for fontID, raw := range data {
		inc, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil || inc == 0 {
			continue
		}
		var ferr error
		if webfont {
			ferr = fonts.AddCounts(fontID, inc, 0)
		} else {
			ferr = fonts.AddCounts(fontID, 0, inc)
		}
		if ferr != nil {
			return ferr
		}
	}
	return nil
}

// StartFlusher flushes counters on an interval until stop is closed.
func (c *Counter) StartFlusher(fonts repository.FontRepository, interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if err := c.FlushAll(fonts); err != nil {
					log.Warnf("[Audit] counter flush failed: %v", err)
				}
			}
		}
	}()
}
