package controller

import (
	"context"
	"errors"
	"fmt"
	"hackaplan/repository"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
)

// PageCache caches the hackathon list and the per-hackathon project pages.
// Writes delete exactly those keys, so a cache store shared with other
// applications (redis) keeps everything else.
type PageCache struct {
	store      persistence.CacheStore
	hackathons repository.HackathonRepository
}

func NewPageCache(store persistence.CacheStore, hackathons repository.HackathonRepository) *PageCache {
	return &PageCache{store: store, hackathons: hackathons}
}

// Handler caches by path only, which keeps the set of keys enumerable.
func (p *PageCache) Handler(handle gin.HandlerFunc) gin.HandlerFunc {
	return cache.CachePageWithoutQuery(p.store, persistence.DEFAULT, handle)
}

func hackathonsPageKey() string {
	return cache.CreateKey(apiBasePath + "/hackathons")
}

func hackathonProjectsPageKey(hackathonId int) string {
	return cache.CreateKey(fmt.Sprintf("%s/hackathons/%d/projects", apiBasePath, hackathonId))
}

func (p *PageCache) pageKeys(ctx context.Context) ([]string, error) {
	hackathons, err := p.hackathons.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	keys := []string{hackathonsPageKey()}
	for _, hackathon := range hackathons {
		keys = append(keys, hackathonProjectsPageKey(hackathon.ID))
	}
	return keys, nil
}

// Invalidate deletes every cached page. Keys that were never cached are skipped.
func (p *PageCache) Invalidate(ctx context.Context) error {
	keys, err := p.pageKeys(ctx)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := p.store.Delete(key); err != nil && !errors.Is(err, persistence.ErrCacheMiss) {
			return err
		}
	}
	return nil
}

// InvalidateMiddleware invalidates the cached pages after a successful write.
func (p *PageCache) InvalidateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		if err := p.Invalidate(c); err != nil {
			slog.Warn("failed to invalidate cached pages",
				"error", err,
				"request_id", c.GetString("request_id"),
			)
		}
	}
}
