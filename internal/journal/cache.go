package journal

import (
	"encoding/json"
	"errors"

	"github.com/coocood/freecache"
	"github.com/sirupsen/logrus"

	"github.com/shinji-kodama/wxlog/internal/dates"
	"github.com/shinji-kodama/wxlog/internal/model"
)

// DefaultCacheSizeMegabytes sizes the day cache. freecache rejects entries
// larger than 1/1024 of its size, so 32 MB allows entries up to 32 KB.
const DefaultCacheSizeMegabytes = 32

// DayCache keeps fetched days as JSON. A day without an entry is cached
// too, so it is not requested twice.
type DayCache struct {
	cache  *freecache.Cache
	logger logrus.FieldLogger
}

func NewDayCache(cacheSizeMegabytes int, logger logrus.FieldLogger) *DayCache {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	megabyte := 1024 * 1024
	return &DayCache{
		cache:  freecache.NewCache(cacheSizeMegabytes * megabyte),
		logger: logger,
	}
}

func cacheKey(date dates.Date) []byte {
	return []byte("jday::" + date.String())
}

// Get returns the cached entry of date. found is false on a miss; a hit
// may still return a nil day.
func (c *DayCache) Get(date dates.Date) (day *model.DayLog, found bool) {
	data, err := c.cache.Get(cacheKey(date))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			c.logger.WithError(err).Warn("day cache read failed")
		}
		return nil, false
	}

	if err := json.Unmarshal(data, &day); err != nil {
		c.logger.WithError(err).Warnf("dropping corrupt cache entry for %s", date)
		c.cache.Del(cacheKey(date))
		return nil, false
	}
	return day, true
}

// Set caches day (which may be nil) without expiry. Entries too large for
// the cache are skipped.
func (c *DayCache) Set(date dates.Date, day *model.DayLog) {
	data, err := json.Marshal(day)
	if err != nil {
		c.logger.WithError(err).Warnf("failed to encode %s for the cache", date)
		return
	}
	if err := c.cache.Set(cacheKey(date), data, 0); err != nil {
		c.logger.WithError(err).Debugf("not caching %s", date)
	}
}

// Len returns the number of cached days.
func (c *DayCache) Len() int64 {
	return c.cache.EntryCount()
}
