package journal

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/shinji-kodama/wxlog/internal/dates"
	"github.com/shinji-kodama/wxlog/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=journal

// DaySource fetches the entry of a single day. It returns nil and no
// error when nothing was logged.
type DaySource interface {
	FetchDay(ctx context.Context, date dates.Date) (*model.DayLog, error)
}

// Day is a date together with its journal entry.
type Day struct {
	Date dates.Date
	Log  *model.DayLog
}

// Fetcher fetches many days through a DaySource.
type Fetcher struct {
	source  DaySource
	cache   *DayCache
	workers int
	logger  logrus.FieldLogger
}

// NewFetcher creates a fetcher running at most workers requests at once.
// cache may be nil.
func NewFetcher(source DaySource, cache *DayCache, workers int, logger logrus.FieldLogger) *Fetcher {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Fetcher{
		source:  source,
		cache:   cache,
		workers: workers,
		logger:  logger,
	}
}

// Fetch returns the days of the list that have an entry, in list order.
// The first failure cancels the remaining requests and is returned.
func (f *Fetcher) Fetch(ctx context.Context, days []dates.Date) ([]Day, error) {
	logs := make([]*model.DayLog, len(days))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)
	for i, date := range days {
		g.Go(func() error {
			day, err := f.fetchOne(ctx, date)
			if err != nil {
				return err
			}
			logs[i] = day
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Day, 0, len(days))
	for i, day := range logs {
		if day.IsEmpty() {
			continue
		}
		out = append(out, Day{Date: days[i], Log: day})
	}
	fields := logrus.Fields{
		"requested": len(days),
		"found":     len(out),
	}
	if f.cache != nil {
		fields["cached"] = f.cache.Len()
	}
	f.logger.WithFields(fields).Debug("fetched days")
	return out, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, date dates.Date) (*model.DayLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.cache != nil {
		if day, found := f.cache.Get(date); found {
			f.logger.WithField("date", date.String()).Trace("cache hit")
			return day, nil
		}
	}

	day, err := f.source.FetchDay(ctx, date)
	if err != nil {
		return nil, err
	}
	if f.cache != nil {
		f.cache.Set(date, day)
	}
	return day, nil
}
