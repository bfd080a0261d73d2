package domaingate

import (
	"context"
	"log/slog"
	"time"
)

// Loader composes the feed and an optional snapshot cache into the one-shot
// load performed at the start of a submission session. Load never fails: a
// fetch error falls back to the cached snapshot, and with neither available
// the returned gate is degraded (permissive).
type Loader struct {
	feed   *Feed
	cache  SnapshotCache
	ttl    time.Duration
	logger *slog.Logger
}

func NewLoader(feed *Feed, cache SnapshotCache, ttl time.Duration, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{feed: feed, cache: cache, ttl: ttl, logger: logger}
}

// Load fetches the denylist, refreshing the cache on success and falling
// back to it on failure.
func (l *Loader) Load(ctx context.Context) *Gate {
	text, err := l.feed.FetchRaw(ctx)
	if err == nil {
		if l.cache != nil {
			if cerr := l.cache.Set(ctx, text, l.ttl); cerr != nil {
				l.logger.Warn("denylist cache write failed", "error", cerr)
			}
		}
		return NewGate(ParseList(text), l.logger)
	}

	l.logger.Warn("denylist fetch failed", "error", err)
	if l.cache != nil {
		if cached, ok, cerr := l.cache.Get(ctx); cerr == nil && ok {
			l.logger.Info("using cached denylist snapshot")
			return NewGate(ParseList(cached), l.logger)
		}
	}
	return NewGate(nil, l.logger)
}
