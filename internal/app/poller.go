package app

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/kmoran/logoticker/internal/state"
	"github.com/kmoran/logoticker/internal/ticker"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that re-reads the logo data
// file at a fixed cadence and queues a data-json attribute write whenever
// the raw contents change. It returns immediately.
//
// seed is the contents already applied at mount so an unchanged file does
// not trigger a redundant write on the first poll.
func StartPoller(ctx context.Context, store *state.Store, path string, interval time.Duration, seed string, logger zerolog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		last := seed
		failures := 0

		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(calculateBackoff(failures, interval)):
			}

			data, err := os.ReadFile(path)
			if err != nil {
				if failures == 0 {
					logger.Warn().Err(err).Str("path", path).Msg("logo data poll failed")
				}
				failures++
				continue
			}
			failures = 0

			contents := string(data)
			if contents == last {
				continue
			}
			last = contents
			store.Push(ticker.AttrData, contents)
		}
	}()
}

// calculateBackoff doubles the poll interval per consecutive failure,
// capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
