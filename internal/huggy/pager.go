package huggy

import (
	"context"
	"fmt"
	"time"
)

// PageFunc fetches one page of items. Pages are indexed from zero; an empty
// result signals the end of the collection.
type PageFunc[T any] func(ctx context.Context, page int) ([]T, error)

// FetchAll concatenates pages starting at index 0, stopping at the first
// empty page or after maxPages requests, whichever comes first. The delay is
// applied after every request, including the one that terminates the loop —
// the remote rate limit counts that request too.
func FetchAll[T any](ctx context.Context, fetch PageFunc[T], delay time.Duration, maxPages int) ([]T, error) {
	var all []T
	for page := 0; page < maxPages; page++ {
		items, err := fetch(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}
		all = append(all, items...)
		if err := Sleep(ctx, delay); err != nil {
			return all, err
		}
		if len(items) == 0 {
			break
		}
	}
	return all, nil
}

// Sleep pauses for d or until the context is cancelled.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
