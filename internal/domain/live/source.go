// Package live provides continuously updating read results and the
// multi-subscriber state cells built on top of them.
package live

import "context"

// Source is a live read: it emits the current result, then a fresh result
// every time the underlying data changes, until ctx is done.
// A non-nil return with ctx still alive means the read failed.
type Source[T any] func(ctx context.Context, emit func(T)) error

// First runs src until its first emission and returns it
func First[T any](ctx context.Context, src Source[T]) (T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		first T
		got   bool
	)
	err := src(ctx, func(v T) {
		if !got {
			first, got = v, true
			cancel()
		}
	})
	if got {
		return first, nil
	}
	if err == nil {
		err = ctx.Err()
	}
	return first, err
}
