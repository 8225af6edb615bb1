package ui

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ImageFetcher returns raw image bytes. api.Client implements it.
type ImageFetcher interface {
	Image(ctx context.Context, url string) ([]byte, error)
}

// ImageTarget is one image slot of a rendered card
type ImageTarget struct {
	URL   string
	Apply func(fyne.Resource)
}

// ThumbnailLoader fetches card images with bounded parallelism. Each Load
// starts a new batch and cancels the previous one; results of a canceled
// batch are never applied.
type ThumbnailLoader struct {
	fetcher  ImageFetcher
	dispatch func(func())
	logger   *zap.Logger

	mu      sync.Mutex
	workers int
	cancel  context.CancelFunc
}

// NewThumbnailLoader creates a loader. dispatch runs Apply callbacks on the UI
// thread.
func NewThumbnailLoader(fetcher ImageFetcher, workers int, dispatch func(func()), logger *zap.Logger) *ThumbnailLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dispatch == nil {
		dispatch = fyne.Do
	}
	l := &ThumbnailLoader{
		fetcher:  fetcher,
		dispatch: dispatch,
		logger:   logger,
	}
	l.SetWorkers(workers)
	return l
}

// SetWorkers changes the parallelism of later batches
func (l *ThumbnailLoader) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	l.mu.Lock()
	l.workers = n
	l.mu.Unlock()
}

// Load cancels the running batch and starts fetching targets. The returned
// channel is closed once every fetch of this batch has finished.
func (l *ThumbnailLoader) Load(ctx context.Context, targets []ImageTarget) <-chan struct{} {
	batchCtx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.cancel = cancel
	workers := l.workers
	l.mu.Unlock()

	done := make(chan struct{})
	if l.fetcher == nil || len(targets) == 0 {
		close(done)
		return done
	}

	go func() {
		defer close(done)

		g, gctx := errgroup.WithContext(batchCtx)
		g.SetLimit(workers)
		for _, t := range targets {
			t := t
			if t.URL == "" || t.Apply == nil {
				continue
			}
			g.Go(func() error {
				ictx, icancel := context.WithTimeout(gctx, ThumbnailTimeout)
				defer icancel()
				data, err := l.fetcher.Image(ictx, t.URL)
				if err != nil {
					// a broken image leaves the placeholder; siblings keep loading
					if gctx.Err() == nil {
						l.logger.Debug("image unavailable", zap.String("url", t.URL), zap.Error(err))
					}
					return nil
				}
				res := fyne.NewStaticResource(t.URL, data)
				l.dispatch(func() {
					if batchCtx.Err() == nil {
						t.Apply(res)
					}
				})
				return nil
			})
		}
		_ = g.Wait()
	}()

	return done
}

// Cancel stops the running batch
func (l *ThumbnailLoader) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
