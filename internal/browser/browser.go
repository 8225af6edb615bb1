package browser

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/ytget/media-browser/internal/model"
)

// Source provides categories and media lists. api.Client implements it.
type Source interface {
	Categories(ctx context.Context) ([]model.Category, error)
	Media(ctx context.Context, categoryID string) ([]model.MediaItem, error)
}

// View is the presentation side of the browser. All methods are called on the
// UI thread.
type View interface {
	// ShowCategories replaces the category controls, one per category.
	// nil clears them.
	ShowCategories(categories []model.Category)

	// SetActiveCategory marks id as the only active control
	SetActiveCategory(id string)

	// ShowMedia replaces every displayed card with one card per item, in order
	ShowMedia(items []model.MediaItem)

	// ReorderMedia moves the displayed cards without recreating them:
	// position i afterwards shows the card that was at order[i].
	ReorderMedia(order []int)

	// SetSortHighlight shows whether the view-count sort is on
	SetSortHighlight(on bool)

	ShowStatus(status model.LoadStatus)
}

// Options configures a Browser. The zero value runs fetches inline on the
// calling goroutine, which suits headless use and tests.
type Options struct {
	// DefaultCategory is selected once categories arrive.
	// Defaults to model.AllCategoryID.
	DefaultCategory string

	Logger *zap.Logger

	// Go starts background work. Defaults to running f inline.
	Go func(f func())

	// Dispatch runs f on the UI thread. Defaults to running f inline.
	Dispatch func(f func())
}

// Browser is the media browser controller. It is not safe for concurrent
// use: call it from the UI thread only.
type Browser struct {
	source          Source
	view            View
	logger          *zap.Logger
	goFn            func(func())
	dispatch        func(func())
	defaultCategory string

	state      model.UIState
	status     model.LoadStatus
	categories []model.Category
	items      []model.MediaItem // parallel to the displayed cards
}

// New creates a browser. A nil view is replaced by one that discards updates.
func New(source Source, view View, opts Options) *Browser {
	if view == nil {
		view = nopView{}
	}
	if opts.DefaultCategory == "" {
		opts.DefaultCategory = model.AllCategoryID
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Go == nil {
		opts.Go = func(f func()) { f() }
	}
	if opts.Dispatch == nil {
		opts.Dispatch = func(f func()) { f() }
	}
	return &Browser{
		source:          source,
		view:            view,
		logger:          opts.Logger,
		goFn:            opts.Go,
		dispatch:        opts.Dispatch,
		defaultCategory: opts.DefaultCategory,
		status:          model.LoadStatusIdle,
	}
}

// Start fetches the category list once. When it arrives the category controls
// are shown, the default category is marked active and its media is loaded.
// If the default category is not in the list the first category is used.
func (b *Browser) Start(ctx context.Context) {
	b.logger.Info("loading categories")
	b.setStatus(model.LoadStatusLoading)
	b.goFn(func() {
		categories, err := b.source.Categories(ctx)
		b.dispatch(func() { b.onCategories(ctx, categories, err) })
	})
}

func (b *Browser) onCategories(ctx context.Context, categories []model.Category, err error) {
	if err != nil {
		b.logger.Warn("categories unavailable", zap.Error(err))
		b.categories = nil
		b.view.ShowCategories(nil)
		b.setStatus(model.LoadStatusFailed)
		return
	}

	b.categories = slices.Clone(categories)
	b.view.ShowCategories(b.categories)
	b.logger.Info("categories loaded", zap.Int("count", len(categories)))

	id, ok := model.DefaultCategory(b.categories, b.defaultCategory)
	if !ok {
		b.setStatus(model.LoadStatusEmpty)
		return
	}
	if id != b.defaultCategory {
		b.logger.Info("default category missing, using first",
			zap.String("wanted", b.defaultCategory), zap.String("using", id))
	}
	b.Select(ctx, id)
}

// Select makes id the active category and starts loading its media. Control
// activation happens before Select returns; the cards follow when the fetch
// resolves. Unknown ids are ignored and reported as false.
func (b *Browser) Select(ctx context.Context, id string) bool {
	if _, ok := model.FindCategory(b.categories, id); !ok {
		b.logger.Warn("ignoring unknown category", zap.String("category", id))
		return false
	}

	b.state = b.state.Select(id)
	b.view.SetActiveCategory(id)
	b.load(ctx, b.state.Generation, id)
	return true
}

// load fetches the media of categoryID on behalf of request generation.
func (b *Browser) load(ctx context.Context, generation uint64, categoryID string) {
	b.logger.Debug("loading media",
		zap.String("category", categoryID), zap.Uint64("generation", generation))
	b.setStatus(model.LoadStatusLoading)
	b.goFn(func() {
		items, err := b.source.Media(ctx, categoryID)
		b.dispatch(func() { b.onMedia(generation, categoryID, items, err) })
	})
}

func (b *Browser) onMedia(generation uint64, categoryID string, items []model.MediaItem, err error) {
	if !b.state.IsCurrent(generation, categoryID) {
		b.logger.Debug("dropping stale media response",
			zap.String("category", categoryID),
			zap.Uint64("generation", generation),
			zap.Uint64("current", b.state.Generation))
		return
	}

	status := model.StatusForItems(len(items))
	if err != nil {
		b.logger.Warn("media unavailable", zap.String("category", categoryID), zap.Error(err))
		items = nil
		status = model.LoadStatusFailed
	}

	b.items = slices.Clone(items)
	if b.state.SortByViews {
		sortByViews(b.items)
	}
	b.view.ShowMedia(b.items)
	b.setStatus(status)
}

// ToggleSort flips the view-count sort and reorders the displayed cards.
// It returns the new flag.
func (b *Browser) ToggleSort() bool {
	var order []int
	b.state, order = sortOrder(b.state, b.items)
	b.items = permute(b.items, order)
	b.view.ReorderMedia(order)
	b.view.SetSortHighlight(b.state.SortByViews)
	b.logger.Debug("sort toggled",
		zap.Bool("by_views", b.state.SortByViews), zap.Int("items", len(b.items)))
	return b.state.SortByViews
}

// State returns the current UI state
func (b *Browser) State() model.UIState {
	return b.state
}

// Status returns the status of the last request
func (b *Browser) Status() model.LoadStatus {
	return b.status
}

// Categories returns the loaded categories
func (b *Browser) Categories() []model.Category {
	return slices.Clone(b.categories)
}

// Items returns the displayed items in display order
func (b *Browser) Items() []model.MediaItem {
	return slices.Clone(b.items)
}

func (b *Browser) setStatus(status model.LoadStatus) {
	b.status = status
	b.view.ShowStatus(status)
}

type nopView struct{}

func (nopView) ShowCategories([]model.Category) {}
func (nopView) SetActiveCategory(string)        {}
func (nopView) ShowMedia([]model.MediaItem)     {}
func (nopView) ReorderMedia([]int)              {}
func (nopView) SetSortHighlight(bool)           {}
func (nopView) ShowStatus(model.LoadStatus)     {}
