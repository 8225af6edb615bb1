package browser

import (
	"cmp"
	"slices"

	"github.com/ytget/media-browser/internal/model"
)

// ApplySort flips the sort flag of state and reorders items accordingly.
// Turning the flag on sorts by view count, highest first, keeping the remote
// order between equal counts. Turning it off reverses whatever order is
// currently displayed: after a sort that is ascending view count, not the
// order the items were fetched in.
//
// items is not modified; the returned slice is a new one.
func ApplySort(state model.UIState, items []model.MediaItem) (model.UIState, []model.MediaItem) {
	state, order := sortOrder(state, items)
	return state, permute(items, order)
}

// sortOrder is ApplySort expressed as a permutation: position i of the new
// order shows items[order[i]].
func sortOrder(state model.UIState, items []model.MediaItem) (model.UIState, []int) {
	state.SortByViews = !state.SortByViews
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	if state.SortByViews {
		slices.SortStableFunc(order, func(a, b int) int {
			return compareViews(items[a], items[b])
		})
	} else {
		slices.Reverse(order)
	}
	return state, order
}

func permute[T any](s []T, order []int) []T {
	out := make([]T, len(order))
	for i, from := range order {
		out[i] = s[from]
	}
	return out
}

// sortByViews orders items by view count descending, in place.
func sortByViews(items []model.MediaItem) {
	slices.SortStableFunc(items, compareViews)
}

func compareViews(a, b model.MediaItem) int {
	return cmp.Compare(b.Views(), a.Views())
}
