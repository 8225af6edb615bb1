package model

// UIState is the interaction state of the browser. It is owned by the UI
// thread and replaced, not shared.
type UIState struct {
	SelectedCategory string
	SortByViews      bool
	// Generation increases with every media request; only a response carrying
	// the current generation may be rendered.
	Generation uint64
}

// Select returns the state after the user picked a category.
func (s UIState) Select(categoryID string) UIState {
	s.SelectedCategory = categoryID
	s.Generation++
	return s
}

// IsCurrent reports whether a response tagged with generation and categoryID
// still belongs to the displayed selection.
func (s UIState) IsCurrent(generation uint64, categoryID string) bool {
	return s.Generation == generation && s.SelectedCategory == categoryID
}
