// Package browser implements the media browser controller: it loads the
// category list, keeps exactly one category active, loads and replaces the
// media cards of the active category, and applies the view-count sort toggle.
//
// A Browser is driven from a single UI thread. Network calls run on background
// goroutines and their results are handed back to the UI thread through the
// Dispatch hook, so the controller state needs no locking. Every media request
// is tagged with the generation and category it was made for; a response that
// no longer matches the current selection is dropped.
package browser
