// Package ui contains the Fyne-based desktop user interface for the application.
// RootUI implements browser.View: it shows one button per category, a grid of
// media cards, the sort toggle, and a status line. All UI strings are
// localized via i18n.Localization.
package ui
