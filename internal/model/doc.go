// Package model defines the domain records shared by the fetcher, the browser
// controller and the front ends: categories, media items with their authors
// and view counts, the UI state and the load status shown to the user.
package model
