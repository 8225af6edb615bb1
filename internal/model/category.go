package model

// AllCategoryID is the reserved identifier of the "all items" category. It is
// the default selection when the browser starts.
const AllCategoryID = "1000"

// Category groups media items.
type Category struct {
	ID   string `json:"category_id"`
	Name string `json:"category"`
}

// FindCategory returns the category with the given id.
func FindCategory(categories []Category, id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// DefaultCategory picks the category that starts active: preferred when it is
// present, otherwise the first one. ok is false for an empty list.
func DefaultCategory(categories []Category, preferred string) (id string, ok bool) {
	if len(categories) == 0 {
		return "", false
	}
	if _, found := FindCategory(categories, preferred); found {
		return preferred, true
	}
	return categories[0].ID, true
}
