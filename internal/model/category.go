package model

// Category represents an expense category with its display identity.
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Fallback display identity for expenses whose category title no longer
// resolves to any known category. Consumers render this instead of failing.
const (
	FallbackIcon  = "help-circle-outline"
	FallbackColor = "#9E9E9E"
)

// protectedCategoryIDs are the ids of the default categories. They are
// excluded from deletion for the lifetime of the store.
var protectedCategoryIDs = map[string]struct{}{
	"1": {}, "2": {}, "3": {}, "4": {},
	"5": {}, "6": {}, "7": {}, "8": {},
}

// IsProtectedCategory reports whether id belongs to a default category.
func IsProtectedCategory(id string) bool {
	_, ok := protectedCategoryIDs[id]
	return ok
}

// DefaultCategories returns the seed categories present before any remote
// fetch completes. Their ids match the protected set.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Title: "Food", Icon: "food", Color: "#FF6B6B"},
		{ID: "2", Title: "Transport", Icon: "bus", Color: "#4ECDC4"},
		{ID: "3", Title: "Shopping", Icon: "cart", Color: "#FFE66D"},
		{ID: "4", Title: "Bills", Icon: "receipt", Color: "#95E1D3"},
		{ID: "5", Title: "Entertainment", Icon: "movie", Color: "#C3A6FF"},
		{ID: "6", Title: "Health", Icon: "heart-pulse", Color: "#FF8FAB"},
		{ID: "7", Title: "Salary", Icon: "cash", Color: "#8AC926"},
		{ID: "8", Title: "Other", Icon: "dots-horizontal", Color: "#B0B0B0"},
	}
}

// DisplayFor resolves the icon and color to render for an expense's category
// title. Unknown titles get the neutral fallback identity rather than an error.
func DisplayFor(categories []Category, title string) (icon, color string) {
	for _, c := range categories {
		if c.Title == title {
			return c.Icon, c.Color
		}
	}
	return FallbackIcon, FallbackColor
}
