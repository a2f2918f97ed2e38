package model

// Event is a user-created item with a schedule, an author and categories.
type Event struct {
	ID          int64   `json:"id"`
	CreatedBy   int64   `json:"createdBy"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	CategoryIDs []int64 `json:"categoryIds"`
	StartTime   Time    `json:"startTime"`
	EndTime     Time    `json:"endTime"`
}

// HasCategory reports whether the event is tagged with the given category.
func (e Event) HasCategory(id int64) bool {
	for _, cid := range e.CategoryIDs {
		if cid == id {
			return true
		}
	}
	return false
}

// Category is a read-only tag used to classify and filter events.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User is a read-only author reference attachable to an event.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// FilterState describes the criteria deriving the visible set.
// An empty category selection imposes no category restriction.
type FilterState struct {
	SearchQuery         string
	SelectedCategoryIDs []int64
}
