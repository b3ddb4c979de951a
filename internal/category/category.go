package category

// Category maps to the `categories` table. JSON keys mirror the admin API
// contract, including the snake_case Arabic variant.
type Category struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameAr string `json:"name_ar"`
}
