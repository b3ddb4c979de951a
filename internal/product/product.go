package product

import "github.com/shopspring/decimal"

// Product maps to the `products` table. Title/Title_ar keep the storefront
// schema's capitalised column names so the JSON contract stays byte-compatible
// with the existing admin UI.
type Product struct {
	ID         int             `json:"id"`
	Title      string          `json:"Title"`
	TitleAr    string          `json:"Title_ar"`
	Price      decimal.Decimal `json:"price"`
	Image      string          `json:"image"`
	CategoryID int             `json:"categoryId"`

	// CategoryName is joined in on list queries, never stored.
	CategoryName string `json:"categoryName"`
}
