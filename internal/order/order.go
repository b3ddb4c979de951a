package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the enriched row returned by the paginated admin listing. The
// representative productName/productImage come from one item per order
// (lowest item id); categoryName is resolved through that item's product and
// falls back to "General" when the product or category no longer exists.
type Order struct {
	ID            int             `json:"id"`
	PaymentID     string          `json:"paymentId"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	Date          time.Time       `json:"date"`
	AddressJSON   string          `json:"addressJson"`
	ProductName   string          `json:"productName"`
	ProductImage  string          `json:"productImage"`
	CategoryName  string          `json:"categoryName"`
	ItemsCount    int             `json:"itemsCount"`

	// ShippingInfo is parsed from AddressJSON by the service layer; a
	// malformed blob yields an empty object, never an error.
	ShippingInfo map[string]any `json:"shippingInfo"`
}

// Item is a point-in-time snapshot of a purchased product. Name and price are
// intentionally decoupled from the live products table.
type Item struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
}

// ShippingDetails is the structured form of the serialized address blob.
type ShippingDetails struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Area              string `json:"area"`
	Block             string `json:"block"`
	Street            string `json:"street"`
	House             string `json:"house"`
	Avenue            string `json:"avenue,omitempty"`
	SpecialDirections string `json:"specialDirections,omitempty"`
}

// ItemInput is one line of an incoming order.
type ItemInput struct {
	ProductID int             `json:"id"`
	Title     string          `json:"Title"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
}

// CreateInput is the intake payload posted by the storefront after payment.
type CreateInput struct {
	PaymentID     string          `json:"paymentId"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	Address       ShippingDetails `json:"address"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Items         []ItemInput     `json:"items"`
}
