package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Display constants for the transactions screen. The schema stores none of
// these, so every row carries the same values.
var (
	sellerName    = "Ecom-Burger"
	paymentMethod = "Credit Card"
	entryType     = "Payment"
	country       = "Kuwait"
	currency      = "KWD"
	feeAmount     = decimal.RequireFromString("0.100")
	taxAmount     = decimal.RequireFromString("0.000")
)

// Transaction is a read-only projection of an order row.
type Transaction struct {
	ID        int             `json:"id"`
	PaymentID string          `json:"paymentId"`
	Date      time.Time       `json:"date"`
	Seller    string          `json:"seller"`
	SKU       string          `json:"sku"`
	Method    string          `json:"method"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	Country   string          `json:"country"`
	Curr      string          `json:"curr"`
	Fee       decimal.Decimal `json:"fee"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}

// Item mirrors the order item snapshot for the detail/invoice view.
type Item struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
}

// Details is one order reshaped for the transaction detail and invoice
// screens. ShippingInfo is parsed from the stored address blob and defaults
// to an empty object when the blob is malformed.
type Details struct {
	ID            int             `json:"id"`
	PaymentID     string          `json:"paymentId"`
	Date          time.Time       `json:"date"`
	Status        string          `json:"status"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	AddressJSON   string          `json:"addressJson"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	Items         []Item          `json:"items"`
	ShippingInfo  map[string]any  `json:"shippingInfo"`
}
