package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a row of the `signup` table plus per-customer order analytics.
// Orders are matched on email equality; there is no foreign key.
type Customer struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Mobile      string          `json:"mobile"`
	Country     string          `json:"country"`
	OrdersCount int             `json:"ordersCount"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
}

// Order is the slim order shape shown in a customer's history.
type Order struct {
	ID          int             `json:"id"`
	PaymentID   string          `json:"paymentId"`
	CreatedAt   time.Time       `json:"created_at"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
}

// Details is the customer profile with its full order history attached.
type Details struct {
	Customer
	Orders []Order `json:"orders"`
}
