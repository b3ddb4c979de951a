package transaction

import (
	"database/sql"
	"errors"
	"strconv"
)

// ErrNotFound is returned when the order id has no matching row.
var ErrNotFound = errors.New("transaction not found")

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List projects every order, newest first. The seller/method/fee columns are
// display constants filled in here, not read from the database.
func (r *PostgresRepository) List() ([]Transaction, error) {
	rows, err := r.db.Query(`
		SELECT id, "paymentId", created_at, status, "totalAmount"
		FROM orders
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Transaction, 0)
	for rows.Next() {
		var (
			t         Transaction
			paymentID sql.NullString
			createdAt sql.NullTime
			status    sql.NullString
		)
		if err := rows.Scan(&t.ID, &paymentID, &createdAt, &status, &t.Total); err != nil {
			return nil, err
		}
		t.PaymentID = paymentID.String
		t.Date = createdAt.Time
		t.Status = status.String
		t.Seller = sellerName
		t.SKU = "SKU-" + strconv.Itoa(t.ID)
		t.Method = paymentMethod
		t.Type = entryType
		t.Country = country
		t.Curr = currency
		t.Fee = feeAmount
		t.Tax = taxAmount
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetDetails fetches the order row and then its items. ShippingInfo is left
// for the service to parse.
func (r *PostgresRepository) GetDetails(id int) (Details, error) {
	var (
		d         Details
		paymentID sql.NullString
		createdAt sql.NullTime
		status    sql.NullString
		name      sql.NullString
		email     sql.NullString
		phone     sql.NullString
		address   sql.NullString
	)
	err := r.db.QueryRow(`
		SELECT id, "paymentId", created_at, status, "customerName", "customerEmail", "customerPhone", address, "totalAmount"
		FROM orders
		WHERE id = $1`, id).
		Scan(&d.ID, &paymentID, &createdAt, &status, &name, &email, &phone, &address, &d.TotalAmount)
	if err == sql.ErrNoRows {
		return Details{}, ErrNotFound
	}
	if err != nil {
		return Details{}, err
	}
	d.PaymentID = paymentID.String
	d.Date = createdAt.Time
	d.Status = status.String
	d.CustomerName = name.String
	d.CustomerEmail = email.String
	d.CustomerPhone = phone.String
	d.AddressJSON = address.String
	d.PaymentMethod = paymentMethod

	rows, err := r.db.Query(`
		SELECT "productName", quantity, price, image
		FROM order_items
		WHERE "orderId" = $1
		ORDER BY id`, id)
	if err != nil {
		return Details{}, err
	}
	defer rows.Close()

	d.Items = make([]Item, 0)
	for rows.Next() {
		var (
			it        Item
			itemName  sql.NullString
			itemImage sql.NullString
		)
		if err := rows.Scan(&itemName, &it.Quantity, &it.Price, &itemImage); err != nil {
			return Details{}, err
		}
		it.ProductName = itemName.String
		it.Image = itemImage.String
		d.Items = append(d.Items, it)
	}
	return d, rows.Err()
}
