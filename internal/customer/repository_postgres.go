package customer

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a customer id has no matching signup row.
var ErrNotFound = errors.New("customer not found")

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List joins signup to orders on email and aggregates per customer. The LEFT
// JOIN keeps zero-order customers in the result with count 0 and spent 0.
func (r *PostgresRepository) List() ([]Customer, error) {
	rows, err := r.db.Query(`
		SELECT
			s.id, s.name, s.email, s.mobile, s.country,
			COUNT(o.id) AS "ordersCount",
			COALESCE(SUM(o."totalAmount"), 0) AS "totalSpent"
		FROM signup s
		LEFT JOIN orders o ON s.email = o."customerEmail"
		GROUP BY s.id, s.name, s.email, s.mobile, s.country
		ORDER BY s.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Customer, 0)
	for rows.Next() {
		var (
			c       Customer
			name    sql.NullString
			email   sql.NullString
			mobile  sql.NullString
			country sql.NullString
		)
		if err := rows.Scan(&c.ID, &name, &email, &mobile, &country, &c.OrdersCount, &c.TotalSpent); err != nil {
			return nil, err
		}
		c.Name = name.String
		c.Email = email.String
		c.Mobile = mobile.String
		c.Country = country.String
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetProfile(id int) (Customer, error) {
	var (
		c       Customer
		name    sql.NullString
		email   sql.NullString
		mobile  sql.NullString
		country sql.NullString
	)
	err := r.db.QueryRow(`SELECT id, name, email, mobile, country FROM signup WHERE id = $1`, id).
		Scan(&c.ID, &name, &email, &mobile, &country)
	if err == sql.ErrNoRows {
		return Customer{}, ErrNotFound
	}
	if err != nil {
		return Customer{}, err
	}
	c.Name = name.String
	c.Email = email.String
	c.Mobile = mobile.String
	c.Country = country.String
	return c, nil
}

func (r *PostgresRepository) OrdersByEmail(email string) ([]Order, error) {
	rows, err := r.db.Query(`
		SELECT id, "paymentId", created_at, "totalAmount", status
		FROM orders
		WHERE "customerEmail" = $1
		ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		var (
			o         Order
			paymentID sql.NullString
			status    sql.NullString
			createdAt sql.NullTime
		)
		if err := rows.Scan(&o.ID, &paymentID, &createdAt, &o.TotalAmount, &status); err != nil {
			return nil, err
		}
		o.PaymentID = paymentID.String
		o.Status = status.String
		o.CreatedAt = createdAt.Time
		out = append(out, o)
	}
	return out, rows.Err()
}
