package order

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// dateCondition maps a period shortcut to a created_at lower bound. Unknown
// values fall through to no condition, same as "all".
func dateCondition(period string) string {
	switch period {
	case "today":
		return ` AND o.created_at >= CURRENT_DATE`
	case "week":
		return ` AND o.created_at >= NOW() - INTERVAL '7 days'`
	case "month":
		return ` AND o.created_at >= NOW() - INTERVAL '1 month'`
	}
	return ""
}

// List runs a count query and a page query sharing the same period predicate.
// The two queries are not wrapped in a transaction; the count can drift from
// the page under concurrent writes, which the dashboard tolerates.
func (r *PostgresRepository) List(page, pageSize int, period string) ([]Order, int, error) {
	cond := dateCondition(period)

	var totalCount int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM orders o WHERE 1=1` + cond).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	// One representative item per order via a lateral join, lowest item id
	// first so the pick is deterministic.
	rows, err := r.db.Query(`
		SELECT
			o.id,
			o."paymentId",
			o."customerName",
			o."customerEmail",
			o."customerPhone",
			o."totalAmount",
			o.status,
			o.address,
			COALESCE(o.created_at, NOW()) AS date,
			i."productName",
			i.image AS "productImage",
			COALESCE(c.name, 'General') AS "categoryName",
			(SELECT COUNT(*) FROM order_items WHERE "orderId" = o.id) AS "itemsCount"
		FROM orders o
		LEFT JOIN LATERAL (
			SELECT oi."productName", oi.image, oi."productId"
			FROM order_items oi
			WHERE oi."orderId" = o.id
			ORDER BY oi.id
			LIMIT 1
		) i ON TRUE
		LEFT JOIN products p ON p.id = i."productId"
		LEFT JOIN categories c ON c.id = p."categoryId"
		WHERE 1=1`+cond+`
		ORDER BY o.created_at DESC
		OFFSET $1 LIMIT $2`, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]Order, 0, pageSize)
	for rows.Next() {
		var (
			o            Order
			paymentID    sql.NullString
			name         sql.NullString
			email        sql.NullString
			phone        sql.NullString
			status       sql.NullString
			address      sql.NullString
			productName  sql.NullString
			productImage sql.NullString
		)
		if err := rows.Scan(&o.ID, &paymentID, &name, &email, &phone, &o.TotalAmount,
			&status, &address, &o.Date, &productName, &productImage, &o.CategoryName, &o.ItemsCount); err != nil {
			return nil, 0, err
		}
		o.PaymentID = paymentID.String
		o.CustomerName = name.String
		o.CustomerEmail = email.String
		o.CustomerPhone = phone.String
		o.Status = status.String
		o.AddressJSON = address.String
		o.ProductName = productName.String
		o.ProductImage = productImage.String
		orders = append(orders, o)
	}
	return orders, totalCount, rows.Err()
}

// UpdateStatus writes the status unconditionally and touches updated_at.
// There is no transition table; any string is accepted and an unknown id
// affects zero rows without an error.
func (r *PostgresRepository) UpdateStatus(orderID int, status string) error {
	_, err := r.db.Exec(`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, orderID)
	return err
}

func (r *PostgresRepository) Items(orderID int) ([]Item, error) {
	rows, err := r.db.Query(`
		SELECT "productName", quantity, price, image
		FROM order_items
		WHERE "orderId" = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var (
			it    Item
			name  sql.NullString
			image sql.NullString
		)
		if err := rows.Scan(&name, &it.Quantity, &it.Price, &image); err != nil {
			return nil, err
		}
		it.ProductName = name.String
		it.Image = image.String
		items = append(items, it)
	}
	return items, rows.Err()
}

// Create inserts the order row and its item snapshots. The inserts are
// sequential, not transactional, matching the rest of the data layer.
func (r *PostgresRepository) Create(in CreateInput, addressJSON string) (int, error) {
	var orderID int
	err := r.db.QueryRow(`
		INSERT INTO orders ("paymentId", "customerName", "customerEmail", "customerPhone", "totalAmount", status, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'PAID', $6, NOW(), NOW())
		RETURNING id`,
		in.PaymentID, in.CustomerName, in.CustomerEmail, in.CustomerPhone, in.TotalAmount, addressJSON).Scan(&orderID)
	if err != nil {
		return 0, err
	}

	for _, it := range in.Items {
		if _, err := r.db.Exec(`
			INSERT INTO order_items ("orderId", "productId", "productName", quantity, price, image)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			orderID, it.ProductID, it.Title, it.Qty, it.Price, it.Image); err != nil {
			return 0, err
		}
	}
	return orderID, nil
}
