package order

// Repository provides access to order and order item rows.
type Repository interface {
	// List returns one page of enriched orders plus the total row count for
	// the same period filter.
	List(page, pageSize int, period string) ([]Order, int, error)
	UpdateStatus(orderID int, status string) error
	Items(orderID int) ([]Item, error)
	Create(in CreateInput, addressJSON string) (int, error)
}
