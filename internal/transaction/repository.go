package transaction

// Repository projects order rows into the transaction shape.
type Repository interface {
	List() ([]Transaction, error)
	// GetDetails returns ErrNotFound when the order id has no row.
	GetDetails(id int) (Details, error)
}
