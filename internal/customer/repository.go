package customer

// Repository provides access to customer rows and their order history.
type Repository interface {
	List() ([]Customer, error)
	// GetProfile returns sql.ErrNoRows wrapped as ErrNotFound when the id has
	// no matching row.
	GetProfile(id int) (Customer, error)
	OrdersByEmail(email string) ([]Order, error)
}
