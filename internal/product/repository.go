package product

// Repository provides access to product rows.
type Repository interface {
	List() ([]Product, error)
	Create(p Product) error
	Update(p Product) error
	Delete(id int) error
}
