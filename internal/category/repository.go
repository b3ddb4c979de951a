package category

// Repository provides access to category rows.
type Repository interface {
	List() ([]Category, error)
	Create(name, nameAr string) error
	Update(id int, name, nameAr string) error
	Delete(id int) error
}
