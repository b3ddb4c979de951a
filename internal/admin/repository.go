package admin

// Repository provides access to admin accounts.
type Repository interface {
	GetByEmail(email string) (Admin, error)
}
