package admin

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(email string) (Admin, error) {
	var a Admin
	err := r.db.QueryRow(`SELECT id, email, password FROM admins WHERE email = $1`, email).
		Scan(&a.ID, &a.Email, &a.Password)
	if err == sql.ErrNoRows {
		return Admin{}, ErrNotFound
	}
	if err != nil {
		return Admin{}, err
	}
	return a, nil
}
