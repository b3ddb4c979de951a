package category

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every category, newest first.
func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(`SELECT id, name, name_ar FROM categories ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.NameAr); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(name, nameAr string) error {
	_, err := r.db.Exec(`INSERT INTO categories (name, name_ar) VALUES ($1, $2)`, name, nameAr)
	return err
}

// Update overwrites both name columns. An unknown id affects zero rows and is
// still reported as success; the admin UI relies on that behaviour.
func (r *PostgresRepository) Update(id int, name, nameAr string) error {
	_, err := r.db.Exec(`UPDATE categories SET name = $1, name_ar = $2 WHERE id = $3`, name, nameAr, id)
	return err
}

// Delete removes the row by id. Products referencing the category are left
// dangling; the order listing resolves them to the 'General' label.
func (r *PostgresRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	return err
}
