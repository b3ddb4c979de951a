package product

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all products with the category name joined in, ordered by id.
// Products pointing at a deleted category come back with an empty categoryName.
func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(`
		SELECT p.id, p."Title", p."Title_ar", p.price, p.image, p."categoryId", c.name AS "categoryName"
		FROM products p
		LEFT JOIN categories c ON p."categoryId" = c.id
		ORDER BY p.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		var (
			p            Product
			image        sql.NullString
			categoryID   sql.NullInt64
			categoryName sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.TitleAr, &p.Price, &image, &categoryID, &categoryName); err != nil {
			return nil, err
		}
		p.Image = image.String
		p.CategoryID = int(categoryID.Int64)
		p.CategoryName = categoryName.String
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(p Product) error {
	_, err := r.db.Exec(`
		INSERT INTO products ("Title", "Title_ar", price, image, "categoryId")
		VALUES ($1, $2, $3, $4, $5)`,
		p.Title, p.TitleAr, p.Price, p.Image, p.CategoryID)
	return err
}

// Update overwrites every mutable column. Zero rows affected is not treated
// as an error, matching the category repository.
func (r *PostgresRepository) Update(p Product) error {
	_, err := r.db.Exec(`
		UPDATE products
		SET "Title" = $1, "Title_ar" = $2, price = $3, image = $4, "categoryId" = $5
		WHERE id = $6`,
		p.Title, p.TitleAr, p.Price, p.Image, p.CategoryID, p.ID)
	return err
}

func (r *PostgresRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	return err
}
