package restaurant

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when the restaurant_info table is empty.
var ErrNotFound = errors.New("restaurant info not found")

// Repository provides the single restaurant_info row.
type Repository interface {
	Get() (Info, error)
	Update(info Info) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get() (Info, error) {
	var (
		info Info
		cols [9]sql.NullString
	)
	err := r.db.QueryRow(`
		SELECT id, name, name_ar, tagline, tagline_ar, "logoUrl", phone, address, address_ar, email
		FROM restaurant_info
		ORDER BY id
		LIMIT 1`).
		Scan(&info.ID, &cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5], &cols[6], &cols[7], &cols[8])
	if err == sql.ErrNoRows {
		return Info{}, ErrNotFound
	}
	if err != nil {
		return Info{}, err
	}
	info.Name = cols[0].String
	info.NameAr = cols[1].String
	info.Tagline = cols[2].String
	info.TaglineAr = cols[3].String
	info.LogoURL = cols[4].String
	info.Phone = cols[5].String
	info.Address = cols[6].String
	info.AddressAr = cols[7].String
	info.Email = cols[8].String
	return info, nil
}

// Update rewrites the first row, inserting it when the table is still empty.
func (r *PostgresRepository) Update(info Info) error {
	res, err := r.db.Exec(`
		UPDATE restaurant_info
		SET name = $1, name_ar = $2, tagline = $3, tagline_ar = $4, "logoUrl" = $5,
			phone = $6, address = $7, address_ar = $8, email = $9
		WHERE id = (SELECT id FROM restaurant_info ORDER BY id LIMIT 1)`,
		info.Name, info.NameAr, info.Tagline, info.TaglineAr, info.LogoURL,
		info.Phone, info.Address, info.AddressAr, info.Email)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		_, err = r.db.Exec(`
			INSERT INTO restaurant_info (name, name_ar, tagline, tagline_ar, "logoUrl", phone, address, address_ar, email)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			info.Name, info.NameAr, info.Tagline, info.TaglineAr, info.LogoURL,
			info.Phone, info.Address, info.AddressAr, info.Email)
	}
	return err
}
