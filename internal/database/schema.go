package database

import "database/sql"

// EnsureSchema creates the admin tables when they are missing. Column names
// keep the camelCase convention of the storefront schema, so mixed-case
// identifiers are quoted.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			name_ar TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			"Title" TEXT NOT NULL,
			"Title_ar" TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,3) NOT NULL DEFAULT 0,
			image TEXT,
			"categoryId" INT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			"paymentId" TEXT,
			"customerName" TEXT,
			"customerEmail" TEXT,
			"customerPhone" TEXT,
			"totalAmount" NUMERIC(10,3) NOT NULL DEFAULT 0,
			status TEXT,
			address TEXT,
			created_at TIMESTAMP,
			updated_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			"orderId" INT NOT NULL,
			"productId" INT,
			"productName" TEXT,
			quantity INT NOT NULL DEFAULT 1,
			price NUMERIC(10,3) NOT NULL DEFAULT 0,
			image TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS signup (
			id SERIAL PRIMARY KEY,
			name TEXT,
			email TEXT,
			mobile TEXT,
			country TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS restaurant_info (
			id SERIAL PRIMARY KEY,
			name TEXT,
			name_ar TEXT,
			tagline TEXT,
			tagline_ar TEXT,
			"logoUrl" TEXT,
			phone TEXT,
			address TEXT,
			address_ar TEXT,
			email TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
