package product

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func TestList_JoinsCategoryName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id", "Title", "Title_ar", "price", "image", "categoryId", "categoryName"}).
		AddRow(1, "Classic Burger", "برجر كلاسيك", "2.500", "/img/classic.jpg", 1, "Burgers").
		AddRow(2, "Orphan", "", "0.750", nil, nil, nil)
	mock.ExpectQuery("LEFT JOIN categories").WillReturnRows(rows)

	products, err := repo.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].CategoryName != "Burgers" {
		t.Fatalf("expected joined category name, got %q", products[0].CategoryName)
	}
	if !products[0].Price.Equal(decimal.RequireFromString("2.500")) {
		t.Fatalf("unexpected price %s", products[0].Price)
	}
	// product with a dangling categoryId comes back with empty categoryName
	if products[1].CategoryName != "" || products[1].CategoryID != 0 {
		t.Fatalf("unexpected orphan row %+v", products[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	price := decimal.RequireFromString("2.500")
	mock.ExpectExec("INSERT INTO products").
		WithArgs("Classic Burger", "برجر كلاسيك", price, "/img/classic.jpg", 1).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Create(Product{
		Title:      "Classic Burger",
		TitleAr:    "برجر كلاسيك",
		Price:      price,
		Image:      "/img/classic.jpg",
		CategoryID: 1,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdate_ZeroRowsStillSucceeds(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	price := decimal.RequireFromString("3.250")
	mock.ExpectExec("UPDATE products").
		WithArgs("Cheese Burger", "", price, "", 2, 404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(Product{ID: 404, Title: "Cheese Burger", Price: price, CategoryID: 2})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM products").
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(3); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
