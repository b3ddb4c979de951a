package order

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func listColumns() []string {
	return []string{
		"id", "paymentId", "customerName", "customerEmail", "customerPhone",
		"totalAmount", "status", "address", "date",
		"productName", "productImage", "categoryName", "itemsCount",
	}
}

func TestList_PaginationOffsets(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	now := time.Now()
	rows := sqlmock.NewRows(listColumns()).
		AddRow(11, "pay-11", "Sara", "sara@example.com", "555", "4.500", "PAID",
			`{"area":"Salmiya"}`, now, "Classic Burger", "/img/classic.jpg", "Burgers", 2).
		AddRow(10, "pay-10", "Ali", "ali@example.com", nil, "2.250", "SHIPPED",
			nil, now, nil, nil, "General", 1)
	// page 2 with pageSize 10 translates to OFFSET 10 LIMIT 10
	mock.ExpectQuery("FROM orders o").WithArgs(10, 10).WillReturnRows(rows)

	orders, totalCount, err := repo.List(2, 10, "all")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if totalCount != 25 {
		t.Fatalf("expected totalCount 25, got %d", totalCount)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ProductName != "Classic Burger" || orders[0].CategoryName != "Burgers" {
		t.Fatalf("unexpected representative item %+v", orders[0])
	}
	if !orders[0].TotalAmount.Equal(decimal.RequireFromString("4.500")) {
		t.Fatalf("unexpected totalAmount %s", orders[0].TotalAmount)
	}
	// order without items gets the sentinel category and empty item fields
	if orders[1].CategoryName != "General" || orders[1].ProductName != "" {
		t.Fatalf("unexpected itemless order %+v", orders[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestList_PeriodSharedBetweenCountAndPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`(?s)SELECT COUNT.+created_at >= CURRENT_DATE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`(?s)FROM orders o.+created_at >= CURRENT_DATE`).
		WithArgs(0, 10).
		WillReturnRows(sqlmock.NewRows(listColumns()))

	orders, totalCount, err := repo.List(1, 10, "today")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if totalCount != 0 || len(orders) != 0 {
		t.Fatalf("expected empty result, got count=%d rows=%d", totalCount, len(orders))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateStatus_Idempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// setting the same status twice succeeds both times
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("SHIPPED", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("SHIPPED", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateStatus(5, "SHIPPED"); err != nil {
		t.Fatalf("first update returned error: %v", err)
	}
	if err := repo.UpdateStatus(5, "SHIPPED"); err != nil {
		t.Fatalf("second update returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateStatus_AcceptsAnyString(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// no transition table: even values outside the recognized set are written
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("ON_HOLD", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateStatus(5, "ON_HOLD"); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepositoryItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"productName", "quantity", "price", "image"}).
		AddRow("Classic Burger", 2, "2.500", "/img/classic.jpg").
		AddRow("Fries", 1, "0.750", nil)
	mock.ExpectQuery("FROM order_items").WithArgs(5).WillReturnRows(rows)

	items, err := repo.Items(5)
	if err != nil {
		t.Fatalf("Items returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Quantity != 2 || !items[0].Price.Equal(decimal.RequireFromString("2.500")) {
		t.Fatalf("unexpected item %+v", items[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreate_InsertsOrderAndItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	total := decimal.RequireFromString("5.250")
	price := decimal.RequireFromString("2.500")

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("pay-1", "Sara", "sara@example.com", "555", total, `{"area":"Salmiya"}`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(42, 7, "Classic Burger", 2, price, "/img/classic.jpg").
		WillReturnResult(sqlmock.NewResult(1, 1))

	in := CreateInput{
		PaymentID:     "pay-1",
		CustomerName:  "Sara",
		CustomerEmail: "sara@example.com",
		CustomerPhone: "555",
		TotalAmount:   total,
		Items: []ItemInput{
			{ProductID: 7, Title: "Classic Burger", Qty: 2, Price: price, Image: "/img/classic.jpg"},
		},
	}

	orderID, err := repo.Create(in, `{"area":"Salmiya"}`)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if orderID != 42 {
		t.Fatalf("expected order id 42, got %d", orderID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
