package dashboard

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func statsColumns() []string {
	return []string{"totalRevenue", "totalOrders", "completedOrders", "confirmedOrders", "cancelledOrders"}
}

func TestStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(statsColumns()).
		AddRow("120.500", 40, 18, 15, 7)
	mock.ExpectQuery("FROM orders").WillReturnRows(rows)

	stats, err := repo.Stats()
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if !stats.TotalRevenue.Equal(decimal.RequireFromString("120.500")) {
		t.Fatalf("unexpected revenue %s", stats.TotalRevenue)
	}
	if stats.TotalOrders != 40 || stats.CompletedOrders != 18 || stats.ConfirmedOrders != 15 || stats.CancelledOrders != 7 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStats_EmptyTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// COALESCE turns the NULL sum into zero
	rows := sqlmock.NewRows(statsColumns()).
		AddRow("0", 0, 0, 0, 0)
	mock.ExpectQuery("FROM orders").WillReturnRows(rows)

	stats, err := repo.Stats()
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if !stats.TotalRevenue.IsZero() || stats.TotalOrders != 0 {
		t.Fatalf("unexpected empty-table stats %+v", stats)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
