package dashboard

import (
	"database/sql"

	"github.com/lib/pq"
)

// Repository provides the dashboard aggregate.
type Repository interface {
	Stats() (Stats, error)
}

// Status buckets shown on the dashboard cards.
var (
	completedStatuses = []string{"DELIVERED", "COMPLETED"}
	confirmedStatuses = []string{"PAID", "CONFIRMED"}
	cancelledStatuses = []string{"CANCELLED"}
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Stats aggregates every order row in one query. SUM over an empty table is
// NULL, so revenue is coalesced to zero.
func (r *PostgresRepository) Stats() (Stats, error) {
	var s Stats
	err := r.db.QueryRow(`
		SELECT
			COALESCE(SUM("totalAmount"), 0) AS "totalRevenue",
			COUNT(id) AS "totalOrders",
			COUNT(*) FILTER (WHERE status = ANY($1)) AS "completedOrders",
			COUNT(*) FILTER (WHERE status = ANY($2)) AS "confirmedOrders",
			COUNT(*) FILTER (WHERE status = ANY($3)) AS "cancelledOrders"
		FROM orders`,
		pq.Array(completedStatuses), pq.Array(confirmedStatuses), pq.Array(cancelledStatuses)).
		Scan(&s.TotalRevenue, &s.TotalOrders, &s.CompletedOrders, &s.ConfirmedOrders, &s.CancelledOrders)
	if err != nil {
		return Stats{}, err
	}
	return s, nil
}
