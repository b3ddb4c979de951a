package order

import (
	"encoding/json"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of orders with shippingInfo parsed from the stored
// address blob, plus the total count for the filter.
func (s *Service) List(page, pageSize int, period string) ([]Order, int, error) {
	orders, totalCount, err := s.repo.List(page, pageSize, period)
	if err != nil {
		return nil, 0, err
	}
	for i := range orders {
		orders[i].ShippingInfo = ParseShippingInfo(orders[i].AddressJSON)
	}
	return orders, totalCount, nil
}

func (s *Service) UpdateStatus(orderID int, status string) error {
	return s.repo.UpdateStatus(orderID, status)
}

func (s *Service) Items(orderID int) ([]Item, error) {
	return s.repo.Items(orderID)
}

// Create stores an incoming order. A blank paymentId gets a generated one so
// the transactions screen always has a reference to show.
func (s *Service) Create(in CreateInput) (int, error) {
	if in.PaymentID == "" {
		in.PaymentID = uuid.NewString()
	}

	addressJSON, err := json.Marshal(in.Address)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(in, string(addressJSON))
}

// ParseShippingInfo decodes the serialized address blob. Malformed or empty
// input yields an empty object; this must never error.
func ParseShippingInfo(addressJSON string) map[string]any {
	info := map[string]any{}
	if addressJSON == "" {
		return info
	}
	if err := json.Unmarshal([]byte(addressJSON), &info); err != nil {
		return map[string]any{}
	}
	return info
}
