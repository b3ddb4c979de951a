package transaction

import "github.com/balqees-dev/ecom-admin-backend/internal/order"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Transaction, error) {
	return s.repo.List()
}

func (s *Service) Details(id int) (Details, error) {
	d, err := s.repo.GetDetails(id)
	if err != nil {
		return Details{}, err
	}
	d.ShippingInfo = order.ParseShippingInfo(d.AddressJSON)
	return d, nil
}
