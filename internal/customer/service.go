package customer

import "github.com/shopspring/decimal"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Customer, error) {
	return s.repo.List()
}

// Details fetches the profile and then its order history by email. totalSpent
// is summed here rather than in SQL; the two reads are separate queries, so a
// write landing between them can skew the totals slightly.
func (s *Service) Details(id int) (Details, error) {
	profile, err := s.repo.GetProfile(id)
	if err != nil {
		return Details{}, err
	}

	orders, err := s.repo.OrdersByEmail(profile.Email)
	if err != nil {
		return Details{}, err
	}

	totalSpent := decimal.Zero
	for _, o := range orders {
		totalSpent = totalSpent.Add(o.TotalAmount)
	}

	profile.OrdersCount = len(orders)
	profile.TotalSpent = totalSpent
	return Details{Customer: profile, Orders: orders}, nil
}
