package dashboard

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Stats() (Stats, error) {
	return s.repo.Stats()
}
