package restaurant

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get() (Info, error) {
	return s.repo.Get()
}

func (s *Service) Update(info Info) error {
	return s.repo.Update(info)
}
