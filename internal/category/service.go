package category

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Category, error) {
	return s.repo.List()
}

func (s *Service) Create(name, nameAr string) error {
	return s.repo.Create(name, nameAr)
}

func (s *Service) Update(id int, name, nameAr string) error {
	return s.repo.Update(id, name, nameAr)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
