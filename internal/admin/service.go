package admin

import "golang.org/x/crypto/bcrypt"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate verifies the password against the stored bcrypt hash. Unknown
// email and wrong password collapse into the same error.
func (s *Service) Authenticate(email, password string) (Admin, error) {
	a, err := s.repo.GetByEmail(email)
	if err != nil {
		return Admin{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
		return Admin{}, ErrInvalidCredentials
	}

	return a, nil
}
