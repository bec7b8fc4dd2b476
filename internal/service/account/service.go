package account

import (
	"io"
	"log"
	"regexp"
	"strings"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordMin = 6

type stateRepo interface {
	Load() ([]domain.Account, error)
	Save(accounts []domain.Account) error
}

// Service handles the local registration/login flow. Credentials are stored
// and compared in plain text: this gate is UX only, not access control.
type Service struct {
	repo     stateRepo
	logger   *log.Logger
	accounts []domain.Account
}

func New(repo stateRepo, logger *log.Logger) (*Service, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	stored, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &Service{repo: repo, logger: logger, accounts: stored}, nil
}

// Register adds a new local account. A taken email is rejected with
// ErrDuplicateCredential and leaves the account store unchanged.
func (s *Service) Register(email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailPattern.MatchString(email) {
		return domain.ErrInvalidCredentials
	}
	if len(password) < passwordMin {
		return domain.ErrInvalidCredentials
	}
	for _, a := range s.accounts {
		if a.Email == email {
			return domain.ErrDuplicateCredential
		}
	}
	s.accounts = append(s.accounts, domain.Account{Email: email, Password: password})
	if err := s.repo.Save(s.accounts); err != nil {
		s.logger.Printf("account: persist error=%v", err)
		return err
	}
	s.logger.Printf("account: registered email=%s", email)
	return nil
}

// Login checks the credentials against the stored accounts.
func (s *Service) Login(email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	for _, a := range s.accounts {
		if a.Email == email && a.Password == password {
			return nil
		}
	}
	return domain.ErrInvalidCredentials
}
