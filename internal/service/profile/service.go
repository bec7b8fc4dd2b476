package profile

import (
	"io"
	"log"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
)

type stateRepo interface {
	Load() (domain.UserProfile, error)
	Save(profile domain.UserProfile) error
}

// Service is the user profile controller: one mutable record, persisted on
// every update, used to prefill checkout.
type Service struct {
	repo    stateRepo
	logger  *log.Logger
	profile domain.UserProfile
}

func New(repo stateRepo, logger *log.Logger) (*Service, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	stored, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &Service{repo: repo, logger: logger, profile: stored}, nil
}

func (s *Service) Get() domain.UserProfile {
	return s.profile
}

// Update merges the given record into the stored one: only non-empty fields
// overwrite, so a partial form edit cannot blank fields it never showed.
func (s *Service) Update(in domain.UserProfile) error {
	merge(&s.profile.FirstName, in.FirstName)
	merge(&s.profile.LastName, in.LastName)
	merge(&s.profile.Email, in.Email)
	merge(&s.profile.Password, in.Password)
	merge(&s.profile.Address, in.Address)
	merge(&s.profile.City, in.City)
	merge(&s.profile.Region, in.Region)
	merge(&s.profile.PostalCode, in.PostalCode)
	merge(&s.profile.Country, in.Country)
	merge(&s.profile.Phone, in.Phone)
	merge(&s.profile.Birthday, in.Birthday)
	merge(&s.profile.Gender, in.Gender)

	if err := s.repo.Save(s.profile); err != nil {
		s.logger.Printf("profile: persist error=%v", err)
		return err
	}
	return nil
}

func merge(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}
