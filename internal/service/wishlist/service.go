package wishlist

import (
	"io"
	"log"
	"sort"
)

type stateRepo interface {
	Load() ([]string, error)
	Save(ids []string) error
}

// Service is the wishlist controller: a persisted set of product ids.
// Dangling ids are tolerated; they simply resolve to nothing downstream.
type Service struct {
	repo   stateRepo
	logger *log.Logger
	ids    map[string]bool
}

func New(repo stateRepo, logger *log.Logger) (*Service, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	stored, err := repo.Load()
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(stored))
	for _, id := range stored {
		ids[id] = true
	}
	return &Service{repo: repo, logger: logger, ids: ids}, nil
}

// Toggle flips membership of productID and persists the result.
func (s *Service) Toggle(productID string) error {
	if s.ids[productID] {
		delete(s.ids, productID)
	} else {
		s.ids[productID] = true
	}
	if err := s.repo.Save(s.IDs()); err != nil {
		s.logger.Printf("wishlist: persist error=%v", err)
		return err
	}
	return nil
}

// IsWishlisted reports membership without side effects.
func (s *Service) IsWishlisted(productID string) bool {
	return s.ids[productID]
}

// IDs returns the wishlisted product ids sorted, for stable persistence and
// rendering.
func (s *Service) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
