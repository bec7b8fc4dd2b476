package orders

import (
	"io"
	"log"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
)

type stateRepo interface {
	Load() ([]domain.Order, error)
	Save(orders []domain.Order) error
}

// Service is the order history controller. History is append-only and kept
// newest first; orders are never updated in place.
type Service struct {
	repo   stateRepo
	logger *log.Logger
	orders []domain.Order
}

func New(repo stateRepo, logger *log.Logger) (*Service, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	stored, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &Service{repo: repo, logger: logger, orders: stored}, nil
}

// Add prepends the order so the most recent one is listed first.
func (s *Service) Add(order domain.Order) error {
	s.orders = append([]domain.Order{order}, s.orders...)
	if err := s.repo.Save(s.orders); err != nil {
		s.logger.Printf("orders: persist count=%d error=%v", len(s.orders), err)
		return err
	}
	s.logger.Printf("orders: added id=%s total=%.2f", order.ID, order.Total)
	return nil
}

func (s *Service) Clear() error {
	if len(s.orders) == 0 {
		return nil
	}
	s.orders = nil
	return s.repo.Save(s.orders)
}

// List returns a copy of the history, newest first.
func (s *Service) List() []domain.Order {
	return append([]domain.Order(nil), s.orders...)
}
