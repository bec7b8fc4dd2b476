package cart

import (
	"io"
	"log"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
)

type stateRepo interface {
	Load() ([]domain.CartLine, error)
	Save(lines []domain.CartLine) error
}

// Service is the cart controller. Lines are keyed by (product, size, color):
// adding the same combination again merges quantities, a different size or
// color opens a new line. Every mutation rewrites the persisted cart before
// returning.
type Service struct {
	repo   stateRepo
	logger *log.Logger
	lines  []domain.CartLine
}

func New(repo stateRepo, logger *log.Logger) (*Service, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	lines, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &Service{repo: repo, logger: logger, lines: lines}, nil
}

// Add merges the line into an existing entry with the same key, or appends
// it preserving insertion order.
func (s *Service) Add(line domain.CartLine) error {
	key := line.Key()
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines[i].Quantity += line.Quantity
			return s.persist()
		}
	}
	s.lines = append(s.lines, line)
	return s.persist()
}

// UpdateQuantity sets the matching line's quantity to exactly quantity. A
// value below 1 deletes the line instead; the cart never stores a
// non-positive quantity.
func (s *Service) UpdateQuantity(productID string, quantity int, size, color string) error {
	key := domain.LineKey{ProductID: productID, Size: size, Color: color}
	if quantity < 1 {
		return s.delete(key)
	}
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines[i].Quantity = quantity
			return s.persist()
		}
	}
	return nil
}

// Remove deletes the matching line. Removing an absent line is a no-op.
func (s *Service) Remove(productID string, size, color string) error {
	return s.delete(domain.LineKey{ProductID: productID, Size: size, Color: color})
}

func (s *Service) Clear() error {
	if len(s.lines) == 0 {
		return nil
	}
	s.lines = nil
	return s.persist()
}

// Items returns a copy of the cart lines in insertion order.
func (s *Service) Items() []domain.CartLine {
	return append([]domain.CartLine(nil), s.lines...)
}

// Count is the total quantity across all lines.
func (s *Service) Count() int {
	var n int
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal sums price times quantity over all lines.
func (s *Service) Subtotal() float64 {
	var total float64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

func (s *Service) delete(key domain.LineKey) error {
	kept := s.lines[:0]
	removed := false
	for _, l := range s.lines {
		if l.Key() == key {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		return nil
	}
	s.lines = kept
	return s.persist()
}

func (s *Service) persist() error {
	if err := s.repo.Save(s.lines); err != nil {
		s.logger.Printf("cart: persist lines=%d error=%v", len(s.lines), err)
		return err
	}
	return nil
}
