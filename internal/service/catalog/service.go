package catalog

import (
	"context"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
)

// Sort options understood by the derived view. Anything else leaves the
// filtered products in their original relative order.
const (
	SortNone      = ""
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortAlpha     = "alpha"
)

type productRepo interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	AppendReview(ctx context.Context, productID string, review domain.Review) error
}

type snapshotStore interface {
	Load() ([]domain.Product, error)
	Save(products []domain.Product) error
}

// Service owns the in-memory product catalog and its derived filtered view.
// The filtered view is always a pure function of (products, searchQuery,
// categoryFilter, sortOption) as of the last recompute.
//
// Not safe for concurrent use: operations are expected to run serialized on
// the application's event flow, like every other controller.
type Service struct {
	repo      productRepo
	snapshots snapshotStore
	logger    *log.Logger

	products       []domain.Product
	filtered       []domain.Product
	searchQuery    string
	categoryFilter string
	sortOption     string
	loading        bool
}

func New(repo productRepo, snapshots snapshotStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, snapshots: snapshots, logger: logger}
}

// LoadProducts fills the catalog from the durable store, falling back to the
// last snapshot when the store is unavailable. The loading flag stays set
// until the derived view has been recomputed, whatever path was taken.
func (s *Service) LoadProducts(ctx context.Context) {
	s.loading = true
	defer func() {
		s.recompute()
		s.loading = false
	}()

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Printf("catalog: durable store failed, using snapshot: %v", err)
		fallback, ferr := s.snapshots.Load()
		if ferr != nil {
			s.logger.Printf("catalog: snapshot load failed: %v", ferr)
			fallback = nil
		}
		s.products = fallback
		return
	}

	s.products = products
	if err := s.snapshots.Save(products); err != nil {
		// Opportunistic backup only; the in-memory catalog is already live.
		s.logger.Printf("catalog: snapshot save failed: %v", err)
	}
}

func (s *Service) SetSearchQuery(query string) {
	s.searchQuery = query
	s.recompute()
}

func (s *Service) SetCategoryFilter(category string) {
	s.categoryFilter = category
	s.recompute()
}

func (s *Service) SetSortOption(option string) {
	s.sortOption = option
	s.recompute()
}

// ResetFilters restores the unfiltered, unsorted view.
func (s *Service) ResetFilters() {
	s.searchQuery = ""
	s.categoryFilter = ""
	s.sortOption = SortNone
	s.recompute()
}

// AddReview writes the review through the durable store and, only on
// success, patches the cached copy so the catalog never runs ahead of the
// source of truth.
func (s *Service) AddReview(ctx context.Context, productID string, review domain.Review) error {
	if err := s.repo.AppendReview(ctx, productID, review); err != nil {
		return err
	}
	for i := range s.products {
		if s.products[i].ID == productID {
			s.products[i].Reviews = append(s.products[i].Reviews, review)
			break
		}
	}
	s.recompute()
	return nil
}

// ProductByID looks a product up in the in-memory catalog.
func (s *Service) ProductByID(id string) (*domain.Product, bool) {
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, true
		}
	}
	return nil, false
}

// Categories returns the distinct category tags, sorted.
func (s *Service) Categories() []string {
	seen := make(map[string]bool, len(s.products))
	var categories []string
	for _, p := range s.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}

func (s *Service) Products() []domain.Product {
	return append([]domain.Product(nil), s.products...)
}

func (s *Service) Filtered() []domain.Product {
	return append([]domain.Product(nil), s.filtered...)
}

func (s *Service) Loading() bool { return s.loading }

func (s *Service) SearchQuery() string    { return s.searchQuery }
func (s *Service) CategoryFilter() string { return s.categoryFilter }
func (s *Service) SortOption() string     { return s.sortOption }

func (s *Service) recompute() {
	s.filtered = computeView(s.products, s.searchQuery, s.categoryFilter, s.sortOption)
}

// computeView derives the filtered/sorted view. Pure: same inputs, same
// output, no controller state consulted.
func computeView(products []domain.Product, query, category, sortOpt string) []domain.Product {
	lowerQuery := strings.ToLower(query)

	view := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), lowerQuery) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		view = append(view, p)
	}

	switch sortOpt {
	case SortPriceLow:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Price < view[j].Price })
	case SortPriceHigh:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Price > view[j].Price })
	case SortAlpha:
		sort.SliceStable(view, func(i, j int) bool {
			return strings.ToLower(view[i].Name) < strings.ToLower(view[j].Name)
		})
	}
	return view
}
