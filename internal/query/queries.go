package query

import (
	"fmt"

	"bid-market/internal/auction"
	model "bid-market/internal/models"
	"bid-market/internal/repository"
)

// DefaultLimit caps a listing page when the caller does not ask for one.
const DefaultLimit = 100

// Service derives read views over the marketplace. Paths that must observe
// fresh lifecycle state run products through the engine's lazy expiry first.
type Service struct {
	db     repository.MarketDB
	engine *auction.Engine
}

// NewService creates a new query Service instance
func NewService(db repository.MarketDB, engine *auction.Engine) *Service {
	return &Service{db: db, engine: engine}
}

// ListActive returns the still-open listings in insertion order, paginated.
// Every listing is expire-checked before the activity filter is applied.
func (s *Service) ListActive(skip, limit int) ([]model.Product, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	products, err := s.db.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("query: list active: %w", err)
	}

	active := make([]model.Product, 0, len(products))
	for _, p := range products {
		p, err = s.engine.ExpireIfDue(p)
		if err != nil {
			return nil, fmt.Errorf("query: list active: %w", err)
		}
		if p.IsActive {
			active = append(active, p)
		}
	}

	if skip >= len(active) {
		return []model.Product{}, nil
	}
	end := skip + limit
	if end > len(active) {
		end = len(active)
	}
	return active[skip:end], nil
}

// GetListing returns a single listing with lazy expiry applied
func (s *Service) GetListing(productID string) (model.Product, error) {
	product, err := s.engine.GetProduct(productID)
	if err != nil {
		return model.Product{}, fmt.Errorf("query: get listing: %w", err)
	}
	return product, nil
}

// MyListings returns every listing owned by the user. Each one is
// expire-checked first, so a stale listing found here transitions to closed
// as a side effect of the read.
func (s *Service) MyListings(userID string) ([]model.Product, error) {
	products, err := s.db.ListProductsByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("query: my listings: %w", err)
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		p, err = s.engine.ExpireIfDue(p)
		if err != nil {
			return nil, fmt.Errorf("query: my listings: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

// MyFavorites returns the listings the user has favorited. Favorites are
// frozen at creation time: a listing that has since closed still shows up,
// so no expiry re-check runs here.
func (s *Service) MyFavorites(userID string) ([]model.Product, error) {
	products, err := s.db.ListFavoriteProducts(userID)
	if err != nil {
		return nil, fmt.Errorf("query: my favorites: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// MyWonAuctions returns the closed listings whose last accepted bid belongs
// to the user.
func (s *Service) MyWonAuctions(userID string) ([]model.Product, error) {
	products, err := s.db.ListProductsWonBy(userID)
	if err != nil {
		return nil, fmt.Errorf("query: my won auctions: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}
