package auction

import (
	"errors"
	"fmt"
	"time"

	"bid-market/internal/aucerrors"
	model "bid-market/internal/models"
	"bid-market/internal/repository"
	"bid-market/utils"
)

// maxUpdateRetries bounds how often a contended product write is retried
// before the conflict surfaces to the caller.
const maxUpdateRetries = 3

// Engine owns the auction lifecycle: listing creation, bid acceptance,
// explicit closing and lazy expiry. It is the only writer of CurrentBid,
// IsActive and LeadingBidderID.
type Engine struct {
	db  repository.MarketDB
	now func() time.Time
}

// NewEngine creates a new Engine instance
func NewEngine(db repository.MarketDB) *Engine {
	return &Engine{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// NewEngineWithClock creates an Engine with an injected clock. Intended for tests.
func NewEngineWithClock(db repository.MarketDB, now func() time.Time) *Engine {
	return &Engine{db: db, now: now}
}

// CreateListing validates and stores a new auction listing
func (e *Engine) CreateListing(ownerID, title, category, description string, closingAt time.Time, startingBid float64) (model.Product, error) {
	if ownerID == "" || title == "" {
		return model.Product{}, fmt.Errorf("engine: %w - missing owner or title", aucerrors.ErrInvalidListing)
	}
	if startingBid <= 0 {
		return model.Product{}, fmt.Errorf("engine: %w - non-positive starting bid", aucerrors.ErrInvalidListing)
	}
	if !closingAt.After(e.now()) {
		return model.Product{}, fmt.Errorf("engine: %w - closing time must be in the future", aucerrors.ErrInvalidListing)
	}

	product := model.Product{
		ProductID:   utils.GenerateID(),
		Title:       title,
		Category:    category,
		Description: description,
		ClosingAt:   closingAt.UTC(),
		CurrentBid:  startingBid,
		OwnerID:     ownerID,
		IsActive:    true,
	}

	if err := e.db.InsertProduct(product); err != nil {
		return model.Product{}, fmt.Errorf("engine: failed to insert listing by owner %s: %w", ownerID, err)
	}
	product.Version = 1
	return product, nil
}

// PlaceBid validates a bid against the current product state and folds it in.
// Preconditions are checked in order, first failure wins: existence, lazy
// expiry, activity, strictly-greater amount, no self-bidding.
func (e *Engine) PlaceBid(productID, bidderID string, amount float64) error {
	if productID == "" || bidderID == "" {
		return fmt.Errorf("engine: %w - missing productID or bidderID", aucerrors.ErrInvalidOperation)
	}

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		product, err := e.GetProduct(productID)
		if err != nil {
			return err
		}
		if !product.IsActive {
			return fmt.Errorf("engine: %w", aucerrors.ErrAuctionClosed)
		}
		if amount <= product.CurrentBid {
			return fmt.Errorf("engine: %w - current bid is %.2f", aucerrors.ErrBidTooLow, product.CurrentBid)
		}
		if bidderID == product.OwnerID {
			return fmt.Errorf("engine: %w", aucerrors.ErrSelfBid)
		}

		product.CurrentBid = amount
		product.LeadingBidderID = bidderID
		err = e.db.UpdateProduct(product)
		if errors.Is(err, aucerrors.ErrVersionConflict) {
			continue // another bid or close landed first; re-evaluate
		}
		if err != nil {
			return fmt.Errorf("engine: failed to record bid on %s by %s: %w", productID, bidderID, err)
		}
		return nil
	}
	return fmt.Errorf("engine: bid on %s by %s: %w", productID, bidderID, aucerrors.ErrConflict)
}

// CloseListing closes a listing on behalf of its owner. Closing an already
// inactive listing succeeds silently; the leader and amount freeze at their
// last values, implicitly designating the winner.
func (e *Engine) CloseListing(productID, callerID string) error {
	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		product, err := e.db.GetProduct(productID)
		if err != nil {
			return fmt.Errorf("engine: close listing: %w", err)
		}
		if callerID != product.OwnerID {
			return fmt.Errorf("engine: close listing %s: %w", productID, aucerrors.ErrForbidden)
		}

		product.IsActive = false
		err = e.db.UpdateProduct(product)
		if errors.Is(err, aucerrors.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return fmt.Errorf("engine: failed to close listing %s: %w", productID, err)
		}
		return nil
	}
	return fmt.Errorf("engine: close listing %s: %w", productID, aucerrors.ErrConflict)
}

// GetProduct loads a product and applies lazy expiry before returning it
func (e *Engine) GetProduct(productID string) (model.Product, error) {
	product, err := e.db.GetProduct(productID)
	if err != nil {
		return model.Product{}, fmt.Errorf("engine: %w", err)
	}
	return e.ExpireIfDue(product)
}

// ExpireIfDue flips an active product to inactive once its closing time has
// passed, persisting the change before returning. This is the only mechanism
// that closes an auction by elapsed time. Safe to call redundantly; it never
// resurrects a closed auction.
func (e *Engine) ExpireIfDue(product model.Product) (model.Product, error) {
	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		if !product.IsActive || product.ClosingAt.After(e.now()) {
			return product, nil
		}

		product.IsActive = false
		err := e.db.UpdateProduct(product)
		if err == nil {
			product.Version++
			return product, nil
		}
		if !errors.Is(err, aucerrors.ErrVersionConflict) {
			return model.Product{}, fmt.Errorf("engine: failed to expire product %s: %w", product.ProductID, err)
		}

		// Lost the write race; reload and re-evaluate. ClosingAt is
		// immutable, so the listing is either already inactive or the
		// retry will close it.
		product, err = e.db.GetProduct(product.ProductID)
		if err != nil {
			return model.Product{}, fmt.Errorf("engine: failed to expire product: %w", err)
		}
	}
	return model.Product{}, fmt.Errorf("engine: expire product %s: %w", product.ProductID, aucerrors.ErrConflict)
}

// Winner returns the winning bidder of a closed listing. While a listing is
// still active, or when it closed without any accepted bid, there is no winner.
func Winner(product model.Product) (string, bool) {
	if product.IsActive || product.LeadingBidderID == "" {
		return "", false
	}
	return product.LeadingBidderID, true
}
