package favorites

import (
	"errors"
	"fmt"

	"bid-market/internal/auction"
	"bid-market/internal/aucerrors"
	model "bid-market/internal/models"
	"bid-market/internal/repository"
)

// Ledger maintains the many-to-many relation between users and listings.
// It consults the auction engine for product state but never mutates it.
type Ledger struct {
	db     repository.MarketDB
	engine *auction.Engine
}

// NewLedger creates a new Ledger instance
func NewLedger(db repository.MarketDB, engine *auction.Engine) *Ledger {
	return &Ledger{db: db, engine: engine}
}

// Add favorites a listing for a user. The product must exist, be active and
// not be owned by the user; the pair must not already exist. All checks run
// against one consistent product read taken after lazy expiry.
func (l *Ledger) Add(userID, productID string) error {
	product, err := l.engine.GetProduct(productID)
	if err != nil {
		return fmt.Errorf("ledger: add favorite: %w", err)
	}
	if !product.IsActive {
		return fmt.Errorf("ledger: %w - cannot favorite an inactive listing", aucerrors.ErrInvalidOperation)
	}
	if product.OwnerID == userID {
		return fmt.Errorf("ledger: %w - cannot favorite own listing", aucerrors.ErrInvalidOperation)
	}

	exists, err := l.db.FavoriteExists(userID, productID)
	if err != nil {
		return fmt.Errorf("ledger: add favorite: %w", err)
	}
	if exists {
		return fmt.Errorf("ledger: %w", aucerrors.ErrAlreadyFavorited)
	}

	// The pair uniqueness constraint in the store is the backstop against
	// a concurrent duplicate insert.
	if err := l.db.InsertFavorite(model.Favorite{UserID: userID, ProductID: productID}); err != nil {
		if errors.Is(err, aucerrors.ErrAlreadyFavorited) {
			return fmt.Errorf("ledger: %w", aucerrors.ErrAlreadyFavorited)
		}
		return fmt.Errorf("ledger: failed to insert favorite (%s, %s): %w", userID, productID, err)
	}
	return nil
}

// Remove deletes a favorite pair. Removal needs no ownership or activity
// precondition; an absent pair is reported as not found.
func (l *Ledger) Remove(userID, productID string) error {
	if err := l.db.DeleteFavorite(userID, productID); err != nil {
		return fmt.Errorf("ledger: remove favorite: %w", err)
	}
	return nil
}

// IsFavorited reports whether the user has favorited the listing. Pure lookup.
func (l *Ledger) IsFavorited(userID, productID string) (bool, error) {
	exists, err := l.db.FavoriteExists(userID, productID)
	if err != nil {
		return false, fmt.Errorf("ledger: favorite lookup: %w", err)
	}
	return exists, nil
}
