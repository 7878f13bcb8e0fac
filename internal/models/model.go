package models

import "time"

// User represents a registered account in the marketplace
type User struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Identity is the authenticated caller resolved from a credential token
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Product represents an auction listing
type Product struct {
	ProductID       string    `json:"product_id"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	ClosingAt       time.Time `json:"closing_at"`
	CurrentBid      float64   `json:"current_bid"`
	OwnerID         string    `json:"owner_id"`
	IsActive        bool      `json:"is_active"`
	LeadingBidderID string    `json:"leading_bidder_id,omitempty"`

	// Version is bumped on every persisted write; used for
	// optimistic concurrency control on the product row.
	Version int64 `json:"-"`
}

// Favorite represents a user's bookmark of a listing
type Favorite struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
}
