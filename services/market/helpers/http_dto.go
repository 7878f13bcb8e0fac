package helpers

import (
	"time"

	model "bid-market/internal/models"
)

// Request/Response DTOs
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateListingRequest struct {
	Title       string    `json:"title" binding:"required"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	ClosingAt   time.Time `json:"closing_at" binding:"required"`
	StartingBid float64   `json:"starting_bid" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type ProductResponse struct {
	ProductID       string  `json:"id"`
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	ClosingAt       string  `json:"closing_at"`
	CurrentBid      float64 `json:"current_bid"`
	OwnerID         string  `json:"owner_id"`
	IsActive        bool    `json:"is_active"`
	LeadingBidderID string  `json:"leading_bidder_id,omitempty"`
}

type FavoriteStatusResponse struct {
	ProductID   string `json:"product_id"`
	IsFavorited bool   `json:"is_favorited"`
}

// ToProductResponse converts a domain product into its wire shape
func ToProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ProductID:       p.ProductID,
		Title:           p.Title,
		Category:        p.Category,
		Description:     p.Description,
		ClosingAt:       p.ClosingAt.UTC().Format(time.RFC3339),
		CurrentBid:      p.CurrentBid,
		OwnerID:         p.OwnerID,
		IsActive:        p.IsActive,
		LeadingBidderID: p.LeadingBidderID,
	}
}

// ToProductResponses converts a product slice, never returning nil
func ToProductResponses(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
