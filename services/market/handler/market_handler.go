package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	model "bid-market/internal/models"
	"bid-market/services/market/helpers"
	"bid-market/utils"

	"github.com/gin-gonic/gin"
)

type AuctionEngineInterface interface {
	CreateListing(ownerID, title, category, description string, closingAt time.Time, startingBid float64) (model.Product, error)
	PlaceBid(productID, bidderID string, amount float64) error
	CloseListing(productID, callerID string) error
}

type FavoritesLedgerInterface interface {
	Add(userID, productID string) error
	Remove(userID, productID string) error
	IsFavorited(userID, productID string) (bool, error)
}

type QueryServiceInterface interface {
	ListActive(skip, limit int) ([]model.Product, error)
	GetListing(productID string) (model.Product, error)
	MyListings(userID string) ([]model.Product, error)
	MyFavorites(userID string) ([]model.Product, error)
	MyWonAuctions(userID string) ([]model.Product, error)
}

var errNoIdentity = errors.New("no authenticated identity in request context")

type MarketHandler struct {
	engine    AuctionEngineInterface
	favorites FavoritesLedgerInterface
	queries   QueryServiceInterface
}

func NewMarketHandler(engine AuctionEngineInterface, favorites FavoritesLedgerInterface, queries QueryServiceInterface) *MarketHandler {
	return &MarketHandler{engine: engine, favorites: favorites, queries: queries}
}

// CreateListingHandler handles POST /products
func (h *MarketHandler) CreateListingHandler(c *gin.Context) {
	caller, ok := helpers.CurrentIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errNoIdentity, "could not validate user")
		return
	}

	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	product, err := h.engine.CreateListing(caller.UserID, req.Title, req.Category, req.Description, req.ClosingAt, req.StartingBid)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreateListingHandler: failed to create listing", map[string]any{
			"owner_id": caller.UserID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToProductResponse(product), "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"product_id": product.ProductID,
		"owner_id":   product.OwnerID,
	})
}

// ListActiveHandler handles GET /products
func (h *MarketHandler) ListActiveHandler(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 0)

	products, err := h.queries.ListActive(skip, limit)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListActiveHandler: error listing products", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToProductResponses(products), "products retrieved successfully")
}

// GetListingHandler handles GET /products/:product_id
func (h *MarketHandler) GetListingHandler(c *gin.Context) {
	productID := c.Param("product_id")
	product, err := h.queries.GetListing(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetListingHandler: error retrieving product", map[string]any{
			"product_id": productID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToProductResponse(product), "product retrieved successfully")
}

// PlaceBidHandler handles POST /products/:product_id/bid
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	caller, ok := helpers.CurrentIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errNoIdentity, "could not validate user")
		return
	}

	productID := c.Param("product_id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	if err := h.engine.PlaceBid(productID, caller.UserID, req.Amount); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: bid rejected", map[string]any{
			"product_id": productID,
			"bidder_id":  caller.UserID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"product_id": productID, "amount": req.Amount}, "bid accepted")
	helpers.LogSuccess("PlaceBidHandler", "bid accepted", map[string]any{
		"product_id": productID,
		"bidder_id":  caller.UserID,
		"amount":     req.Amount,
	})
}

// CloseListingHandler handles PATCH /products/:product_id/close
func (h *MarketHandler) CloseListingHandler(c *gin.Context) {
	caller, ok := helpers.CurrentIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errNoIdentity, "could not validate user")
		return
	}

	productID := c.Param("product_id")
	if err := h.engine.CloseListing(productID, caller.UserID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CloseListingHandler: close rejected", map[string]any{
			"product_id": productID,
			"caller_id":  caller.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"product_id": productID}, "listing closed")
	helpers.LogSuccess("CloseListingHandler", "listing closed", map[string]any{
		"product_id": productID,
		"caller_id":  caller.UserID,
	})
}

// AddFavoriteHandler handles POST /products/:product_id/favorite
func (h *MarketHandler) AddFavoriteHandler(c *gin.Context) {
	caller, ok := helpers.CurrentIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errNoIdentity, "could not validate user")
		return
	}

	productID := c.Param("product_id")
	if err := h.favorites.Add(caller.UserID, productID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddFavoriteHandler: add rejected", map[string]any{
			"product_id": productID,
			"user_id":    caller.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"product_id": productID}, "favorite added")
}

// RemoveFavoriteHandler handles DELETE /products/:product_id/favorite
func (h *MarketHandler) RemoveFavoriteHandler(c *gin.Context) {
	caller, ok := helpers.CurrentIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errNoIdentity, "could not validate user")
		return
	}

	productID := c.Param("product_id")
	if err := h.favorites.Remove(caller.UserID, productID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RemoveFavoriteHandler: remove rejected", map[string]any{
			"product_id": productID,
			"user_id":    caller.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"product_id": productID}, "favorite removed")
}

// FavoriteStatusHandler handles GET /products/:product_id/favorite-status
func (h *MarketHandler) FavoriteStatusHandler(c *gin.Context) {
	caller, ok := helpers.CurrentIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errNoIdentity, "could not validate user")
		return
	}

	productID := c.Param("product_id")
	favorited, err := h.favorites.IsFavorited(caller.UserID, productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	resp := helpers.FavoriteStatusResponse{ProductID: productID, IsFavorited: favorited}
	utils.JSONResponse(c, http.StatusOK, resp, "favorite status retrieved successfully")
}

// MyListingsHandler handles GET /users/me/products
func (h *MarketHandler) MyListingsHandler(c *gin.Context) {
	h.userProjection(c, "MyListingsHandler", h.queries.MyListings)
}

// MyFavoritesHandler handles GET /users/me/favorites
func (h *MarketHandler) MyFavoritesHandler(c *gin.Context) {
	h.userProjection(c, "MyFavoritesHandler", h.queries.MyFavorites)
}

// MyWonAuctionsHandler handles GET /users/me/won
func (h *MarketHandler) MyWonAuctionsHandler(c *gin.Context) {
	h.userProjection(c, "MyWonAuctionsHandler", h.queries.MyWonAuctions)
}

// userProjection runs one of the per-user read views and writes the result
func (h *MarketHandler) userProjection(c *gin.Context, handlerName string, view func(userID string) ([]model.Product, error)) {
	caller, ok := helpers.CurrentIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errNoIdentity, "could not validate user")
		return
	}

	products, err := view(caller.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn(handlerName+": error retrieving products", map[string]any{
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToProductResponses(products), "products retrieved successfully")
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
