package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"bid-market/internal/aucerrors"
	"bid-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, aucerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, aucerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, aucerrors.ErrFavoriteNotFound):
		return http.StatusNotFound, "favorite not found"
	case errors.Is(err, aucerrors.ErrInvalidListing):
		return http.StatusBadRequest, "invalid listing details"
	case errors.Is(err, aucerrors.ErrInvalidOperation):
		return http.StatusBadRequest, "invalid operation"
	case errors.Is(err, aucerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is closed"
	case errors.Is(err, aucerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, aucerrors.ErrAlreadyFavorited):
		return http.StatusConflict, "product already favorited"
	case errors.Is(err, aucerrors.ErrUsernameTaken):
		return http.StatusConflict, "username already exists"
	case errors.Is(err, aucerrors.ErrConflict):
		return http.StatusConflict, "concurrent update conflict"
	case errors.Is(err, aucerrors.ErrSelfBid):
		return http.StatusForbidden, "owner cannot bid on own listing"
	case errors.Is(err, aucerrors.ErrForbidden):
		return http.StatusForbidden, "operation not allowed"
	case errors.Is(err, aucerrors.ErrAuthFailure):
		return http.StatusUnauthorized, "could not validate user"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
