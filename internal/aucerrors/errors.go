package aucerrors

import "errors"

// Repository-level errors
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrVersionConflict  = errors.New("product version conflict")
)

// business logic errors
var (
	ErrInvalidListing   = errors.New("invalid listing")
	ErrAuctionClosed    = errors.New("auction is closed")
	ErrBidTooLow        = errors.New("bid amount too low")
	ErrSelfBid          = errors.New("owner cannot bid on own listing")
	ErrForbidden        = errors.New("operation not allowed for this user")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrAlreadyFavorited = errors.New("product already favorited")
	ErrConflict         = errors.New("concurrent update conflict")
	ErrAuthFailure      = errors.New("could not validate user")
)
