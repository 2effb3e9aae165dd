package types

import (
	cerrors "cosmossdk.io/errors"
)

var (
	// validation
	ErrInvalidPrice  = cerrors.Register(ModuleName, 1, "invalid price")
	ErrInvalidExpiry = cerrors.Register(ModuleName, 2, "expiry outside configured range")
	ErrInvalidUnits  = cerrors.Register(ModuleName, 3, "units must be positive")
	// ErrInvalidReserve is the error when reserve price is below starting price
	ErrInvalidReserve = cerrors.Register(ModuleName, 4, "reserve price below starting price")
	ErrInvalidTiming  = cerrors.Register(ModuleName, 5, "auction timing outside configured range")

	// authorization
	ErrUnauthorized = cerrors.Register(ModuleName, 6, "unauthorized")
	// ErrSameAccount is the error when seller bids on their own listing
	ErrSameAccount = cerrors.Register(ModuleName, 7, "seller and bidder are the same account")

	// state
	ErrAskExists             = cerrors.Register(ModuleName, 8, "ask already exists for token")
	ErrAskNotFound           = cerrors.Register(ModuleName, 9, "ask not found")
	ErrBidNotFound           = cerrors.Register(ModuleName, 10, "bid not found")
	ErrCollectionBidNotFound = cerrors.Register(ModuleName, 11, "collection bid not found")
	ErrAuctionExists         = cerrors.Register(ModuleName, 12, "auction already exists for token")
	ErrAuctionNotFound       = cerrors.Register(ModuleName, 13, "auction not found")
	// ErrInvalidAuctionState is the error when an auction is in the wrong
	// lifecycle state for the requested transition
	ErrInvalidAuctionState = cerrors.Register(ModuleName, 14, "invalid auction state")
	ErrReserveMet          = cerrors.Register(ModuleName, 15, "reserve price met")
	ErrReserveNotMet       = cerrors.Register(ModuleName, 16, "reserve price not met")
	ErrExpired             = cerrors.Register(ModuleName, 17, "order expired")
	ErrBidTooLow           = cerrors.Register(ModuleName, 18, "bid price too low")

	// payment
	ErrInvalidDeposit = cerrors.Register(ModuleName, 19, "deposit does not match required amount")

	// cross-component
	ErrAssetRegistry = cerrors.Register(ModuleName, 20, "asset registry failure")
)
