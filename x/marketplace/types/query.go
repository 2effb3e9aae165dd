package types

import (
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// DefaultPageLimit is used when a query leaves Limit unset.
	DefaultPageLimit uint32 = 10
	// MaxPageLimit caps the page size regardless of the caller's limit.
	MaxPageLimit uint32 = 30
)

// PageOptions controls range listings: sort direction, page size and an
// optional expiry floor excluding records expiring at or before it.
type PageOptions struct {
	Descending  bool       `json:"descending,omitempty"`
	Limit       uint32     `json:"limit,omitempty"`
	ExpiryFloor *time.Time `json:"expiry_floor,omitempty"`
}

// EffectiveLimit applies the default and the hard cap.
func (o PageOptions) EffectiveLimit() uint32 {
	limit := o.Limit
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return limit
}

// PriceCursor is the exclusive start-after cursor for price-sorted listings.
// Key is the record's distinguishing key within the price level (token id or
// bidder).
type PriceCursor struct {
	Amount math.Int `json:"amount"`
	Key    string   `json:"key"`
}

// TimeCursor is the exclusive start-after cursor for time-sorted listings.
// A nil At resumes among records without expiry.
type TimeCursor struct {
	At  *time.Time `json:"at,omitempty"`
	Key string     `json:"key"`
}

// BidTimeCursor is the start-after cursor for the global bid-by-expiry
// listing, whose records are keyed by (token, bidder) within a timestamp.
type BidTimeCursor struct {
	At      *time.Time     `json:"at,omitempty"`
	TokenID string         `json:"token_id"`
	Bidder  sdk.AccAddress `json:"bidder"`
}

// point lookups

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryAskRequest struct {
	TokenID string `json:"token_id"`
}

type QueryAskResponse struct {
	// Ask is nil when no listing exists for the token.
	Ask *Ask `json:"ask,omitempty"`
}

type QueryBidRequest struct {
	TokenID string         `json:"token_id"`
	Bidder  sdk.AccAddress `json:"bidder"`
}

type QueryBidResponse struct {
	Bid *Bid `json:"bid,omitempty"`
}

type QueryCollectionBidRequest struct {
	Bidder sdk.AccAddress `json:"bidder"`
}

type QueryCollectionBidResponse struct {
	CollectionBid *CollectionBid `json:"collection_bid,omitempty"`
}

type QueryAuctionRequest struct {
	TokenID string `json:"token_id"`
}

type QueryAuctionResponse struct {
	Auction *Auction `json:"auction,omitempty"`
}

// ask listings

type QueryAsksByPriceRequest struct {
	StartAfter *PriceCursor `json:"start_after,omitempty"`
	Pagination PageOptions  `json:"pagination"`
}

type QueryAsksByExpiryRequest struct {
	StartAfter *TimeCursor `json:"start_after,omitempty"`
	Pagination PageOptions `json:"pagination"`
}

type QueryAsksBySellerRequest struct {
	Seller     sdk.AccAddress `json:"seller"`
	StartAfter *TimeCursor    `json:"start_after,omitempty"`
	Pagination PageOptions    `json:"pagination"`
}

type QueryAsksResponse struct {
	Asks []Ask `json:"asks"`
}

// bid listings

type QueryBidsByAssetRequest struct {
	TokenID    string       `json:"token_id"`
	StartAfter *PriceCursor `json:"start_after,omitempty"`
	Pagination PageOptions  `json:"pagination"`
}

type QueryBidsByExpiryRequest struct {
	StartAfter *BidTimeCursor `json:"start_after,omitempty"`
	Pagination PageOptions    `json:"pagination"`
}

type QueryBidsByBidderRequest struct {
	Bidder     sdk.AccAddress `json:"bidder"`
	StartAfter *TimeCursor    `json:"start_after,omitempty"`
	Pagination PageOptions    `json:"pagination"`
}

type QueryBidsResponse struct {
	Bids []Bid `json:"bids"`
}

// collection bid listings

type QueryCollectionBidsByPriceRequest struct {
	StartAfter *PriceCursor `json:"start_after,omitempty"`
	Pagination PageOptions  `json:"pagination"`
}

type QueryCollectionBidsByExpiryRequest struct {
	StartAfter *TimeCursor `json:"start_after,omitempty"`
	Pagination PageOptions `json:"pagination"`
}

type QueryCollectionBidsResponse struct {
	CollectionBids []CollectionBid `json:"collection_bids"`
}

// auction listings

type QueryAuctionsByEndTimeRequest struct {
	StartAfter *TimeCursor `json:"start_after,omitempty"`
	Pagination PageOptions `json:"pagination"`
}

type QueryAuctionsByPriceRequest struct {
	StartAfter *PriceCursor `json:"start_after,omitempty"`
	Pagination PageOptions  `json:"pagination"`
}

type QueryAuctionsBySellerRequest struct {
	Seller     sdk.AccAddress `json:"seller"`
	StartAfter string         `json:"start_after,omitempty"`
	Pagination PageOptions    `json:"pagination"`
}

type QueryAuctionsByBidderRequest struct {
	Bidder     sdk.AccAddress `json:"bidder"`
	StartAfter string         `json:"start_after,omitempty"`
	Pagination PageOptions    `json:"pagination"`
}

type QueryAuctionsResponse struct {
	Auctions Auctions `json:"auctions"`
}
