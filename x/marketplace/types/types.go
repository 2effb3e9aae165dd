package types

import (
	"strings"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"gopkg.in/yaml.v3"
)

// Ask is a standing offer to sell one specific asset at a fixed price.
// At most one open ask exists per token.
type Ask struct {
	TokenID        string         `json:"token_id"`
	Seller         sdk.AccAddress `json:"seller"`
	Price          sdk.Coin       `json:"price"`
	FundsRecipient sdk.AccAddress `json:"funds_recipient,omitempty"`
	ReservedFor    sdk.AccAddress `json:"reserved_for,omitempty"`
	ExpiresAt      *time.Time     `json:"expires_at,omitempty"`
}

// PayoutRecipient returns the address seller proceeds are paid to.
func (a Ask) PayoutRecipient() sdk.AccAddress {
	if !a.FundsRecipient.Empty() {
		return a.FundsRecipient
	}
	return a.Seller
}

// Expiry implements Expirable
func (a Ask) Expiry() *time.Time { return a.ExpiresAt }

// String implements the Stringer interface for a Ask object.
func (a Ask) String() string {
	out, _ := yaml.Marshal(a)
	return string(out)
}

// Bid is a standing, escrowed offer to buy one specific asset. At most one
// open bid exists per (token, bidder) pair; the escrowed amount equals Price.
type Bid struct {
	TokenID   string         `json:"token_id"`
	Bidder    sdk.AccAddress `json:"bidder"`
	Price     sdk.Coin       `json:"price"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
}

// Expiry implements Expirable
func (b Bid) Expiry() *time.Time { return b.ExpiresAt }

// String implements the Stringer interface for a Bid object.
func (b Bid) String() string {
	out, _ := yaml.Marshal(b)
	return string(out)
}

// CollectionBid is a standing, escrowed offer to buy any one collection asset
// at Price, for up to Units copies. At most one exists per bidder; the
// escrowed amount equals Price x Units.
type CollectionBid struct {
	Bidder    sdk.AccAddress `json:"bidder"`
	Units     uint32         `json:"units"`
	Price     sdk.Coin       `json:"price"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
}

// TotalEscrow returns the funds held against the remaining units.
func (cb CollectionBid) TotalEscrow() sdk.Coin {
	return sdk.NewCoin(cb.Price.Denom, cb.Price.Amount.MulRaw(int64(cb.Units)))
}

// Expiry implements Expirable
func (cb CollectionBid) Expiry() *time.Time { return cb.ExpiresAt }

// String implements the Stringer interface for a CollectionBid object.
func (cb CollectionBid) String() string {
	out, _ := yaml.Marshal(cb)
	return string(out)
}

// AuctionBid is the escrowed highest bid embedded in an auction.
type AuctionBid struct {
	Bidder sdk.AccAddress `json:"bidder"`
	Price  sdk.Coin       `json:"price"`
}

// AuctionStatus is the lazily computed lifecycle state of an auction.
type AuctionStatus uint8

const (
	// AuctionOpen accepts bids: block time is before EndTime.
	AuctionOpen AuctionStatus = iota
	// AuctionClosed is the grace window after EndTime reserved for the seller.
	AuctionClosed
	// AuctionExpired is reached once the grace window has elapsed.
	AuctionExpired
)

func (s AuctionStatus) String() string {
	switch s {
	case AuctionOpen:
		return "open"
	case AuctionClosed:
		return "closed"
	default:
		return "expired"
	}
}

// Auction is an English auction for one asset. At most one exists per token.
type Auction struct {
	TokenID        string         `json:"token_id"`
	Seller         sdk.AccAddress `json:"seller"`
	StartTime      time.Time      `json:"start_time"`
	EndTime        time.Time      `json:"end_time"`
	StartingPrice  sdk.Coin       `json:"starting_price"`
	ReservePrice   *sdk.Coin      `json:"reserve_price,omitempty"`
	FundsRecipient sdk.AccAddress `json:"funds_recipient,omitempty"`
	HighestBid     *AuctionBid    `json:"highest_bid,omitempty"`
}

// Status computes the auction state from stored data and current time.
// Auctions are never transitioned proactively.
func (a Auction) Status(now time.Time, closedDuration time.Duration) AuctionStatus {
	switch {
	case now.Before(a.EndTime):
		return AuctionOpen
	case now.Before(a.EndTime.Add(closedDuration)):
		return AuctionClosed
	default:
		return AuctionExpired
	}
}

// ReserveMet reports whether the highest bid satisfies the reserve price.
// An absent reserve price is never met.
func (a Auction) ReserveMet() bool {
	if a.ReservePrice == nil || a.HighestBid == nil {
		return false
	}
	return a.HighestBid.Price.IsGTE(*a.ReservePrice)
}

// MinNextBid returns the lowest acceptable price for the next bid.
func (a Auction) MinNextBid(minIncrement sdk.Coin) sdk.Coin {
	if a.HighestBid == nil {
		return a.StartingPrice
	}
	return a.HighestBid.Price.Add(minIncrement)
}

// PayoutRecipient returns the address sale proceeds are paid to.
func (a Auction) PayoutRecipient() sdk.AccAddress {
	if !a.FundsRecipient.Empty() {
		return a.FundsRecipient
	}
	return a.Seller
}

// String implements the Stringer interface for a Auction object.
func (a Auction) String() string {
	out, _ := yaml.Marshal(a)
	return string(out)
}

// Auctions is a collection of Auction
type Auctions []Auction

// String implements the Stringer interface for a Auctions object.
func (as Auctions) String() string {
	var out string
	for _, a := range as {
		out += a.String() + "\n"
	}
	return strings.TrimSpace(out)
}

// Expirable is implemented by order records carrying an optional expiry.
// It is used by generic filtering code only; matching and settlement stay
// type specific.
type Expirable interface {
	Expiry() *time.Time
}

// IsExpired reports whether an order's expiry has elapsed at now.
// Records without an expiry never expire.
func IsExpired(e Expirable, now time.Time) bool {
	t := e.Expiry()
	return t != nil && !t.After(now)
}

// RoyaltyInfo is the optional collection royalty metadata resolved through
// the asset registry.
type RoyaltyInfo struct {
	Recipient sdk.AccAddress `json:"recipient"`
	Share     math.LegacyDec `json:"share"`
}
