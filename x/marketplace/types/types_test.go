package types_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galleria-zone/galleria-node/testutil"
	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

var (
	now    = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	closed = 10 * time.Minute
)

func TestAuctionStatus(t *testing.T) {
	auction := types.Auction{
		TokenID:   "token-1",
		StartTime: now,
		EndTime:   now.Add(time.Hour),
	}

	assert.Equal(t, types.AuctionOpen, auction.Status(now, closed))
	assert.Equal(t, types.AuctionOpen, auction.Status(now.Add(time.Hour-time.Second), closed))
	assert.Equal(t, types.AuctionClosed, auction.Status(now.Add(time.Hour), closed))
	assert.Equal(t, types.AuctionClosed, auction.Status(now.Add(time.Hour+closed-time.Second), closed))
	assert.Equal(t, types.AuctionExpired, auction.Status(now.Add(time.Hour+closed), closed))
}

func TestAuctionReserveMet(t *testing.T) {
	reserve := testutil.Coin(t, 5000)
	auction := types.Auction{StartingPrice: testutil.Coin(t, 1000)}

	// no reserve price is never met
	auction.HighestBid = &types.AuctionBid{Price: testutil.Coin(t, 100000)}
	assert.False(t, auction.ReserveMet())

	auction.ReservePrice = &reserve
	auction.HighestBid = nil
	assert.False(t, auction.ReserveMet())

	auction.HighestBid = &types.AuctionBid{Price: testutil.Coin(t, 4999)}
	assert.False(t, auction.ReserveMet())

	auction.HighestBid = &types.AuctionBid{Price: testutil.Coin(t, 5000)}
	assert.True(t, auction.ReserveMet())
}

func TestAuctionMinNextBid(t *testing.T) {
	increment := testutil.Coin(t, 1000)
	auction := types.Auction{StartingPrice: testutil.Coin(t, 2000)}

	assert.Equal(t, testutil.Coin(t, 2000), auction.MinNextBid(increment))

	auction.HighestBid = &types.AuctionBid{Price: testutil.Coin(t, 3000)}
	assert.Equal(t, testutil.Coin(t, 4000), auction.MinNextBid(increment))
}

func TestPayoutRecipient(t *testing.T) {
	seller := testutil.AccAddress(t)
	recipient := testutil.AccAddress(t)

	ask := types.Ask{Seller: seller}
	assert.Equal(t, seller, ask.PayoutRecipient())

	ask.FundsRecipient = recipient
	assert.Equal(t, recipient, ask.PayoutRecipient())

	auction := types.Auction{Seller: seller}
	assert.Equal(t, seller, auction.PayoutRecipient())

	auction.FundsRecipient = recipient
	assert.Equal(t, recipient, auction.PayoutRecipient())
}

func TestIsExpired(t *testing.T) {
	require.False(t, types.IsExpired(types.Ask{}, now), "no expiry never expires")

	at := now.Add(time.Hour)
	ask := types.Ask{ExpiresAt: &at}
	assert.False(t, types.IsExpired(ask, now))
	assert.True(t, types.IsExpired(ask, at), "expiry boundary is inclusive")
	assert.True(t, types.IsExpired(ask, at.Add(time.Second)))
}

func TestCollectionBidTotalEscrow(t *testing.T) {
	cb := types.CollectionBid{
		Bidder: testutil.AccAddress(t),
		Units:  3,
		Price:  testutil.Coin(t, 1500),
	}
	assert.Equal(t, sdk.NewInt64Coin("ugal", 4500), cb.TotalEscrow())
}
