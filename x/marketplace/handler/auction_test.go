package handler_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galleria-zone/galleria-node/testutil"
	"github.com/galleria-zone/galleria-node/x/marketplace/keeper"
	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

// openAuction creates a two-hour auction starting now and returns its token.
func (s *testSuite) openAuction(seller sdk.AccAddress, starting int64, reserve *int64) string {
	tokenID := s.ownedToken(seller)

	msg := &types.MsgSetAuction{
		Seller:        seller,
		TokenID:       tokenID,
		EndTime:       s.Now().Add(2 * time.Hour),
		StartingPrice: testutil.Coin(s.t, starting),
	}
	if reserve != nil {
		coin := testutil.Coin(s.t, *reserve)
		msg.ReservePrice = &coin
	}

	_, err := s.server.SetAuction(s.Context(), msg)
	require.NoError(s.t, err)
	return tokenID
}

func (s *testSuite) auctionBid(bidder sdk.AccAddress, tokenID string, amount int64) (*types.MsgSetAuctionBidResponse, error) {
	s.Bank().Fund(bidder, testutil.Coin(s.t, amount))
	return s.server.SetAuctionBid(s.Context(), &types.MsgSetAuctionBid{
		Bidder:  bidder,
		TokenID: tokenID,
		Price:   testutil.Coin(s.t, amount),
		Deposit: testutil.Coin(s.t, amount),
	})
}

func TestSetAuctionCustodyAndConflicts(t *testing.T) {
	s := setupTestSuite(t)
	seller := testutil.AccAddress(t)

	tokenID := s.openAuction(seller, 2000, nil)

	owner, err := s.Registry().OwnerOf(s.Context(), tokenID)
	require.NoError(t, err)
	assert.Equal(t, keeper.ModuleAddress, owner)

	// a running auction blocks both a second auction and a fixed-price listing
	_, err = s.server.SetAuction(s.Context(), &types.MsgSetAuction{
		Seller:        seller,
		TokenID:       tokenID,
		EndTime:       s.Now().Add(2 * time.Hour),
		StartingPrice: testutil.Coin(t, 2000),
	})
	require.ErrorIs(t, err, types.ErrAuctionExists)

	_, err = s.server.SetAsk(s.Context(), &types.MsgSetAsk{
		Seller:  seller,
		TokenID: tokenID,
		Price:   testutil.Coin(t, 2000),
	})
	require.ErrorIs(t, err, types.ErrAuctionExists)
}

func TestSetAuctionDurationBounds(t *testing.T) {
	s := setupTestSuite(t)
	seller := testutil.AccAddress(t)
	tokenID := s.ownedToken(seller)

	_, err := s.server.SetAuction(s.Context(), &types.MsgSetAuction{
		Seller:        seller,
		TokenID:       tokenID,
		EndTime:       s.Now().Add(time.Minute),
		StartingPrice: testutil.Coin(t, 2000),
	})
	require.ErrorIs(t, err, types.ErrInvalidTiming, "too short")

	_, err = s.server.SetAuction(s.Context(), &types.MsgSetAuction{
		Seller:        seller,
		TokenID:       tokenID,
		EndTime:       s.Now().Add(200 * 24 * time.Hour),
		StartingPrice: testutil.Coin(t, 2000),
	})
	require.ErrorIs(t, err, types.ErrInvalidTiming, "too long")
}

func TestAuctionBidding(t *testing.T) {
	s := setupTestSuite(t)
	seller := testutil.AccAddress(t)
	first := testutil.AccAddress(t)
	second := testutil.AccAddress(t)

	tokenID := s.openAuction(seller, 2000, nil)

	// below starting price
	_, err := s.auctionBid(first, tokenID, 1999)
	require.ErrorIs(t, err, types.ErrBidTooLow)

	_, err = s.auctionBid(first, tokenID, 2000)
	require.NoError(t, err)

	// next bid must clear the increment
	_, err = s.auctionBid(second, tokenID, 2500)
	require.ErrorIs(t, err, types.ErrBidTooLow)

	_, err = s.auctionBid(second, tokenID, 3000)
	require.NoError(t, err)

	// outbid refunds the previous highest bidder in full
	assert.Equal(t, testutil.Coin(t, 2000+1999), s.Bank().Balance(first, "ugal"))
	assert.Equal(t, testutil.Coin(t, 3000), s.Bank().ModuleBalance(types.ModuleName, "ugal"))

	auction, found := s.Keeper().GetAuction(s.Context(), tokenID)
	require.True(t, found)
	require.NotNil(t, auction.HighestBid)
	assert.Equal(t, second, auction.HighestBid.Bidder)
}

func TestAuctionSellerCannotBid(t *testing.T) {
	s := setupTestSuite(t)
	seller := testutil.AccAddress(t)
	tokenID := s.openAuction(seller, 2000, nil)

	_, err := s.auctionBid(seller, tokenID, 2000)
	require.ErrorIs(t, err, types.ErrSameAccount)
}

func TestAuctionAntiSnipe(t *testing.T) {
	s := setupTestSuite(t)
	seller := testutil.AccAddress(t)
	bidder := testutil.AccAddress(t)

	tokenID := s.openAuction(seller, 2000, nil)
	auction, _ := s.Keeper().GetAuction(s.Context(), tokenID)
	originalEnd := auction.EndTime

	// an early bid leaves the end time alone
	res, err := s.auctionBid(bidder, tokenID, 2000)
	require.NoError(t, err)
	assert.True(t, res.EndTime.Equal(originalEnd))

	// a bid inside the buffer pushes the end out to now+buffer
	s.AdvanceBlock(2*time.Hour - time.Minute)
	res, err = s.auctionBid(testutil.AccAddress(t), tokenID, 3000)
	require.NoError(t, err)

	wantEnd := s.Now().Add(types.DefaultBufferDuration)
	assert.True(t, res.EndTime.Equal(wantEnd), "end extended to %s, got %s", wantEnd, res.EndTime)
	assert.True(t, res.EndTime.After(originalEnd), "extension is monotonic")
}

func TestAuctionBidAfterEnd(t *testing.T) {
	s := setupTestSuite(t)
	seller := testutil.AccAddress(t)
	tokenID := s.openAuction(seller, 2000, nil)

	s.AdvanceBlock(2 * time.Hour)
	_, err := s.auctionBid(testutil.AccAddress(t), tokenID, 2000)
	require.ErrorIs(t, err, types.ErrInvalidAuctionState)
}

func TestFinalizeAuction(t *testing.T) {
	s := setupTestSuite(t)
	seller := testutil.AccAddress(t)
	bidder := testutil.AccAddress(t)
	reserve := int64(5000)

	tokenID := s.openAuction(seller, 2000, &reserve)

	_, err := s.auctionBid(bidder, tokenID, 6000)
	require.NoError(t, err)

	// cannot finalize a running auction
	_, err = s.server.FinalizeAuction(s.Context(), &types.MsgFinalizeAuction{
		Sender:  testutil.AccAddress(t),
		TokenID: tokenID,
	})
	require.ErrorIs(t, err, types.ErrInvalidAuctionState)

	s.AdvanceBlock(2 * time.Hour)

	// finalization is permissionless once ended with the reserve met
	_, err = s.server.FinalizeAuction(s.Context(), &types.MsgFinalizeAuction{
		Sender:  testutil.AccAddress(t),
		TokenID: tokenID,
	})
	require.NoError(t, err)

	owner, err := s.Registry().OwnerOf(s.Context(), tokenID)
	require.NoError(t, err)
	assert.Equal(t, bidder, owner)
	assert.Equal(t, testutil.Coin(t, 6000), s.Bank().Balance(seller, "ugal"))

	_, found := s.Keeper().GetAuction(s.Context(), tokenID)
	assert.False(t, found)
}

func TestFinalizeAuctionReserveNotMet(t *testing.T) {
	s := setupTestSuite(t)
	seller := testutil.AccAddress(t)
	reserve := int64(9000)

	tokenID := s.openAuction(seller, 2000, &reserve)
	_, err := s.auctionBid(testutil.AccAddress(t), tokenID, 2000)
	require.NoError(t, err)

	s.AdvanceBlock(2 * time.Hour)

	_, err = s.server.FinalizeAuction(s.Context(), &types.MsgFinalizeAuction{
		Sender:  testutil.AccAddress(t),
		TokenID: tokenID,
	})
	require.ErrorIs(t, err, types.ErrReserveNotMet)
}

func TestCloseAuctionAcceptBid(t *testing.T) {
	s := setupTestSuite(t)
	seller := testutil.AccAddress(t)
	bidder := testutil.AccAddress(t)
	reserve := int64(9000)

	tokenID := s.openAuction(seller, 2000, &reserve)
	_, err := s.auctionBid(bidder, tokenID, 3000)
	require.NoError(t, err)

	s.AdvanceBlock(2 * time.Hour)

	// during the grace window the seller may take the under-reserve bid
	_, err = s.server.CloseAuction(s.Context(), &types.MsgCloseAuction{
		Seller:           seller,
		TokenID:          tokenID,
		AcceptHighestBid: true,
	})
	require.NoError(t, err)

	owner, err := s.Registry().OwnerOf(s.Context(), tokenID)
	require.NoError(t, err)
	assert.Equal(t, bidder, owner)
	assert.Equal(t, testutil.Coin(t, 3000), s.Bank().Balance(seller, "ugal"))
}

func TestCloseAuctionRejectBid(t *testing.T) {
	s := setupTestSuite(t)
	seller := testutil.AccAddress(t)
	bidder := testutil.AccAddress(t)
	reserve := int64(9000)

	tokenID := s.openAuction(seller, 2000, &reserve)
	_, err := s.auctionBid(bidder, tokenID, 3000)
	require.NoError(t, err)

	_, err = s.server.CloseAuction(s.Context(), &types.MsgCloseAuction{
		Seller:  seller,
		TokenID: tokenID,
	})
	require.NoError(t, err)

	// bid refunded, asset back with the seller
	assert.Equal(t, testutil.Coin(t, 3000), s.Bank().Balance(bidder, "ugal"))
	owner, err := s.Registry().OwnerOf(s.Context(), tokenID)
	require.NoError(t, err)
	assert.Equal(t, seller, owner)
}

func TestCloseAuctionReserveMet(t *testing.T) {
	s := setupTestSuite(t)
	seller := testutil.AccAddress(t)
	reserve := int64(5000)

	tokenID := s.openAuction(seller, 2000, &reserve)
	_, err := s.auctionBid(testutil.AccAddress(t), tokenID, 5000)
	require.NoError(t, err)

	_, err = s.server.CloseAuction(s.Context(), &types.MsgCloseAuction{
		Seller:  seller,
		TokenID: tokenID,
	})
	require.ErrorIs(t, err, types.ErrReserveMet)
}

func TestVoidAuction(t *testing.T) {
	s := setupTestSuite(t)
	seller := testutil.AccAddress(t)
	bidder := testutil.AccAddress(t)
	reserve := int64(9000)

	tokenID := s.openAuction(seller, 2000, &reserve)
	_, err := s.auctionBid(bidder, tokenID, 3000)
	require.NoError(t, err)

	// not voidable until the grace window lapses
	_, err = s.server.VoidAuction(s.Context(), &types.MsgVoidAuction{Bidder: bidder, TokenID: tokenID})
	require.ErrorIs(t, err, types.ErrInvalidAuctionState)

	s.AdvanceBlock(2*time.Hour + types.DefaultClosedDuration)

	// only the highest bidder may void
	_, err = s.server.VoidAuction(s.Context(), &types.MsgVoidAuction{Bidder: testutil.AccAddress(t), TokenID: tokenID})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = s.server.VoidAuction(s.Context(), &types.MsgVoidAuction{Bidder: bidder, TokenID: tokenID})
	require.NoError(t, err)

	assert.Equal(t, testutil.Coin(t, 3000), s.Bank().Balance(bidder, "ugal"))
	owner, err := s.Registry().OwnerOf(s.Context(), tokenID)
	require.NoError(t, err)
	assert.Equal(t, seller, owner)
}

func TestCloseAuctionExpiredWithBid(t *testing.T) {
	s := setupTestSuite(t)
	seller := testutil.AccAddress(t)
	bidder := testutil.AccAddress(t)
	reserve := int64(9000)

	tokenID := s.openAuction(seller, 2000, &reserve)
	_, err := s.auctionBid(bidder, tokenID, 3000)
	require.NoError(t, err)

	s.AdvanceBlock(2*time.Hour + types.DefaultClosedDuration)

	// while the reserve is unmet the seller may still close after expiry;
	// whoever acts first out of close and void wins
	_, err = s.server.CloseAuction(s.Context(), &types.MsgCloseAuction{
		Seller:           seller,
		TokenID:          tokenID,
		AcceptHighestBid: true,
	})
	require.NoError(t, err)

	owner, err := s.Registry().OwnerOf(s.Context(), tokenID)
	require.NoError(t, err)
	assert.Equal(t, bidder, owner)
	assert.Equal(t, testutil.Coin(t, 3000), s.Bank().Balance(seller, "ugal"))

	_, err = s.server.VoidAuction(s.Context(), &types.MsgVoidAuction{Bidder: bidder, TokenID: tokenID})
	require.ErrorIs(t, err, types.ErrAuctionNotFound)
}
