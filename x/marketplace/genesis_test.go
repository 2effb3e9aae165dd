package marketplace_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galleria-zone/galleria-node/testutil"
	marketplace "github.com/galleria-zone/galleria-node/x/marketplace"
	"github.com/galleria-zone/galleria-node/x/marketplace/keeper"
	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	suite := keeper.SetupTestSuite(t)
	ctx := suite.Context()
	k := suite.Keeper()
	now := suite.Now()

	reserve := testutil.Coin(t, 9000)
	gs := &types.GenesisState{
		Params: types.DefaultParams(),
		Asks: []types.Ask{
			{TokenID: "token-a", Seller: testutil.AccAddress(t), Price: testutil.Coin(t, 5000)},
			{TokenID: "token-b", Seller: testutil.AccAddress(t), Price: testutil.Coin(t, 7000), ExpiresAt: testutil.ExpiryAt(now, 48*time.Hour)},
		},
		Bids: []types.Bid{
			{TokenID: "token-a", Bidder: testutil.AccAddress(t), Price: testutil.Coin(t, 4000)},
		},
		CollectionBids: []types.CollectionBid{
			{Bidder: testutil.AccAddress(t), Units: 2, Price: testutil.Coin(t, 3000)},
		},
		Auctions: types.Auctions{
			{
				TokenID:       "token-c",
				Seller:        testutil.AccAddress(t),
				StartTime:     now,
				EndTime:       now.Add(2 * time.Hour),
				StartingPrice: testutil.Coin(t, 2000),
				ReservePrice:  &reserve,
			},
		},
	}
	require.NoError(t, marketplace.ValidateGenesis(gs))

	// the bid and collection bid escrows must be backed before import
	suite.Bank().Fund(keeper.ModuleAddress, testutil.Coin(t, 4000+2*3000))
	require.NoError(t, marketplace.InitGenesis(ctx, k, gs))

	// restored records are reachable through the usual lookups
	_, found := k.GetAsk(ctx, "token-a")
	assert.True(t, found)
	_, found = k.GetAuction(ctx, "token-c")
	assert.True(t, found)
	bid, found := k.HighestBid(ctx, "token-a", now)
	require.True(t, found)
	assert.Equal(t, gs.Bids[0].Bidder, bid.Bidder)

	out := marketplace.ExportGenesis(ctx, k)
	assert.Equal(t, gs.Params, out.Params)
	assert.ElementsMatch(t, gs.Asks, out.Asks)
	assert.ElementsMatch(t, gs.Bids, out.Bids)
	assert.ElementsMatch(t, gs.CollectionBids, out.CollectionBids)
	assert.ElementsMatch(t, []types.Auction(gs.Auctions), []types.Auction(out.Auctions))
}

func TestInitGenesisUnbackedEscrow(t *testing.T) {
	suite := keeper.SetupTestSuite(t)
	ctx := suite.Context()
	k := suite.Keeper()

	gs := &types.GenesisState{
		Params: types.DefaultParams(),
		Bids: []types.Bid{
			{TokenID: "token-a", Bidder: testutil.AccAddress(t), Price: testutil.Coin(t, 4000)},
		},
	}
	require.NoError(t, marketplace.ValidateGenesis(gs))

	// an imported bid without funds behind it is refused
	require.Error(t, marketplace.InitGenesis(ctx, k, gs))

	suite.Bank().Fund(keeper.ModuleAddress, testutil.Coin(t, 4000))
	require.NoError(t, marketplace.InitGenesis(ctx, k, gs))
}

func TestInitGenesisInvalidParams(t *testing.T) {
	suite := keeper.SetupTestSuite(t)

	gs := types.DefaultGenesisState()
	gs.Params.BufferDuration = 0

	require.Error(t, marketplace.InitGenesis(suite.Context(), suite.Keeper(), gs))
}
