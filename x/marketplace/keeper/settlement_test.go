package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galleria-zone/galleria-node/testutil"
	"github.com/galleria-zone/galleria-node/x/marketplace/keeper"
	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

type settlementFixture struct {
	suite        *keeper.TestSuite
	params       types.Params
	seller       sdk.AccAddress
	buyer        sdk.AccAddress
	feeCollector sdk.AccAddress
	royaltyAddr  sdk.AccAddress
	ask          types.Ask
}

func setupSettlement(t *testing.T) settlementFixture {
	t.Helper()

	suite := keeper.SetupTestSuite(t)

	f := settlementFixture{
		suite:        suite,
		seller:       testutil.AccAddress(t),
		buyer:        testutil.AccAddress(t),
		feeCollector: testutil.AccAddress(t),
		royaltyAddr:  testutil.AccAddress(t),
	}

	f.params = types.DefaultParams()
	f.params.FeeCollector = f.feeCollector

	f.ask = types.Ask{
		TokenID: testutil.TokenID(t),
		Seller:  f.seller,
		Price:   testutil.Coin(t, 10000),
	}

	// token in module custody, as after listing
	suite.Registry().SetOwner(f.ask.TokenID, keeper.ModuleAddress)
	suite.Registry().SetRoyalty(&types.RoyaltyInfo{
		Recipient: f.royaltyAddr,
		Share:     math.LegacyNewDecWithPrec(10, 2),
	})

	return f
}

func TestSettleSplit(t *testing.T) {
	f := setupSettlement(t)
	ctx := f.suite.Context()
	k := f.suite.Keeper()

	// buyer escrow already locked, as at bid placement
	f.suite.Bank().Fund(f.buyer, testutil.Coin(t, 10000))
	require.NoError(t, k.EscrowLock(ctx, f.buyer, testutil.Coin(t, 10000)))

	payout, err := k.Settle(ctx, f.params, testutil.Coin(t, 10000), f.ask, f.buyer, keeper.ModuleAddress)
	require.NoError(t, err)

	// 2% fee and 10% royalty on the full price, seller keeps the rest
	assert.Equal(t, testutil.Coin(t, 0), payout.Surplus)
	assert.Equal(t, testutil.Coin(t, 200), payout.Fee)
	assert.Equal(t, testutil.Coin(t, 1000), payout.Royalty)
	assert.Equal(t, testutil.Coin(t, 8800), payout.Proceeds)

	bank := f.suite.Bank()
	assert.Equal(t, testutil.Coin(t, 200), bank.Balance(f.feeCollector, "ugal"))
	assert.Equal(t, testutil.Coin(t, 1000), bank.Balance(f.royaltyAddr, "ugal"))
	assert.Equal(t, testutil.Coin(t, 8800), bank.Balance(f.seller, "ugal"))
	assert.Equal(t, testutil.Coin(t, 0), bank.ModuleBalance(types.ModuleName, "ugal"))

	owner, err := f.suite.Registry().OwnerOf(ctx, f.ask.TokenID)
	require.NoError(t, err)
	assert.EqualValues(t, f.buyer, owner)
}

func TestSettleSurplusRefund(t *testing.T) {
	f := setupSettlement(t)
	ctx := f.suite.Context()
	k := f.suite.Keeper()

	f.suite.Bank().Fund(f.buyer, testutil.Coin(t, 12000))
	require.NoError(t, k.EscrowLock(ctx, f.buyer, testutil.Coin(t, 12000)))

	payout, err := k.Settle(ctx, f.params, testutil.Coin(t, 12000), f.ask, f.buyer, keeper.ModuleAddress)
	require.NoError(t, err)

	// excess over the ask price goes back to the buyer before the split
	assert.Equal(t, testutil.Coin(t, 2000), payout.Surplus)
	assert.Equal(t, testutil.Coin(t, 200), payout.Fee)
	assert.Equal(t, testutil.Coin(t, 1000), payout.Royalty)
	assert.Equal(t, testutil.Coin(t, 8800), payout.Proceeds)
	assert.Equal(t, testutil.Coin(t, 2000), f.suite.Bank().Balance(f.buyer, "ugal"))
}

func TestSettleNoFeeCollector(t *testing.T) {
	f := setupSettlement(t)
	ctx := f.suite.Context()
	k := f.suite.Keeper()

	f.params.FeeCollector = nil

	f.suite.Bank().Fund(f.buyer, testutil.Coin(t, 10000))
	require.NoError(t, k.EscrowLock(ctx, f.buyer, testutil.Coin(t, 10000)))

	payout, err := k.Settle(ctx, f.params, testutil.Coin(t, 10000), f.ask, f.buyer, keeper.ModuleAddress)
	require.NoError(t, err)

	assert.Equal(t, testutil.Coin(t, 0), payout.Fee)
	assert.Equal(t, testutil.Coin(t, 9000), payout.Proceeds)
}

func TestSettleNoRoyalty(t *testing.T) {
	f := setupSettlement(t)
	ctx := f.suite.Context()
	k := f.suite.Keeper()

	f.suite.Registry().SetRoyalty(nil)

	f.suite.Bank().Fund(f.buyer, testutil.Coin(t, 10000))
	require.NoError(t, k.EscrowLock(ctx, f.buyer, testutil.Coin(t, 10000)))

	payout, err := k.Settle(ctx, f.params, testutil.Coin(t, 10000), f.ask, f.buyer, keeper.ModuleAddress)
	require.NoError(t, err)

	assert.Equal(t, testutil.Coin(t, 0), payout.Royalty)
	assert.Equal(t, testutil.Coin(t, 9800), payout.Proceeds)
}

func TestSettlePaidBelowPrice(t *testing.T) {
	f := setupSettlement(t)
	ctx := f.suite.Context()
	k := f.suite.Keeper()

	_, err := k.Settle(ctx, f.params, testutil.Coin(t, 9999), f.ask, f.buyer, keeper.ModuleAddress)
	require.ErrorIs(t, err, types.ErrInvalidPrice)
}

func TestSettleRegistryFailureAborts(t *testing.T) {
	f := setupSettlement(t)
	ctx := f.suite.Context()
	k := f.suite.Keeper()

	f.suite.Bank().Fund(f.buyer, testutil.Coin(t, 10000))
	require.NoError(t, k.EscrowLock(ctx, f.buyer, testutil.Coin(t, 10000)))

	f.suite.Registry().FailWith(errors.New("registry offline"))

	_, err := k.Settle(ctx, f.params, testutil.Coin(t, 10000), f.ask, f.buyer, keeper.ModuleAddress)
	require.ErrorIs(t, err, types.ErrAssetRegistry)
}
