package types_test

import (
	"math/big"
	"strings"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/galleria-zone/galleria-node/testutil"
	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

func TestMsgSetAskValidateBasic(t *testing.T) {
	msg := types.MsgSetAsk{
		Seller:  testutil.AccAddress(t),
		TokenID: testutil.TokenID(t),
		Price:   testutil.Coin(t, 5000),
	}
	require.NoError(t, msg.ValidateBasic())

	empty := msg
	empty.TokenID = ""
	require.Error(t, empty.ValidateBasic())

	free := msg
	free.Price = testutil.Coin(t, 0)
	require.ErrorIs(t, free.ValidateBasic(), types.ErrInvalidPrice)

	// amounts that do not fit the 128-bit price index are rejected up front
	huge := msg
	huge.Price = sdk.NewCoin("ugal", sdkmath.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 200)))
	require.ErrorIs(t, huge.ValidateBasic(), types.ErrInvalidPrice)

	long := msg
	long.TokenID = strings.Repeat("a", 256)
	require.ErrorIs(t, long.ValidateBasic(), types.ErrInvalidPrice)
}

func TestMsgSetBidDeposit(t *testing.T) {
	msg := types.MsgSetBid{
		Bidder:  testutil.AccAddress(t),
		TokenID: testutil.TokenID(t),
		Price:   testutil.Coin(t, 5000),
		Deposit: testutil.Coin(t, 5000),
	}
	require.NoError(t, msg.ValidateBasic())

	short := msg
	short.Deposit = testutil.Coin(t, 4999)
	require.ErrorIs(t, short.ValidateBasic(), types.ErrInvalidDeposit)

	over := msg
	over.Deposit = testutil.Coin(t, 5001)
	require.ErrorIs(t, over.ValidateBasic(), types.ErrInvalidDeposit)

	wrongDenom := msg
	wrongDenom.Deposit.Denom = "uother"
	require.ErrorIs(t, wrongDenom.ValidateBasic(), types.ErrInvalidDeposit)
}

func TestMsgSetCollectionBidValidateBasic(t *testing.T) {
	msg := types.MsgSetCollectionBid{
		Bidder:  testutil.AccAddress(t),
		Units:   3,
		Price:   testutil.Coin(t, 2000),
		Deposit: testutil.Coin(t, 6000),
	}
	require.NoError(t, msg.ValidateBasic())

	noUnits := msg
	noUnits.Units = 0
	require.ErrorIs(t, noUnits.ValidateBasic(), types.ErrInvalidUnits)

	// deposit must cover price for every unit
	short := msg
	short.Deposit = testutil.Coin(t, 2000)
	require.ErrorIs(t, short.ValidateBasic(), types.ErrInvalidDeposit)
}

func TestMsgSetAuctionValidateBasic(t *testing.T) {
	start := now
	end := now.Add(24 * time.Hour)
	reserve := testutil.Coin(t, 9000)

	msg := types.MsgSetAuction{
		Seller:        testutil.AccAddress(t),
		TokenID:       testutil.TokenID(t),
		StartTime:     &start,
		EndTime:       end,
		StartingPrice: testutil.Coin(t, 3000),
		ReservePrice:  &reserve,
	}
	require.NoError(t, msg.ValidateBasic())

	lowReserve := msg
	low := testutil.Coin(t, 2999)
	lowReserve.ReservePrice = &low
	require.ErrorIs(t, lowReserve.ValidateBasic(), types.ErrInvalidReserve)

	backwards := msg
	backwards.EndTime = start.Add(-time.Hour)
	require.ErrorIs(t, backwards.ValidateBasic(), types.ErrInvalidTiming)
}

func TestMsgSetAuctionBidDeposit(t *testing.T) {
	msg := types.MsgSetAuctionBid{
		Bidder:  testutil.AccAddress(t),
		TokenID: testutil.TokenID(t),
		Price:   testutil.Coin(t, 7000),
		Deposit: testutil.Coin(t, 7000),
	}
	require.NoError(t, msg.ValidateBasic())

	short := msg
	short.Deposit = testutil.Coin(t, 1)
	require.ErrorIs(t, short.ValidateBasic(), types.ErrInvalidDeposit)
}
