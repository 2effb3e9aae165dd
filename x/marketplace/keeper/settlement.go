package keeper

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

// Payout is the realized split of a completed sale.
type Payout struct {
	Price    sdk.Coin
	Surplus  sdk.Coin
	Fee      sdk.Coin
	Royalty  sdk.Coin
	Proceeds sdk.Coin
}

// Settle pays out a sale and transfers the asset. paid is the amount already
// escrowed against the purchase and must be at or above the ask price; the
// difference is refunded to the buyer before the fee and royalty are carved
// out of the price. assetFrom is the current custodian of the token, either
// the module account for listed assets or the seller directly.
//
// The split, in order: surplus back to the buyer, marketplace fee, royalty,
// remainder to the ask's payout recipient. Fee and royalty are computed on
// the full price and truncated; the remainder absorbs the rounding dust.
func (k Keeper) Settle(ctx sdk.Context, params types.Params, paid sdk.Coin, ask types.Ask, buyer, assetFrom sdk.AccAddress) (Payout, error) {
	if paid.Denom != ask.Price.Denom || paid.Amount.LT(ask.Price.Amount) {
		return Payout{}, types.ErrInvalidPrice.Wrapf("paid %s below ask price %s", paid, ask.Price)
	}

	price := ask.Price
	surplus := paid.Sub(price)

	if err := k.EscrowRelease(ctx, buyer, surplus); err != nil {
		return Payout{}, err
	}

	fee := sdk.NewCoin(price.Denom, sdkmath.ZeroInt())
	if !params.FeeCollector.Empty() {
		fee.Amount = params.FeePercent.MulInt(price.Amount).QuoInt64(100).TruncateInt()
	}
	if err := k.EscrowRelease(ctx, params.FeeCollector, fee); err != nil {
		return Payout{}, err
	}

	royalty := sdk.NewCoin(price.Denom, sdkmath.ZeroInt())
	info, err := k.registry.RoyaltyInfo(ctx)
	if err != nil {
		return Payout{}, types.ErrAssetRegistry.Wrap(err.Error())
	}
	if info != nil {
		royalty.Amount = info.Share.MulInt(price.Amount).TruncateInt()
		if err := k.EscrowRelease(ctx, info.Recipient, royalty); err != nil {
			return Payout{}, err
		}
	}

	proceeds := price.Sub(fee).Sub(royalty)
	if err := k.EscrowRelease(ctx, ask.PayoutRecipient(), proceeds); err != nil {
		return Payout{}, err
	}

	if err := k.registry.Transfer(ctx, ask.TokenID, assetFrom, buyer); err != nil {
		return Payout{}, types.ErrAssetRegistry.Wrap(err.Error())
	}

	ctx.Logger().Info("sale settled",
		"token", ask.TokenID,
		"buyer", buyer,
		"price", price,
		"fee", fee,
		"royalty", royalty,
		"proceeds", proceeds)

	return Payout{
		Price:    price,
		Surplus:  surplus,
		Fee:      fee,
		Royalty:  royalty,
		Proceeds: proceeds,
	}, nil
}

// SaleEvent builds the settlement event for a completed sale.
func SaleEvent(tokenID string, seller, buyer sdk.AccAddress, p Payout) types.EventSaleCompleted {
	return types.EventSaleCompleted{
		TokenID:  tokenID,
		Seller:   seller,
		Buyer:    buyer,
		Price:    p.Price,
		Surplus:  p.Surplus,
		Fee:      p.Fee,
		Royalty:  p.Royalty,
		Proceeds: p.Proceeds,
	}
}
