package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

// BankKeeper is the subset of the bank module used for escrow moves and
// payouts through the marketplace module account.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// AssetRegistry is the external asset-ownership registry the marketplace
// trades against. Calls are synchronous, read-only except Transfer, and any
// failure aborts the whole operation.
type AssetRegistry interface {
	// OwnerOf returns the current owner of a token.
	OwnerOf(ctx sdk.Context, tokenID string) (sdk.AccAddress, error)
	// Transfer moves a token between accounts.
	Transfer(ctx sdk.Context, tokenID string, from, to sdk.AccAddress) error
	// RoyaltyInfo returns the collection royalty metadata, nil when the
	// collection pays no royalty.
	RoyaltyInfo(ctx sdk.Context) (*types.RoyaltyInfo, error)
}
