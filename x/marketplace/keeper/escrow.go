package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

// EscrowLock moves funds from payer into the module account.
func (k Keeper) EscrowLock(ctx sdk.Context, payer sdk.AccAddress, amt sdk.Coin) error {
	if amt.IsZero() {
		return nil
	}
	if err := k.bank.SendCoinsFromAccountToModule(ctx, payer, types.ModuleName, sdk.NewCoins(amt)); err != nil {
		return errors.Wrapf(err, "escrow lock %s from %s", amt, payer)
	}
	return nil
}

// EscrowBalance returns the module account balance of denom.
func (k Keeper) EscrowBalance(ctx sdk.Context, denom string) sdk.Coin {
	return k.bank.GetBalance(ctx, ModuleAddress, denom)
}

// EscrowRelease pays funds out of the module account. Zero amounts are
// skipped so settlement legs can call it unconditionally.
func (k Keeper) EscrowRelease(ctx sdk.Context, to sdk.AccAddress, amt sdk.Coin) error {
	if amt.IsZero() {
		return nil
	}
	if err := k.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, to, sdk.NewCoins(amt)); err != nil {
		return errors.Wrapf(err, "escrow release %s to %s", amt, to)
	}
	return nil
}
