package keeper

import (
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

// GetAuction returns the auction listed for a token, if any
func (k Keeper) GetAuction(ctx sdk.Context, tokenID string) (types.Auction, bool) {
	store := ctx.KVStore(k.skey)
	bz := store.Get(auctionKey(tokenID))
	if bz == nil {
		return types.Auction{}, false
	}

	return k.decodeAuction(bz), true
}

// decodeAuction restores the nils amino loses for an auction's optional
// fields. A zero reserve or a bid with no bidder cannot be stored, so both
// read back as "not set".
func (k Keeper) decodeAuction(bz []byte) types.Auction {
	var a types.Auction
	k.cdc.MustUnmarshal(bz, &a)
	if a.ReservePrice != nil && a.ReservePrice.Denom == "" {
		a.ReservePrice = nil
	}
	if a.HighestBid != nil && a.HighestBid.Bidder.Empty() {
		a.HighestBid = nil
	}
	return a
}

// SaveAuction writes an auction and its index rows, replacing any previous
// record for the same token. Index rows for the highest bid come and go with
// the bid itself.
func (k Keeper) SaveAuction(ctx sdk.Context, a types.Auction) {
	if prev, found := k.GetAuction(ctx, a.TokenID); found {
		k.deleteIndexRows(ctx, auctionIndexKeys(prev))
	}

	key := auctionKey(a.TokenID)
	ctx.KVStore(k.skey).Set(key, k.cdc.MustMarshal(&a))
	k.setIndexRows(ctx, key, auctionIndexKeys(a))
}

// RemoveAuction deletes an auction and its index rows
func (k Keeper) RemoveAuction(ctx sdk.Context, tokenID string) error {
	a, found := k.GetAuction(ctx, tokenID)
	if !found {
		return types.ErrAuctionNotFound
	}

	ctx.KVStore(k.skey).Delete(auctionKey(tokenID))
	k.deleteIndexRows(ctx, auctionIndexKeys(a))

	return nil
}

// WithAuctions iterates all auctions
func (k Keeper) WithAuctions(ctx sdk.Context, fn func(types.Auction) bool) {
	store := ctx.KVStore(k.skey)
	iter := storetypes.KVStorePrefixIterator(store, types.AuctionPrefix)
	defer func() {
		_ = iter.Close()
	}()
	for ; iter.Valid(); iter.Next() {
		if stop := fn(k.decodeAuction(iter.Value())); stop {
			break
		}
	}
}
