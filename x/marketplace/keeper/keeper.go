package keeper

import (
	"time"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

// ModuleAddress is the escrow and custody account of the marketplace.
var ModuleAddress = authtypes.NewModuleAddress(types.ModuleName)

// Keeper of the marketplace store
type Keeper struct {
	cdc      *codec.LegacyAmino
	skey     storetypes.StoreKey
	bank     BankKeeper
	registry AssetRegistry
}

// NewKeeper creates and returns an instance of the marketplace keeper
func NewKeeper(cdc *codec.LegacyAmino, skey storetypes.StoreKey, bank BankKeeper, registry AssetRegistry) Keeper {
	return Keeper{
		cdc:      cdc,
		skey:     skey,
		bank:     bank,
		registry: registry,
	}
}

// Codec returns keeper codec
func (k Keeper) Codec() *codec.LegacyAmino {
	return k.cdc
}

// StoreKey returns store key
func (k Keeper) StoreKey() storetypes.StoreKey {
	return k.skey
}

// Registry returns the asset registry the keeper trades against
func (k Keeper) Registry() AssetRegistry {
	return k.registry
}

// NewQuerier returns the keeper's query surface
func (k Keeper) NewQuerier() Querier {
	return Querier{k}
}

// SetParams sets the marketplace parameters.
func (k Keeper) SetParams(ctx sdk.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	store := ctx.KVStore(k.skey)
	store.Set(types.ParamsPrefix, k.cdc.MustMarshal(&p))

	return nil
}

// GetParams returns the current marketplace parameters.
func (k Keeper) GetParams(ctx sdk.Context) (p types.Params) {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.ParamsPrefix)
	if bz == nil {
		return types.DefaultParams()
	}

	k.cdc.MustUnmarshal(bz, &p)
	return p
}

// index rows map back to the primary key so range queries can resolve the
// record with a point get.
func (k Keeper) setIndexRows(ctx sdk.Context, primaryKey []byte, rows [][]byte) {
	store := ctx.KVStore(k.skey)
	for _, row := range rows {
		store.Set(row, primaryKey)
	}
}

func (k Keeper) deleteIndexRows(ctx sdk.Context, rows [][]byte) {
	store := ctx.KVStore(k.skey)
	for _, row := range rows {
		store.Delete(row)
	}
}

// amino decodes an absent optional field as a pointer to its zero value.
// Loads restore the nil so open-ended orders stay open and their index rows
// keep matching on replacement.
func normalizeExpiry(t *time.Time) *time.Time {
	if t != nil && t.IsZero() {
		return nil
	}
	return t
}

func (k Keeper) decodeAsk(bz []byte) types.Ask {
	var ask types.Ask
	k.cdc.MustUnmarshal(bz, &ask)
	ask.ExpiresAt = normalizeExpiry(ask.ExpiresAt)
	return ask
}

func (k Keeper) decodeBid(bz []byte) types.Bid {
	var bid types.Bid
	k.cdc.MustUnmarshal(bz, &bid)
	bid.ExpiresAt = normalizeExpiry(bid.ExpiresAt)
	return bid
}

func (k Keeper) decodeCollectionBid(bz []byte) types.CollectionBid {
	var cb types.CollectionBid
	k.cdc.MustUnmarshal(bz, &cb)
	cb.ExpiresAt = normalizeExpiry(cb.ExpiresAt)
	return cb
}

// GetAsk returns the ask listed for a token, if any
func (k Keeper) GetAsk(ctx sdk.Context, tokenID string) (types.Ask, bool) {
	store := ctx.KVStore(k.skey)
	bz := store.Get(askKey(tokenID))
	if bz == nil {
		return types.Ask{}, false
	}

	return k.decodeAsk(bz), true
}

// SaveAsk writes an ask and its index rows, replacing any previous listing
// for the same token.
func (k Keeper) SaveAsk(ctx sdk.Context, ask types.Ask) {
	if prev, found := k.GetAsk(ctx, ask.TokenID); found {
		k.deleteIndexRows(ctx, askIndexKeys(prev))
	}

	key := askKey(ask.TokenID)
	ctx.KVStore(k.skey).Set(key, k.cdc.MustMarshal(&ask))
	k.setIndexRows(ctx, key, askIndexKeys(ask))
}

// RemoveAsk deletes an ask and its index rows
func (k Keeper) RemoveAsk(ctx sdk.Context, tokenID string) error {
	ask, found := k.GetAsk(ctx, tokenID)
	if !found {
		return types.ErrAskNotFound
	}

	ctx.KVStore(k.skey).Delete(askKey(tokenID))
	k.deleteIndexRows(ctx, askIndexKeys(ask))

	return nil
}

// GetBid returns the bid for (token, bidder), if any
func (k Keeper) GetBid(ctx sdk.Context, tokenID string, bidder sdk.AccAddress) (types.Bid, bool) {
	store := ctx.KVStore(k.skey)
	bz := store.Get(bidKey(tokenID, bidder))
	if bz == nil {
		return types.Bid{}, false
	}

	return k.decodeBid(bz), true
}

// SaveBid writes a bid and its index rows, replacing any previous bid of the
// same bidder on the same token.
func (k Keeper) SaveBid(ctx sdk.Context, bid types.Bid) {
	if prev, found := k.GetBid(ctx, bid.TokenID, bid.Bidder); found {
		k.deleteIndexRows(ctx, bidIndexKeys(prev))
	}

	key := bidKey(bid.TokenID, bid.Bidder)
	ctx.KVStore(k.skey).Set(key, k.cdc.MustMarshal(&bid))
	k.setIndexRows(ctx, key, bidIndexKeys(bid))
}

// RemoveBid deletes a bid and its index rows
func (k Keeper) RemoveBid(ctx sdk.Context, tokenID string, bidder sdk.AccAddress) error {
	bid, found := k.GetBid(ctx, tokenID, bidder)
	if !found {
		return types.ErrBidNotFound
	}

	ctx.KVStore(k.skey).Delete(bidKey(tokenID, bidder))
	k.deleteIndexRows(ctx, bidIndexKeys(bid))

	return nil
}

// HighestBid returns the highest-priced live bid on a token. Expired bids
// are skipped; ties at a price level resolve in index order.
func (k Keeper) HighestBid(ctx sdk.Context, tokenID string, now time.Time) (types.Bid, bool) {
	store := ctx.KVStore(k.skey)
	iter := storetypes.KVStoreReversePrefixIterator(store, bidAssetPriceIndexPrefix(tokenID))
	defer func() {
		_ = iter.Close()
	}()

	for ; iter.Valid(); iter.Next() {
		bid := k.decodeBid(store.Get(iter.Value()))
		if types.IsExpired(bid, now) {
			continue
		}
		return bid, true
	}

	return types.Bid{}, false
}

// GetCollectionBid returns the bidder's collection bid, if any
func (k Keeper) GetCollectionBid(ctx sdk.Context, bidder sdk.AccAddress) (types.CollectionBid, bool) {
	store := ctx.KVStore(k.skey)
	bz := store.Get(collectionBidKey(bidder))
	if bz == nil {
		return types.CollectionBid{}, false
	}

	return k.decodeCollectionBid(bz), true
}

// SaveCollectionBid writes a collection bid and its index rows, replacing
// any previous one from the same bidder.
func (k Keeper) SaveCollectionBid(ctx sdk.Context, cb types.CollectionBid) {
	if prev, found := k.GetCollectionBid(ctx, cb.Bidder); found {
		k.deleteIndexRows(ctx, collectionBidIndexKeys(prev))
	}

	key := collectionBidKey(cb.Bidder)
	ctx.KVStore(k.skey).Set(key, k.cdc.MustMarshal(&cb))
	k.setIndexRows(ctx, key, collectionBidIndexKeys(cb))
}

// RemoveCollectionBid deletes a collection bid and its index rows
func (k Keeper) RemoveCollectionBid(ctx sdk.Context, bidder sdk.AccAddress) error {
	cb, found := k.GetCollectionBid(ctx, bidder)
	if !found {
		return types.ErrCollectionBidNotFound
	}

	ctx.KVStore(k.skey).Delete(collectionBidKey(bidder))
	k.deleteIndexRows(ctx, collectionBidIndexKeys(cb))

	return nil
}

// WithAsks iterates all asks in the book
func (k Keeper) WithAsks(ctx sdk.Context, fn func(types.Ask) bool) {
	store := ctx.KVStore(k.skey)
	iter := storetypes.KVStorePrefixIterator(store, types.AskPrefix)
	defer func() {
		_ = iter.Close()
	}()
	for ; iter.Valid(); iter.Next() {
		if stop := fn(k.decodeAsk(iter.Value())); stop {
			break
		}
	}
}

// WithBids iterates all bids in the book
func (k Keeper) WithBids(ctx sdk.Context, fn func(types.Bid) bool) {
	store := ctx.KVStore(k.skey)
	iter := storetypes.KVStorePrefixIterator(store, types.BidPrefix)
	defer func() {
		_ = iter.Close()
	}()
	for ; iter.Valid(); iter.Next() {
		if stop := fn(k.decodeBid(iter.Value())); stop {
			break
		}
	}
}

// WithCollectionBids iterates all collection bids
func (k Keeper) WithCollectionBids(ctx sdk.Context, fn func(types.CollectionBid) bool) {
	store := ctx.KVStore(k.skey)
	iter := storetypes.KVStorePrefixIterator(store, types.CollectionBidPrefix)
	defer func() {
		_ = iter.Close()
	}()
	for ; iter.Valid(); iter.Next() {
		if stop := fn(k.decodeCollectionBid(iter.Value())); stop {
			break
		}
	}
}
