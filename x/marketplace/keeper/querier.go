package keeper

import (
	"time"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

// Querier is the read-only query surface over the marketplace store. Point
// lookups return nil payloads for absent records; range listings walk the
// secondary indexes with exclusive start-after cursors.
type Querier struct {
	Keeper
}

func (q Querier) Params(ctx sdk.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}

func (q Querier) Ask(ctx sdk.Context, req *types.QueryAskRequest) (*types.QueryAskResponse, error) {
	res := &types.QueryAskResponse{}
	if ask, found := q.GetAsk(ctx, req.TokenID); found {
		res.Ask = &ask
	}
	return res, nil
}

func (q Querier) Bid(ctx sdk.Context, req *types.QueryBidRequest) (*types.QueryBidResponse, error) {
	res := &types.QueryBidResponse{}
	if bid, found := q.GetBid(ctx, req.TokenID, req.Bidder); found {
		res.Bid = &bid
	}
	return res, nil
}

func (q Querier) CollectionBid(ctx sdk.Context, req *types.QueryCollectionBidRequest) (*types.QueryCollectionBidResponse, error) {
	res := &types.QueryCollectionBidResponse{}
	if cb, found := q.GetCollectionBid(ctx, req.Bidder); found {
		res.CollectionBid = &cb
	}
	return res, nil
}

func (q Querier) Auction(ctx sdk.Context, req *types.QueryAuctionRequest) (*types.QueryAuctionResponse, error) {
	res := &types.QueryAuctionResponse{}
	if a, found := q.GetAuction(ctx, req.TokenID); found {
		res.Auction = &a
	}
	return res, nil
}

func (q Querier) AsksByPrice(ctx sdk.Context, req *types.QueryAsksByPriceRequest) (*types.QueryAsksResponse, error) {
	var cursor []byte
	if req.StartAfter != nil {
		cursor = askPriceIndexKey(req.StartAfter.Amount, req.StartAfter.Key)
	}

	res := &types.QueryAsksResponse{}
	q.scanIndex(ctx, types.AskPriceIndexPrefix, cursor, req.Pagination, q.collectAsks(ctx, &res.Asks, req.Pagination.ExpiryFloor))
	return res, nil
}

func (q Querier) AsksByExpiry(ctx sdk.Context, req *types.QueryAsksByExpiryRequest) (*types.QueryAsksResponse, error) {
	var cursor []byte
	if req.StartAfter != nil {
		cursor = askExpiryIndexKey(req.StartAfter.At, req.StartAfter.Key)
	}

	res := &types.QueryAsksResponse{}
	q.scanIndex(ctx, types.AskExpiryIndexPrefix, cursor, req.Pagination, q.collectAsks(ctx, &res.Asks, req.Pagination.ExpiryFloor))
	return res, nil
}

func (q Querier) AsksBySeller(ctx sdk.Context, req *types.QueryAsksBySellerRequest) (*types.QueryAsksResponse, error) {
	var cursor []byte
	if req.StartAfter != nil {
		cursor = askSellerIndexKey(req.Seller, req.StartAfter.At, req.StartAfter.Key)
	}

	res := &types.QueryAsksResponse{}
	q.scanIndex(ctx, askSellerIndexPrefix(req.Seller), cursor, req.Pagination, q.collectAsks(ctx, &res.Asks, req.Pagination.ExpiryFloor))
	return res, nil
}

func (q Querier) BidsByAsset(ctx sdk.Context, req *types.QueryBidsByAssetRequest) (*types.QueryBidsResponse, error) {
	var cursor []byte
	if req.StartAfter != nil {
		bidder, err := sdk.AccAddressFromBech32(req.StartAfter.Key)
		if err != nil {
			return nil, err
		}
		cursor = bidAssetPriceIndexKey(req.TokenID, req.StartAfter.Amount, bidder)
	}

	res := &types.QueryBidsResponse{}
	q.scanIndex(ctx, bidAssetPriceIndexPrefix(req.TokenID), cursor, req.Pagination, q.collectBids(ctx, &res.Bids, req.Pagination.ExpiryFloor))
	return res, nil
}

func (q Querier) BidsByExpiry(ctx sdk.Context, req *types.QueryBidsByExpiryRequest) (*types.QueryBidsResponse, error) {
	var cursor []byte
	if req.StartAfter != nil {
		cursor = bidExpiryIndexKey(req.StartAfter.At, req.StartAfter.TokenID, req.StartAfter.Bidder)
	}

	res := &types.QueryBidsResponse{}
	q.scanIndex(ctx, types.BidExpiryIndexPrefix, cursor, req.Pagination, q.collectBids(ctx, &res.Bids, req.Pagination.ExpiryFloor))
	return res, nil
}

func (q Querier) BidsByBidder(ctx sdk.Context, req *types.QueryBidsByBidderRequest) (*types.QueryBidsResponse, error) {
	var cursor []byte
	if req.StartAfter != nil {
		cursor = bidBidderIndexKey(req.Bidder, req.StartAfter.At, req.StartAfter.Key)
	}

	res := &types.QueryBidsResponse{}
	q.scanIndex(ctx, bidBidderIndexPrefix(req.Bidder), cursor, req.Pagination, q.collectBids(ctx, &res.Bids, req.Pagination.ExpiryFloor))
	return res, nil
}

func (q Querier) CollectionBidsByPrice(ctx sdk.Context, req *types.QueryCollectionBidsByPriceRequest) (*types.QueryCollectionBidsResponse, error) {
	var cursor []byte
	if req.StartAfter != nil {
		bidder, err := sdk.AccAddressFromBech32(req.StartAfter.Key)
		if err != nil {
			return nil, err
		}
		cursor = collectionBidPriceIndexKey(req.StartAfter.Amount, bidder)
	}

	res := &types.QueryCollectionBidsResponse{}
	q.scanIndex(ctx, types.CollectionBidPriceIndexPrefix, cursor, req.Pagination, q.collectCollectionBids(ctx, &res.CollectionBids, req.Pagination.ExpiryFloor))
	return res, nil
}

func (q Querier) CollectionBidsByExpiry(ctx sdk.Context, req *types.QueryCollectionBidsByExpiryRequest) (*types.QueryCollectionBidsResponse, error) {
	var cursor []byte
	if req.StartAfter != nil {
		bidder, err := sdk.AccAddressFromBech32(req.StartAfter.Key)
		if err != nil {
			return nil, err
		}
		cursor = collectionBidExpiryIndexKey(req.StartAfter.At, bidder)
	}

	res := &types.QueryCollectionBidsResponse{}
	q.scanIndex(ctx, types.CollectionBidExpiryIndexPrefix, cursor, req.Pagination, q.collectCollectionBids(ctx, &res.CollectionBids, req.Pagination.ExpiryFloor))
	return res, nil
}

func (q Querier) AuctionsByEndTime(ctx sdk.Context, req *types.QueryAuctionsByEndTimeRequest) (*types.QueryAuctionsResponse, error) {
	var cursor []byte
	if req.StartAfter != nil && req.StartAfter.At != nil {
		cursor = auctionEndIndexKey(*req.StartAfter.At, req.StartAfter.Key)
	}

	res := &types.QueryAuctionsResponse{}
	q.scanIndex(ctx, types.AuctionEndIndexPrefix, cursor, req.Pagination, q.collectAuctions(ctx, &res.Auctions, req.Pagination.ExpiryFloor))
	return res, nil
}

func (q Querier) AuctionsByPrice(ctx sdk.Context, req *types.QueryAuctionsByPriceRequest) (*types.QueryAuctionsResponse, error) {
	var cursor []byte
	if req.StartAfter != nil {
		cursor = auctionPriceIndexKey(req.StartAfter.Amount, req.StartAfter.Key)
	}

	res := &types.QueryAuctionsResponse{}
	q.scanIndex(ctx, types.AuctionPriceIndexPrefix, cursor, req.Pagination, q.collectAuctions(ctx, &res.Auctions, req.Pagination.ExpiryFloor))
	return res, nil
}

func (q Querier) AuctionsBySeller(ctx sdk.Context, req *types.QueryAuctionsBySellerRequest) (*types.QueryAuctionsResponse, error) {
	var cursor []byte
	if req.StartAfter != "" {
		cursor = auctionSellerIndexKey(req.Seller, req.StartAfter)
	}

	res := &types.QueryAuctionsResponse{}
	q.scanIndex(ctx, auctionSellerIndexPrefix(req.Seller), cursor, req.Pagination, q.collectAuctions(ctx, &res.Auctions, req.Pagination.ExpiryFloor))
	return res, nil
}

func (q Querier) AuctionsByBidder(ctx sdk.Context, req *types.QueryAuctionsByBidderRequest) (*types.QueryAuctionsResponse, error) {
	var cursor []byte
	if req.StartAfter != "" {
		cursor = auctionBidderIndexKey(req.Bidder, req.StartAfter)
	}

	res := &types.QueryAuctionsResponse{}
	q.scanIndex(ctx, auctionBidderIndexPrefix(req.Bidder), cursor, req.Pagination, q.collectAuctions(ctx, &res.Auctions, req.Pagination.ExpiryFloor))
	return res, nil
}

// scanBudgetFactor bounds rows visited per call at a multiple of the page
// limit, so a floor filter cannot force a walk of the whole index.
const scanBudgetFactor = 10

// scanIndex walks one secondary index. startAfter is the full index key of
// the last record of the previous page and is excluded from the scan. visit
// reports whether the row was kept; skipped rows do not consume the limit
// but do count against the scan budget.
func (q Querier) scanIndex(ctx sdk.Context, prefix, startAfter []byte, opts types.PageOptions, visit func(primaryKey []byte) bool) {
	store := ctx.KVStore(q.skey)
	begin := prefix
	end := storetypes.PrefixEndBytes(prefix)

	var iter storetypes.Iterator
	if opts.Descending {
		if startAfter != nil {
			end = startAfter
		}
		iter = store.ReverseIterator(begin, end)
	} else {
		if startAfter != nil {
			begin = append(append([]byte{}, startAfter...), 0x00)
		}
		iter = store.Iterator(begin, end)
	}
	defer func() {
		_ = iter.Close()
	}()

	limit := opts.EffectiveLimit()
	budget := limit * scanBudgetFactor
	var kept, seen uint32
	for ; iter.Valid() && kept < limit && seen < budget; iter.Next() {
		seen++
		if visit(iter.Value()) {
			kept++
		}
	}
}

func (q Querier) collectAsks(ctx sdk.Context, out *[]types.Ask, floor *time.Time) func([]byte) bool {
	store := ctx.KVStore(q.skey)
	return func(pk []byte) bool {
		a := q.decodeAsk(store.Get(pk))
		if belowFloor(a, floor) {
			return false
		}
		*out = append(*out, a)
		return true
	}
}

func (q Querier) collectBids(ctx sdk.Context, out *[]types.Bid, floor *time.Time) func([]byte) bool {
	store := ctx.KVStore(q.skey)
	return func(pk []byte) bool {
		b := q.decodeBid(store.Get(pk))
		if belowFloor(b, floor) {
			return false
		}
		*out = append(*out, b)
		return true
	}
}

func (q Querier) collectCollectionBids(ctx sdk.Context, out *[]types.CollectionBid, floor *time.Time) func([]byte) bool {
	store := ctx.KVStore(q.skey)
	return func(pk []byte) bool {
		cb := q.decodeCollectionBid(store.Get(pk))
		if belowFloor(cb, floor) {
			return false
		}
		*out = append(*out, cb)
		return true
	}
}

// collectAuctions applies the floor to the auction end time: an auction
// ending at or before the floor is filtered out.
func (q Querier) collectAuctions(ctx sdk.Context, out *types.Auctions, floor *time.Time) func([]byte) bool {
	store := ctx.KVStore(q.skey)
	return func(pk []byte) bool {
		a := q.decodeAuction(store.Get(pk))
		if floor != nil && !a.EndTime.After(*floor) {
			return false
		}
		*out = append(*out, a)
		return true
	}
}

// belowFloor reports whether an order expires at or before the floor.
// Orders without expiry always pass.
func belowFloor(e types.Expirable, floor *time.Time) bool {
	if floor == nil {
		return false
	}
	t := e.Expiry()
	return t != nil && !t.After(*floor)
}
