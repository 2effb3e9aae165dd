package keeper

import (
	"time"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

// MatchResult carries the matching decision for a newly placed order. Ask
// and Bid are set only when Outcome is a match.
type MatchResult struct {
	Outcome types.MatchOutcome
	Ask     *types.Ask
	Bid     *types.Bid
}

// MatchForNewBid checks a new bid against the ask book. The bid is neither
// read from nor written to the store; the caller decides whether to persist
// or settle based on the outcome.
func (k Keeper) MatchForNewBid(ctx sdk.Context, params types.Params, bid types.Bid, now time.Time) MatchResult {
	ask, found := k.GetAsk(ctx, bid.TokenID)
	if !found {
		return MatchResult{Outcome: types.MatchOutcomeNoAsk}
	}

	if types.IsExpired(ask, now) {
		return MatchResult{Outcome: types.MatchOutcomeAskExpired}
	}

	if !ask.ReservedFor.Empty() && !ask.ReservedFor.Equals(bid.Bidder) {
		return MatchResult{Outcome: types.MatchOutcomeTokenReserved}
	}

	if outcome := matchPrice(params.MatchPolicy, ask.Price, bid.Price); !outcome.Matched() {
		return MatchResult{Outcome: outcome}
	}

	return MatchResult{Outcome: types.MatchOutcomeMatch, Ask: &ask, Bid: &bid}
}

// MatchForNewAsk checks a new ask against the standing bids on its token.
// A reserved ask only ever fills against the reserved bidder's bid; otherwise
// the crossing policy takes the highest live bid and the exact policy looks
// for a bid at exactly the ask price.
func (k Keeper) MatchForNewAsk(ctx sdk.Context, params types.Params, ask types.Ask, now time.Time) MatchResult {
	var (
		bid   types.Bid
		found bool
	)

	switch {
	case !ask.ReservedFor.Empty():
		bid, found = k.GetBid(ctx, ask.TokenID, ask.ReservedFor)
		if found && types.IsExpired(bid, now) {
			found = false
		}
	case params.MatchPolicy == types.MatchPolicyCrossing:
		bid, found = k.HighestBid(ctx, ask.TokenID, now)
	default:
		bid, found = k.bidAtPrice(ctx, ask.TokenID, ask.Price, now)
	}

	if !found {
		return MatchResult{Outcome: types.MatchOutcomeNoBid}
	}

	if outcome := matchPrice(params.MatchPolicy, ask.Price, bid.Price); !outcome.Matched() {
		return MatchResult{Outcome: outcome}
	}

	return MatchResult{Outcome: types.MatchOutcomeMatch, Ask: &ask, Bid: &bid}
}

// bidAtPrice returns the first live bid sitting at exactly price, in index
// order within the price level.
func (k Keeper) bidAtPrice(ctx sdk.Context, tokenID string, price sdk.Coin, now time.Time) (types.Bid, bool) {
	store := ctx.KVStore(k.skey)
	iter := storetypes.KVStorePrefixIterator(store, bidAssetPriceLevelPrefix(tokenID, price.Amount))
	defer func() {
		_ = iter.Close()
	}()

	for ; iter.Valid(); iter.Next() {
		bid := k.decodeBid(store.Get(iter.Value()))
		if types.IsExpired(bid, now) || bid.Price.Denom != price.Denom {
			continue
		}
		return bid, true
	}

	return types.Bid{}, false
}

func matchPrice(policy types.MatchPolicy, askPrice, bidPrice sdk.Coin) types.MatchOutcome {
	switch policy {
	case types.MatchPolicyCrossing:
		if bidPrice.IsGTE(askPrice) {
			return types.MatchOutcomeMatch
		}
		return types.MatchOutcomeBidTooLow
	default:
		if bidPrice.Denom == askPrice.Denom && bidPrice.Amount.Equal(askPrice.Amount) {
			return types.MatchOutcomeMatch
		}
		return types.MatchOutcomePriceMismatch
	}
}
