package marketplace

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/galleria-zone/galleria-node/x/marketplace/keeper"
	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

// ValidateGenesis does validation check of the Genesis
func ValidateGenesis(data *types.GenesisState) error {
	return data.Validate()
}

// DefaultGenesisState returns default genesis state as raw bytes for the
// marketplace module.
func DefaultGenesisState() *types.GenesisState {
	return types.DefaultGenesisState()
}

// InitGenesis initiate genesis state and return updated validator details
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data *types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return err
	}

	// every imported order with locked funds must already be backed by the
	// module account balance
	required := sdk.NewCoins()
	for _, bid := range data.Bids {
		required = required.Add(bid.Price)
	}
	for _, cb := range data.CollectionBids {
		required = required.Add(cb.TotalEscrow())
	}
	for _, a := range data.Auctions {
		if a.HighestBid != nil {
			required = required.Add(a.HighestBid.Price)
		}
	}
	for _, c := range required {
		if held := k.EscrowBalance(ctx, c.Denom); held.IsLT(c) {
			return fmt.Errorf("escrow shortfall: module holds %s, book requires %s", held, c)
		}
	}

	for _, ask := range data.Asks {
		k.SaveAsk(ctx, ask)
	}
	for _, bid := range data.Bids {
		k.SaveBid(ctx, bid)
	}
	for _, cb := range data.CollectionBids {
		k.SaveCollectionBid(ctx, cb)
	}
	for _, a := range data.Auctions {
		k.SaveAuction(ctx, a)
	}

	return nil
}

// ExportGenesis returns genesis state for the marketplace module
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	gs := &types.GenesisState{
		Params: k.GetParams(ctx),
	}

	k.WithAsks(ctx, func(ask types.Ask) bool {
		gs.Asks = append(gs.Asks, ask)
		return false
	})
	k.WithBids(ctx, func(bid types.Bid) bool {
		gs.Bids = append(gs.Bids, bid)
		return false
	})
	k.WithCollectionBids(ctx, func(cb types.CollectionBid) bool {
		gs.CollectionBids = append(gs.CollectionBids, cb)
		return false
	})
	k.WithAuctions(ctx, func(a types.Auction) bool {
		gs.Auctions = append(gs.Auctions, a)
		return false
	})

	return gs
}
