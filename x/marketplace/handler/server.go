package handler

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/galleria-zone/galleria-node/x/marketplace/keeper"
	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

type msgServer struct {
	keepers Keepers
}

// NewServer returns an implementation of the marketplace MsgServer interface
// for the provided keepers.
func NewServer(k Keepers) types.MsgServer {
	return msgServer{keepers: k}
}

var _ types.MsgServer = msgServer{}

func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	mk := ms.keepers.Marketplace
	params := mk.GetParams(ctx)

	if !params.IsOperator(msg.Sender) {
		return nil, types.ErrUnauthorized.Wrapf("%s is not an operator", msg.Sender)
	}

	if err := mk.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(types.EventParamsUpdated{Sender: msg.Sender}.ToSDKEvent())

	return &types.MsgUpdateParamsResponse{}, nil
}

func (ms msgServer) SetAsk(goCtx context.Context, msg *types.MsgSetAsk) (*types.MsgSetAskResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	mk := ms.keepers.Marketplace
	params := mk.GetParams(ctx)
	now := ctx.BlockTime()

	if err := params.ValidatePrice(msg.Price); err != nil {
		return nil, err
	}
	if err := params.ValidateExpiry(now, msg.ExpiresAt); err != nil {
		return nil, err
	}
	if msg.ReservedFor.Equals(msg.Seller) {
		return nil, types.ErrSameAccount.Wrap("ask reserved for its own seller")
	}
	if _, found := mk.GetAuction(ctx, msg.TokenID); found {
		return nil, types.ErrAuctionExists.Wrapf("token %s is on auction", msg.TokenID)
	}

	prev, relisting := mk.GetAsk(ctx, msg.TokenID)
	if relisting {
		// the asset is already in module custody
		if !prev.Seller.Equals(msg.Seller) {
			return nil, types.ErrUnauthorized.Wrapf("token %s listed by %s", msg.TokenID, prev.Seller)
		}
	} else {
		owner, err := mk.Registry().OwnerOf(ctx, msg.TokenID)
		if err != nil {
			return nil, types.ErrAssetRegistry.Wrap(err.Error())
		}
		if !owner.Equals(msg.Seller) {
			return nil, types.ErrUnauthorized.Wrapf("token %s owned by %s", msg.TokenID, owner)
		}
		if err := mk.Registry().Transfer(ctx, msg.TokenID, msg.Seller, keeper.ModuleAddress); err != nil {
			return nil, types.ErrAssetRegistry.Wrap(err.Error())
		}
	}

	ask := types.Ask{
		TokenID:        msg.TokenID,
		Seller:         msg.Seller,
		Price:          msg.Price,
		FundsRecipient: msg.FundsRecipient,
		ReservedFor:    msg.ReservedFor,
		ExpiresAt:      msg.ExpiresAt,
	}

	ctx.EventManager().EmitEvent(types.EventAskCreated{
		TokenID: ask.TokenID,
		Seller:  ask.Seller,
		Price:   ask.Price,
	}.ToSDKEvent())

	result := mk.MatchForNewAsk(ctx, params, ask, now)
	if !result.Outcome.Matched() {
		mk.SaveAsk(ctx, ask)
		return &types.MsgSetAskResponse{Outcome: result.Outcome}, nil
	}

	// immediate fill against the standing bid: its escrow pays, the new
	// listing never rests on the book
	if err := mk.RemoveBid(ctx, result.Bid.TokenID, result.Bid.Bidder); err != nil {
		return nil, err
	}
	if relisting {
		if err := mk.RemoveAsk(ctx, prev.TokenID); err != nil {
			return nil, err
		}
	}

	payout, err := mk.Settle(ctx, params, result.Bid.Price, ask, result.Bid.Bidder, keeper.ModuleAddress)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(keeper.SaleEvent(ask.TokenID, ask.Seller, result.Bid.Bidder, payout).ToSDKEvent())

	return &types.MsgSetAskResponse{Outcome: result.Outcome}, nil
}

func (ms msgServer) RemoveAsk(goCtx context.Context, msg *types.MsgRemoveAsk) (*types.MsgRemoveAskResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	mk := ms.keepers.Marketplace

	ask, found := mk.GetAsk(ctx, msg.TokenID)
	if !found {
		return nil, types.ErrAskNotFound
	}
	if !ask.Seller.Equals(msg.Seller) {
		return nil, types.ErrUnauthorized.Wrapf("token %s listed by %s", msg.TokenID, ask.Seller)
	}

	if err := mk.RemoveAsk(ctx, msg.TokenID); err != nil {
		return nil, err
	}
	if err := mk.Registry().Transfer(ctx, msg.TokenID, keeper.ModuleAddress, ask.Seller); err != nil {
		return nil, types.ErrAssetRegistry.Wrap(err.Error())
	}

	ctx.EventManager().EmitEvent(types.EventAskRemoved{TokenID: msg.TokenID}.ToSDKEvent())

	return &types.MsgRemoveAskResponse{}, nil
}

func (ms msgServer) AcceptBid(goCtx context.Context, msg *types.MsgAcceptBid) (*types.MsgAcceptBidResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	mk := ms.keepers.Marketplace
	params := mk.GetParams(ctx)
	now := ctx.BlockTime()

	bid, found := mk.GetBid(ctx, msg.TokenID, msg.Bidder)
	if !found {
		return nil, types.ErrBidNotFound
	}
	if types.IsExpired(bid, now) {
		return nil, types.ErrExpired.Wrap("bid expired")
	}
	if bid.Bidder.Equals(msg.Seller) {
		return nil, types.ErrSameAccount
	}

	// the trade settles at the bid price regardless of any listed price
	effective := types.Ask{
		TokenID: msg.TokenID,
		Seller:  msg.Seller,
		Price:   bid.Price,
	}
	assetFrom := msg.Seller

	if ask, listed := mk.GetAsk(ctx, msg.TokenID); listed {
		if !ask.Seller.Equals(msg.Seller) {
			return nil, types.ErrUnauthorized.Wrapf("token %s listed by %s", msg.TokenID, ask.Seller)
		}
		effective.FundsRecipient = ask.FundsRecipient
		assetFrom = keeper.ModuleAddress
		if err := mk.RemoveAsk(ctx, msg.TokenID); err != nil {
			return nil, err
		}
	} else {
		owner, err := mk.Registry().OwnerOf(ctx, msg.TokenID)
		if err != nil {
			return nil, types.ErrAssetRegistry.Wrap(err.Error())
		}
		if !owner.Equals(msg.Seller) {
			return nil, types.ErrUnauthorized.Wrapf("token %s owned by %s", msg.TokenID, owner)
		}
	}

	if err := mk.RemoveBid(ctx, msg.TokenID, msg.Bidder); err != nil {
		return nil, err
	}

	payout, err := mk.Settle(ctx, params, bid.Price, effective, bid.Bidder, assetFrom)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(keeper.SaleEvent(msg.TokenID, msg.Seller, bid.Bidder, payout).ToSDKEvent())

	return &types.MsgAcceptBidResponse{}, nil
}

func (ms msgServer) SetBid(goCtx context.Context, msg *types.MsgSetBid) (*types.MsgSetBidResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	mk := ms.keepers.Marketplace
	params := mk.GetParams(ctx)
	now := ctx.BlockTime()

	if err := params.ValidatePrice(msg.Price); err != nil {
		return nil, err
	}
	if err := params.ValidateExpiry(now, msg.ExpiresAt); err != nil {
		return nil, err
	}
	if ask, found := mk.GetAsk(ctx, msg.TokenID); found && ask.Seller.Equals(msg.Bidder) {
		return nil, types.ErrSameAccount.Wrap("bid on own listing")
	}

	// a replaced bid refunds its escrow before the new deposit locks
	if prev, found := mk.GetBid(ctx, msg.TokenID, msg.Bidder); found {
		if err := mk.EscrowRelease(ctx, prev.Bidder, prev.Price); err != nil {
			return nil, err
		}
	}
	if err := mk.EscrowLock(ctx, msg.Bidder, msg.Deposit); err != nil {
		return nil, err
	}

	bid := types.Bid{
		TokenID:   msg.TokenID,
		Bidder:    msg.Bidder,
		Price:     msg.Price,
		ExpiresAt: msg.ExpiresAt,
	}

	result := mk.MatchForNewBid(ctx, params, bid, now)

	ctx.EventManager().EmitEvent(types.EventBidCreated{
		TokenID: bid.TokenID,
		Bidder:  bid.Bidder,
		Price:   bid.Price,
		Outcome: result.Outcome,
	}.ToSDKEvent())

	if !result.Outcome.Matched() {
		mk.SaveBid(ctx, bid)
		return &types.MsgSetBidResponse{Outcome: result.Outcome}, nil
	}

	// immediate fill: the bid never rests on the book. A prior bid of the
	// same bidder was refunded above; drop its record if present.
	if _, found := mk.GetBid(ctx, msg.TokenID, msg.Bidder); found {
		if err := mk.RemoveBid(ctx, msg.TokenID, msg.Bidder); err != nil {
			return nil, err
		}
	}
	if err := mk.RemoveAsk(ctx, result.Ask.TokenID); err != nil {
		return nil, err
	}

	payout, err := mk.Settle(ctx, params, bid.Price, *result.Ask, bid.Bidder, keeper.ModuleAddress)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(keeper.SaleEvent(msg.TokenID, result.Ask.Seller, bid.Bidder, payout).ToSDKEvent())

	return &types.MsgSetBidResponse{Outcome: result.Outcome}, nil
}

func (ms msgServer) RemoveBid(goCtx context.Context, msg *types.MsgRemoveBid) (*types.MsgRemoveBidResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	mk := ms.keepers.Marketplace

	bid, found := mk.GetBid(ctx, msg.TokenID, msg.Bidder)
	if !found {
		return nil, types.ErrBidNotFound
	}

	if err := mk.RemoveBid(ctx, msg.TokenID, msg.Bidder); err != nil {
		return nil, err
	}
	if err := mk.EscrowRelease(ctx, bid.Bidder, bid.Price); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(types.EventBidRemoved{
		TokenID: msg.TokenID,
		Bidder:  msg.Bidder,
	}.ToSDKEvent())

	return &types.MsgRemoveBidResponse{}, nil
}

func (ms msgServer) SetCollectionBid(goCtx context.Context, msg *types.MsgSetCollectionBid) (*types.MsgSetCollectionBidResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	mk := ms.keepers.Marketplace
	params := mk.GetParams(ctx)
	now := ctx.BlockTime()

	if err := params.ValidatePrice(msg.Price); err != nil {
		return nil, err
	}
	if err := params.ValidateExpiry(now, msg.ExpiresAt); err != nil {
		return nil, err
	}

	if prev, found := mk.GetCollectionBid(ctx, msg.Bidder); found {
		if err := mk.EscrowRelease(ctx, prev.Bidder, prev.TotalEscrow()); err != nil {
			return nil, err
		}
	}
	if err := mk.EscrowLock(ctx, msg.Bidder, msg.Deposit); err != nil {
		return nil, err
	}

	mk.SaveCollectionBid(ctx, types.CollectionBid{
		Bidder:    msg.Bidder,
		Units:     msg.Units,
		Price:     msg.Price,
		ExpiresAt: msg.ExpiresAt,
	})

	ctx.EventManager().EmitEvent(types.EventCollectionBidCreated{
		Bidder: msg.Bidder,
		Units:  msg.Units,
		Price:  msg.Price,
	}.ToSDKEvent())

	return &types.MsgSetCollectionBidResponse{}, nil
}

func (ms msgServer) RemoveCollectionBid(goCtx context.Context, msg *types.MsgRemoveCollectionBid) (*types.MsgRemoveCollectionBidResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	mk := ms.keepers.Marketplace

	cb, found := mk.GetCollectionBid(ctx, msg.Bidder)
	if !found {
		return nil, types.ErrCollectionBidNotFound
	}

	if err := mk.RemoveCollectionBid(ctx, msg.Bidder); err != nil {
		return nil, err
	}
	if err := mk.EscrowRelease(ctx, cb.Bidder, cb.TotalEscrow()); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(types.EventCollectionBidRemoved{Bidder: msg.Bidder}.ToSDKEvent())

	return &types.MsgRemoveCollectionBidResponse{}, nil
}

func (ms msgServer) AcceptCollectionBid(goCtx context.Context, msg *types.MsgAcceptCollectionBid) (*types.MsgAcceptCollectionBidResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	mk := ms.keepers.Marketplace
	params := mk.GetParams(ctx)
	now := ctx.BlockTime()

	cb, found := mk.GetCollectionBid(ctx, msg.Bidder)
	if !found {
		return nil, types.ErrCollectionBidNotFound
	}
	if types.IsExpired(cb, now) {
		return nil, types.ErrExpired.Wrap("collection bid expired")
	}
	if cb.Bidder.Equals(msg.Seller) {
		return nil, types.ErrSameAccount
	}

	effective := types.Ask{
		TokenID: msg.TokenID,
		Seller:  msg.Seller,
		Price:   cb.Price,
	}
	assetFrom := msg.Seller

	if ask, listed := mk.GetAsk(ctx, msg.TokenID); listed {
		if !ask.Seller.Equals(msg.Seller) {
			return nil, types.ErrUnauthorized.Wrapf("token %s listed by %s", msg.TokenID, ask.Seller)
		}
		effective.FundsRecipient = ask.FundsRecipient
		assetFrom = keeper.ModuleAddress
		if err := mk.RemoveAsk(ctx, msg.TokenID); err != nil {
			return nil, err
		}
	} else {
		owner, err := mk.Registry().OwnerOf(ctx, msg.TokenID)
		if err != nil {
			return nil, types.ErrAssetRegistry.Wrap(err.Error())
		}
		if !owner.Equals(msg.Seller) {
			return nil, types.ErrUnauthorized.Wrapf("token %s owned by %s", msg.TokenID, owner)
		}
	}

	// consume one unit; the remaining escrow stays locked against the rest
	cb.Units--
	if cb.Units == 0 {
		if err := mk.RemoveCollectionBid(ctx, msg.Bidder); err != nil {
			return nil, err
		}
	} else {
		mk.SaveCollectionBid(ctx, cb)
	}

	payout, err := mk.Settle(ctx, params, cb.Price, effective, cb.Bidder, assetFrom)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(types.EventCollectionBidAccepted{
		TokenID:        msg.TokenID,
		Bidder:         msg.Bidder,
		UnitsRemaining: cb.Units,
	}.ToSDKEvent())
	ctx.EventManager().EmitEvent(keeper.SaleEvent(msg.TokenID, msg.Seller, cb.Bidder, payout).ToSDKEvent())

	return &types.MsgAcceptCollectionBidResponse{UnitsRemaining: cb.Units}, nil
}

func (ms msgServer) SetAuction(goCtx context.Context, msg *types.MsgSetAuction) (*types.MsgSetAuctionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	mk := ms.keepers.Marketplace
	params := mk.GetParams(ctx)
	now := ctx.BlockTime()

	if err := params.ValidatePrice(msg.StartingPrice); err != nil {
		return nil, err
	}

	start := now
	if msg.StartTime != nil {
		if msg.StartTime.Before(now) {
			return nil, types.ErrInvalidTiming.Wrap("start time in the past")
		}
		start = *msg.StartTime
	}
	duration := msg.EndTime.Sub(start)
	if duration < params.MinAuctionDuration || duration > params.MaxAuctionDuration {
		return nil, types.ErrInvalidTiming.Wrapf("duration %s outside [%s, %s]",
			duration, params.MinAuctionDuration, params.MaxAuctionDuration)
	}

	if _, found := mk.GetAuction(ctx, msg.TokenID); found {
		return nil, types.ErrAuctionExists
	}
	if _, found := mk.GetAsk(ctx, msg.TokenID); found {
		return nil, types.ErrAskExists.Wrapf("token %s has a fixed-price listing", msg.TokenID)
	}

	owner, err := mk.Registry().OwnerOf(ctx, msg.TokenID)
	if err != nil {
		return nil, types.ErrAssetRegistry.Wrap(err.Error())
	}
	if !owner.Equals(msg.Seller) {
		return nil, types.ErrUnauthorized.Wrapf("token %s owned by %s", msg.TokenID, owner)
	}
	if err := mk.Registry().Transfer(ctx, msg.TokenID, msg.Seller, keeper.ModuleAddress); err != nil {
		return nil, types.ErrAssetRegistry.Wrap(err.Error())
	}

	mk.SaveAuction(ctx, types.Auction{
		TokenID:        msg.TokenID,
		Seller:         msg.Seller,
		StartTime:      start,
		EndTime:        msg.EndTime,
		StartingPrice:  msg.StartingPrice,
		ReservePrice:   msg.ReservePrice,
		FundsRecipient: msg.FundsRecipient,
	})

	ctx.EventManager().EmitEvent(types.EventAuctionCreated{
		TokenID: msg.TokenID,
		Seller:  msg.Seller,
		EndTime: msg.EndTime,
	}.ToSDKEvent())

	return &types.MsgSetAuctionResponse{}, nil
}

func (ms msgServer) SetAuctionBid(goCtx context.Context, msg *types.MsgSetAuctionBid) (*types.MsgSetAuctionBidResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	mk := ms.keepers.Marketplace
	params := mk.GetParams(ctx)
	now := ctx.BlockTime()

	auction, found := mk.GetAuction(ctx, msg.TokenID)
	if !found {
		return nil, types.ErrAuctionNotFound
	}
	if now.Before(auction.StartTime) {
		return nil, types.ErrInvalidTiming.Wrap("auction not started")
	}
	if auction.Status(now, params.ClosedDuration) != types.AuctionOpen {
		return nil, types.ErrInvalidAuctionState.Wrap("auction ended")
	}
	if auction.Seller.Equals(msg.Bidder) {
		return nil, types.ErrSameAccount.Wrap("seller bidding on own auction")
	}
	if msg.Price.Denom != params.Denom {
		return nil, types.ErrInvalidPrice.Wrapf("denom %s, expected %s", msg.Price.Denom, params.Denom)
	}
	if minNext := auction.MinNextBid(params.MinIncrementCoin()); msg.Price.IsLT(minNext) {
		return nil, types.ErrBidTooLow.Wrapf("minimum next bid is %s", minNext)
	}

	if err := mk.EscrowLock(ctx, msg.Bidder, msg.Deposit); err != nil {
		return nil, err
	}
	if prev := auction.HighestBid; prev != nil {
		if err := mk.EscrowRelease(ctx, prev.Bidder, prev.Price); err != nil {
			return nil, err
		}
	}

	auction.HighestBid = &types.AuctionBid{Bidder: msg.Bidder, Price: msg.Price}

	// anti-snipe: a bid landing inside the buffer pushes the end out, never in
	if auction.EndTime.Sub(now) < params.BufferDuration {
		auction.EndTime = now.Add(params.BufferDuration)
	}

	mk.SaveAuction(ctx, auction)

	ctx.EventManager().EmitEvent(types.EventAuctionBidPlaced{
		TokenID: msg.TokenID,
		Bidder:  msg.Bidder,
		Price:   msg.Price,
		EndTime: auction.EndTime,
	}.ToSDKEvent())

	return &types.MsgSetAuctionBidResponse{EndTime: auction.EndTime}, nil
}

func (ms msgServer) CloseAuction(goCtx context.Context, msg *types.MsgCloseAuction) (*types.MsgCloseAuctionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	mk := ms.keepers.Marketplace
	params := mk.GetParams(ctx)

	auction, found := mk.GetAuction(ctx, msg.TokenID)
	if !found {
		return nil, types.ErrAuctionNotFound
	}
	if !auction.Seller.Equals(msg.Seller) {
		return nil, types.ErrUnauthorized.Wrapf("auction opened by %s", auction.Seller)
	}
	if auction.ReserveMet() {
		return nil, types.ErrReserveMet.Wrap("reserve met, finalize instead")
	}

	if err := mk.RemoveAuction(ctx, msg.TokenID); err != nil {
		return nil, err
	}

	accepted := msg.AcceptHighestBid && auction.HighestBid != nil
	if accepted {
		hb := auction.HighestBid
		effective := types.Ask{
			TokenID:        auction.TokenID,
			Seller:         auction.Seller,
			Price:          hb.Price,
			FundsRecipient: auction.FundsRecipient,
		}
		payout, err := mk.Settle(ctx, params, hb.Price, effective, hb.Bidder, keeper.ModuleAddress)
		if err != nil {
			return nil, err
		}
		ctx.EventManager().EmitEvent(keeper.SaleEvent(auction.TokenID, auction.Seller, hb.Bidder, payout).ToSDKEvent())
	} else {
		if hb := auction.HighestBid; hb != nil {
			if err := mk.EscrowRelease(ctx, hb.Bidder, hb.Price); err != nil {
				return nil, err
			}
		}
		if err := mk.Registry().Transfer(ctx, auction.TokenID, keeper.ModuleAddress, auction.Seller); err != nil {
			return nil, types.ErrAssetRegistry.Wrap(err.Error())
		}
	}

	ctx.EventManager().EmitEvent(types.EventAuctionClosed{
		TokenID:  msg.TokenID,
		Accepted: accepted,
	}.ToSDKEvent())

	return &types.MsgCloseAuctionResponse{}, nil
}

func (ms msgServer) FinalizeAuction(goCtx context.Context, msg *types.MsgFinalizeAuction) (*types.MsgFinalizeAuctionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	mk := ms.keepers.Marketplace
	params := mk.GetParams(ctx)
	now := ctx.BlockTime()

	auction, found := mk.GetAuction(ctx, msg.TokenID)
	if !found {
		return nil, types.ErrAuctionNotFound
	}
	if auction.Status(now, params.ClosedDuration) == types.AuctionOpen {
		return nil, types.ErrInvalidAuctionState.Wrap("auction still open")
	}
	if !auction.ReserveMet() {
		return nil, types.ErrReserveNotMet
	}

	if err := mk.RemoveAuction(ctx, msg.TokenID); err != nil {
		return nil, err
	}

	hb := auction.HighestBid
	effective := types.Ask{
		TokenID:        auction.TokenID,
		Seller:         auction.Seller,
		Price:          hb.Price,
		FundsRecipient: auction.FundsRecipient,
	}
	payout, err := mk.Settle(ctx, params, hb.Price, effective, hb.Bidder, keeper.ModuleAddress)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(types.EventAuctionFinalized{TokenID: msg.TokenID}.ToSDKEvent())
	ctx.EventManager().EmitEvent(keeper.SaleEvent(auction.TokenID, auction.Seller, hb.Bidder, payout).ToSDKEvent())

	return &types.MsgFinalizeAuctionResponse{}, nil
}

func (ms msgServer) VoidAuction(goCtx context.Context, msg *types.MsgVoidAuction) (*types.MsgVoidAuctionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	mk := ms.keepers.Marketplace
	params := mk.GetParams(ctx)
	now := ctx.BlockTime()

	auction, found := mk.GetAuction(ctx, msg.TokenID)
	if !found {
		return nil, types.ErrAuctionNotFound
	}
	if auction.Status(now, params.ClosedDuration) != types.AuctionExpired {
		return nil, types.ErrInvalidAuctionState.Wrap("auction not expired")
	}
	hb := auction.HighestBid
	if hb == nil {
		return nil, types.ErrBidNotFound.Wrap("no bid to void")
	}
	if !hb.Bidder.Equals(msg.Bidder) {
		return nil, types.ErrUnauthorized.Wrapf("highest bidder is %s", hb.Bidder)
	}
	if auction.ReserveMet() {
		return nil, types.ErrReserveMet.Wrap("reserve met, finalize instead")
	}

	if err := mk.RemoveAuction(ctx, msg.TokenID); err != nil {
		return nil, err
	}
	if err := mk.EscrowRelease(ctx, hb.Bidder, hb.Price); err != nil {
		return nil, err
	}
	if err := mk.Registry().Transfer(ctx, auction.TokenID, keeper.ModuleAddress, auction.Seller); err != nil {
		return nil, types.ErrAssetRegistry.Wrap(err.Error())
	}

	ctx.EventManager().EmitEvent(types.EventAuctionVoided{TokenID: msg.TokenID}.ToSDKEvent())

	return &types.MsgVoidAuctionResponse{}, nil
}
