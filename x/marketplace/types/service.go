package types

import (
	"context"
	"time"
)

// MsgServer is the handler API for marketplace transaction messages.
type MsgServer interface {
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
	SetAsk(context.Context, *MsgSetAsk) (*MsgSetAskResponse, error)
	RemoveAsk(context.Context, *MsgRemoveAsk) (*MsgRemoveAskResponse, error)
	AcceptBid(context.Context, *MsgAcceptBid) (*MsgAcceptBidResponse, error)
	SetBid(context.Context, *MsgSetBid) (*MsgSetBidResponse, error)
	RemoveBid(context.Context, *MsgRemoveBid) (*MsgRemoveBidResponse, error)
	SetCollectionBid(context.Context, *MsgSetCollectionBid) (*MsgSetCollectionBidResponse, error)
	RemoveCollectionBid(context.Context, *MsgRemoveCollectionBid) (*MsgRemoveCollectionBidResponse, error)
	AcceptCollectionBid(context.Context, *MsgAcceptCollectionBid) (*MsgAcceptCollectionBidResponse, error)
	SetAuction(context.Context, *MsgSetAuction) (*MsgSetAuctionResponse, error)
	SetAuctionBid(context.Context, *MsgSetAuctionBid) (*MsgSetAuctionBidResponse, error)
	CloseAuction(context.Context, *MsgCloseAuction) (*MsgCloseAuctionResponse, error)
	FinalizeAuction(context.Context, *MsgFinalizeAuction) (*MsgFinalizeAuctionResponse, error)
	VoidAuction(context.Context, *MsgVoidAuction) (*MsgVoidAuctionResponse, error)
}

type MsgUpdateParamsResponse struct{}

// MsgSetAskResponse reports whether the new listing filled immediately.
type MsgSetAskResponse struct {
	Outcome MatchOutcome `json:"outcome"`
}

type MsgRemoveAskResponse struct{}

type MsgAcceptBidResponse struct{}

// MsgSetBidResponse reports whether the new bid filled immediately or
// rested on the book.
type MsgSetBidResponse struct {
	Outcome MatchOutcome `json:"outcome"`
}

type MsgRemoveBidResponse struct{}

type MsgSetCollectionBidResponse struct{}

type MsgRemoveCollectionBidResponse struct{}

// MsgAcceptCollectionBidResponse reports the units left on the bid after
// the fill.
type MsgAcceptCollectionBidResponse struct {
	UnitsRemaining uint32 `json:"units_remaining"`
}

type MsgSetAuctionResponse struct{}

// MsgSetAuctionBidResponse carries the possibly extended end time.
type MsgSetAuctionBidResponse struct {
	EndTime time.Time `json:"end_time"`
}

type MsgCloseAuctionResponse struct{}

type MsgFinalizeAuctionResponse struct{}

type MsgVoidAuctionResponse struct{}
