package handler

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

// Handler processes one marketplace message against current state. Results
// are observable through emitted events.
type Handler func(ctx sdk.Context, msg types.Msg) error

// NewHandler returns a handler for "marketplace" type messages
func NewHandler(keepers Keepers) Handler {
	ms := NewServer(keepers)

	return func(ctx sdk.Context, msg types.Msg) error {
		switch msg := msg.(type) {
		case *types.MsgUpdateParams:
			_, err := ms.UpdateParams(ctx, msg)
			return err

		case *types.MsgSetAsk:
			_, err := ms.SetAsk(ctx, msg)
			return err

		case *types.MsgRemoveAsk:
			_, err := ms.RemoveAsk(ctx, msg)
			return err

		case *types.MsgAcceptBid:
			_, err := ms.AcceptBid(ctx, msg)
			return err

		case *types.MsgSetBid:
			_, err := ms.SetBid(ctx, msg)
			return err

		case *types.MsgRemoveBid:
			_, err := ms.RemoveBid(ctx, msg)
			return err

		case *types.MsgSetCollectionBid:
			_, err := ms.SetCollectionBid(ctx, msg)
			return err

		case *types.MsgRemoveCollectionBid:
			_, err := ms.RemoveCollectionBid(ctx, msg)
			return err

		case *types.MsgAcceptCollectionBid:
			_, err := ms.AcceptCollectionBid(ctx, msg)
			return err

		case *types.MsgSetAuction:
			_, err := ms.SetAuction(ctx, msg)
			return err

		case *types.MsgSetAuctionBid:
			_, err := ms.SetAuctionBid(ctx, msg)
			return err

		case *types.MsgCloseAuction:
			_, err := ms.CloseAuction(ctx, msg)
			return err

		case *types.MsgFinalizeAuction:
			_, err := ms.FinalizeAuction(ctx, msg)
			return err

		case *types.MsgVoidAuction:
			_, err := ms.VoidAuction(ctx, msg)
			return err

		default:
			return sdkerrors.ErrUnknownRequest
		}
	}
}
