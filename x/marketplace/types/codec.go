package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc is the marketplace module codec, used for message sign bytes and
// state encoding.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
}

// RegisterLegacyAminoCodec registers the marketplace message types on cdc
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(MsgUpdateParams{}, "marketplace/update-params", nil)
	cdc.RegisterConcrete(MsgSetAsk{}, "marketplace/set-ask", nil)
	cdc.RegisterConcrete(MsgRemoveAsk{}, "marketplace/remove-ask", nil)
	cdc.RegisterConcrete(MsgAcceptBid{}, "marketplace/accept-bid", nil)
	cdc.RegisterConcrete(MsgSetBid{}, "marketplace/set-bid", nil)
	cdc.RegisterConcrete(MsgRemoveBid{}, "marketplace/remove-bid", nil)
	cdc.RegisterConcrete(MsgSetCollectionBid{}, "marketplace/set-collection-bid", nil)
	cdc.RegisterConcrete(MsgRemoveCollectionBid{}, "marketplace/remove-collection-bid", nil)
	cdc.RegisterConcrete(MsgAcceptCollectionBid{}, "marketplace/accept-collection-bid", nil)
	cdc.RegisterConcrete(MsgSetAuction{}, "marketplace/set-auction", nil)
	cdc.RegisterConcrete(MsgSetAuctionBid{}, "marketplace/set-auction-bid", nil)
	cdc.RegisterConcrete(MsgCloseAuction{}, "marketplace/close-auction", nil)
	cdc.RegisterConcrete(MsgFinalizeAuction{}, "marketplace/finalize-auction", nil)
	cdc.RegisterConcrete(MsgVoidAuction{}, "marketplace/void-auction", nil)
}
