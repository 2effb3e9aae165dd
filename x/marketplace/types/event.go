package types

import (
	"strconv"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/galleria-zone/galleria-node/sdkutil"
)

const (
	evActionParamsUpdated         = "params-updated"
	evActionAskCreated            = "ask-created"
	evActionAskRemoved            = "ask-removed"
	evActionBidCreated            = "bid-created"
	evActionBidRemoved            = "bid-removed"
	evActionCollectionBidCreated  = "collection-bid-created"
	evActionCollectionBidRemoved  = "collection-bid-removed"
	evActionCollectionBidAccepted = "collection-bid-accepted"
	evActionAuctionCreated        = "auction-created"
	evActionAuctionBidPlaced      = "auction-bid-placed"
	evActionAuctionClosed         = "auction-closed"
	evActionAuctionFinalized      = "auction-finalized"
	evActionAuctionVoided         = "auction-voided"
	evActionSaleCompleted         = "sale-completed"

	evTokenKey    = "token-id"
	evSellerKey   = "seller"
	evBidderKey   = "bidder"
	evBuyerKey    = "buyer"
	evPriceKey    = "price"
	evOutcomeKey  = "outcome"
	evUnitsKey    = "units"
	evEndTimeKey  = "end-time"
	evAcceptedKey = "accepted"
	evSurplusKey  = "surplus"
	evFeeKey      = "fee"
	evRoyaltyKey  = "royalty"
	evProceedsKey = "proceeds"
)

func baseAttributes(action string) []sdk.Attribute {
	return []sdk.Attribute{
		sdk.NewAttribute(sdk.AttributeKeyModule, ModuleName),
		sdk.NewAttribute(sdk.AttributeKeyAction, action),
	}
}

func tokenEVAttributes(tokenID string) []sdk.Attribute {
	return []sdk.Attribute{sdk.NewAttribute(evTokenKey, tokenID)}
}

// EventParamsUpdated struct
type EventParamsUpdated struct {
	Sender sdk.AccAddress
}

// ToSDKEvent method creates new sdk event for EventParamsUpdated struct
func (e EventParamsUpdated) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append(baseAttributes(evActionParamsUpdated),
			sdk.NewAttribute(evSellerKey, e.Sender.String()),
		)...,
	)
}

// EventAskCreated struct
type EventAskCreated struct {
	TokenID string
	Seller  sdk.AccAddress
	Price   sdk.Coin
}

// ToSDKEvent method creates new sdk event for EventAskCreated struct
func (e EventAskCreated) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append(baseAttributes(evActionAskCreated),
			sdk.NewAttribute(evTokenKey, e.TokenID),
			sdk.NewAttribute(evSellerKey, e.Seller.String()),
			sdk.NewAttribute(evPriceKey, e.Price.String()),
		)...,
	)
}

// EventAskRemoved struct
type EventAskRemoved struct {
	TokenID string
}

// ToSDKEvent method creates new sdk event for EventAskRemoved struct
func (e EventAskRemoved) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append(baseAttributes(evActionAskRemoved), tokenEVAttributes(e.TokenID)...)...,
	)
}

// EventBidCreated carries the matching outcome even when the bid rests on
// the book unmatched.
type EventBidCreated struct {
	TokenID string
	Bidder  sdk.AccAddress
	Price   sdk.Coin
	Outcome MatchOutcome
}

// ToSDKEvent method creates new sdk event for EventBidCreated struct
func (e EventBidCreated) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append(baseAttributes(evActionBidCreated),
			sdk.NewAttribute(evTokenKey, e.TokenID),
			sdk.NewAttribute(evBidderKey, e.Bidder.String()),
			sdk.NewAttribute(evPriceKey, e.Price.String()),
			sdk.NewAttribute(evOutcomeKey, string(e.Outcome)),
		)...,
	)
}

// EventBidRemoved struct
type EventBidRemoved struct {
	TokenID string
	Bidder  sdk.AccAddress
}

// ToSDKEvent method creates new sdk event for EventBidRemoved struct
func (e EventBidRemoved) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append(baseAttributes(evActionBidRemoved),
			sdk.NewAttribute(evTokenKey, e.TokenID),
			sdk.NewAttribute(evBidderKey, e.Bidder.String()),
		)...,
	)
}

// EventCollectionBidCreated struct
type EventCollectionBidCreated struct {
	Bidder sdk.AccAddress
	Units  uint32
	Price  sdk.Coin
}

// ToSDKEvent method creates new sdk event for EventCollectionBidCreated struct
func (e EventCollectionBidCreated) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append(baseAttributes(evActionCollectionBidCreated),
			sdk.NewAttribute(evBidderKey, e.Bidder.String()),
			sdk.NewAttribute(evUnitsKey, strconv.FormatUint(uint64(e.Units), 10)),
			sdk.NewAttribute(evPriceKey, e.Price.String()),
		)...,
	)
}

// EventCollectionBidRemoved struct
type EventCollectionBidRemoved struct {
	Bidder sdk.AccAddress
}

// ToSDKEvent method creates new sdk event for EventCollectionBidRemoved struct
func (e EventCollectionBidRemoved) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append(baseAttributes(evActionCollectionBidRemoved),
			sdk.NewAttribute(evBidderKey, e.Bidder.String()),
		)...,
	)
}

// EventCollectionBidAccepted struct
type EventCollectionBidAccepted struct {
	TokenID        string
	Bidder         sdk.AccAddress
	UnitsRemaining uint32
}

// ToSDKEvent method creates new sdk event for EventCollectionBidAccepted struct
func (e EventCollectionBidAccepted) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append(baseAttributes(evActionCollectionBidAccepted),
			sdk.NewAttribute(evTokenKey, e.TokenID),
			sdk.NewAttribute(evBidderKey, e.Bidder.String()),
			sdk.NewAttribute(evUnitsKey, strconv.FormatUint(uint64(e.UnitsRemaining), 10)),
		)...,
	)
}

// EventAuctionCreated struct
type EventAuctionCreated struct {
	TokenID string
	Seller  sdk.AccAddress
	EndTime time.Time
}

// ToSDKEvent method creates new sdk event for EventAuctionCreated struct
func (e EventAuctionCreated) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append(baseAttributes(evActionAuctionCreated),
			sdk.NewAttribute(evTokenKey, e.TokenID),
			sdk.NewAttribute(evSellerKey, e.Seller.String()),
			sdk.NewAttribute(evEndTimeKey, e.EndTime.Format(time.RFC3339Nano)),
		)...,
	)
}

// EventAuctionBidPlaced carries the possibly extended end time.
type EventAuctionBidPlaced struct {
	TokenID string
	Bidder  sdk.AccAddress
	Price   sdk.Coin
	EndTime time.Time
}

// ToSDKEvent method creates new sdk event for EventAuctionBidPlaced struct
func (e EventAuctionBidPlaced) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append(baseAttributes(evActionAuctionBidPlaced),
			sdk.NewAttribute(evTokenKey, e.TokenID),
			sdk.NewAttribute(evBidderKey, e.Bidder.String()),
			sdk.NewAttribute(evPriceKey, e.Price.String()),
			sdk.NewAttribute(evEndTimeKey, e.EndTime.Format(time.RFC3339Nano)),
		)...,
	)
}

// EventAuctionClosed struct
type EventAuctionClosed struct {
	TokenID  string
	Accepted bool
}

// ToSDKEvent method creates new sdk event for EventAuctionClosed struct
func (e EventAuctionClosed) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append(baseAttributes(evActionAuctionClosed),
			sdk.NewAttribute(evTokenKey, e.TokenID),
			sdk.NewAttribute(evAcceptedKey, strconv.FormatBool(e.Accepted)),
		)...,
	)
}

// EventAuctionFinalized struct
type EventAuctionFinalized struct {
	TokenID string
}

// ToSDKEvent method creates new sdk event for EventAuctionFinalized struct
func (e EventAuctionFinalized) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append(baseAttributes(evActionAuctionFinalized), tokenEVAttributes(e.TokenID)...)...,
	)
}

// EventAuctionVoided struct
type EventAuctionVoided struct {
	TokenID string
}

// ToSDKEvent method creates new sdk event for EventAuctionVoided struct
func (e EventAuctionVoided) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append(baseAttributes(evActionAuctionVoided), tokenEVAttributes(e.TokenID)...)...,
	)
}

// EventSaleCompleted records the full payout split of a settled trade.
type EventSaleCompleted struct {
	TokenID  string
	Seller   sdk.AccAddress
	Buyer    sdk.AccAddress
	Price    sdk.Coin
	Surplus  sdk.Coin
	Fee      sdk.Coin
	Royalty  sdk.Coin
	Proceeds sdk.Coin
}

// ToSDKEvent method creates new sdk event for EventSaleCompleted struct
func (e EventSaleCompleted) ToSDKEvent() sdk.Event {
	return sdk.NewEvent(sdkutil.EventTypeMessage,
		append(baseAttributes(evActionSaleCompleted),
			sdk.NewAttribute(evTokenKey, e.TokenID),
			sdk.NewAttribute(evSellerKey, e.Seller.String()),
			sdk.NewAttribute(evBuyerKey, e.Buyer.String()),
			sdk.NewAttribute(evPriceKey, e.Price.String()),
			sdk.NewAttribute(evSurplusKey, e.Surplus.String()),
			sdk.NewAttribute(evFeeKey, e.Fee.String()),
			sdk.NewAttribute(evRoyaltyKey, e.Royalty.String()),
			sdk.NewAttribute(evProceedsKey, e.Proceeds.String()),
		)...,
	)
}

// ParseEvent parses a decoded sdkutil event back into its typed marketplace
// event.
func ParseEvent(ev sdkutil.Event) (sdkutil.ModuleEvent, error) {
	if ev.Type != sdkutil.EventTypeMessage {
		return nil, sdkutil.ErrUnknownType
	}
	if ev.Module != ModuleName {
		return nil, sdkutil.ErrUnknownModule
	}

	switch ev.Action {
	case evActionAskCreated:
		return parseEVAskCreated(ev.Attributes)
	case evActionAskRemoved:
		token, err := sdkutil.GetString(ev.Attributes, evTokenKey)
		if err != nil {
			return nil, err
		}
		return EventAskRemoved{TokenID: token}, nil
	case evActionBidCreated:
		return parseEVBidCreated(ev.Attributes)
	case evActionBidRemoved:
		return parseEVBidRemoved(ev.Attributes)
	case evActionSaleCompleted:
		return parseEVSaleCompleted(ev.Attributes)
	case evActionAuctionCreated:
		return parseEVAuctionCreated(ev.Attributes)
	case evActionAuctionBidPlaced:
		return parseEVAuctionBidPlaced(ev.Attributes)
	default:
		return nil, sdkutil.ErrUnknownAction
	}
}

func parseEVAskCreated(attrs []sdk.Attribute) (EventAskCreated, error) {
	ev := EventAskCreated{}
	var err error

	if ev.TokenID, err = sdkutil.GetString(attrs, evTokenKey); err != nil {
		return ev, err
	}
	if ev.Seller, err = sdkutil.GetAccAddress(attrs, evSellerKey); err != nil {
		return ev, err
	}
	if ev.Price, err = sdkutil.GetCoin(attrs, evPriceKey); err != nil {
		return ev, err
	}

	return ev, nil
}

func parseEVBidCreated(attrs []sdk.Attribute) (EventBidCreated, error) {
	ev := EventBidCreated{}
	var err error

	if ev.TokenID, err = sdkutil.GetString(attrs, evTokenKey); err != nil {
		return ev, err
	}
	if ev.Bidder, err = sdkutil.GetAccAddress(attrs, evBidderKey); err != nil {
		return ev, err
	}
	if ev.Price, err = sdkutil.GetCoin(attrs, evPriceKey); err != nil {
		return ev, err
	}

	outcome, err := sdkutil.GetString(attrs, evOutcomeKey)
	if err != nil {
		return ev, err
	}
	ev.Outcome = MatchOutcome(outcome)

	return ev, nil
}

func parseEVBidRemoved(attrs []sdk.Attribute) (EventBidRemoved, error) {
	ev := EventBidRemoved{}
	var err error

	if ev.TokenID, err = sdkutil.GetString(attrs, evTokenKey); err != nil {
		return ev, err
	}
	if ev.Bidder, err = sdkutil.GetAccAddress(attrs, evBidderKey); err != nil {
		return ev, err
	}

	return ev, nil
}

func parseEVSaleCompleted(attrs []sdk.Attribute) (EventSaleCompleted, error) {
	ev := EventSaleCompleted{}
	var err error

	if ev.TokenID, err = sdkutil.GetString(attrs, evTokenKey); err != nil {
		return ev, err
	}
	if ev.Seller, err = sdkutil.GetAccAddress(attrs, evSellerKey); err != nil {
		return ev, err
	}
	if ev.Buyer, err = sdkutil.GetAccAddress(attrs, evBuyerKey); err != nil {
		return ev, err
	}
	if ev.Price, err = sdkutil.GetCoin(attrs, evPriceKey); err != nil {
		return ev, err
	}
	if ev.Surplus, err = sdkutil.GetCoin(attrs, evSurplusKey); err != nil {
		return ev, err
	}
	if ev.Fee, err = sdkutil.GetCoin(attrs, evFeeKey); err != nil {
		return ev, err
	}
	if ev.Royalty, err = sdkutil.GetCoin(attrs, evRoyaltyKey); err != nil {
		return ev, err
	}
	if ev.Proceeds, err = sdkutil.GetCoin(attrs, evProceedsKey); err != nil {
		return ev, err
	}

	return ev, nil
}

func parseEVAuctionCreated(attrs []sdk.Attribute) (EventAuctionCreated, error) {
	ev := EventAuctionCreated{}
	var err error

	if ev.TokenID, err = sdkutil.GetString(attrs, evTokenKey); err != nil {
		return ev, err
	}
	if ev.Seller, err = sdkutil.GetAccAddress(attrs, evSellerKey); err != nil {
		return ev, err
	}
	if ev.EndTime, err = sdkutil.GetTime(attrs, evEndTimeKey); err != nil {
		return ev, err
	}

	return ev, nil
}

func parseEVAuctionBidPlaced(attrs []sdk.Attribute) (EventAuctionBidPlaced, error) {
	ev := EventAuctionBidPlaced{}
	var err error

	if ev.TokenID, err = sdkutil.GetString(attrs, evTokenKey); err != nil {
		return ev, err
	}
	if ev.Bidder, err = sdkutil.GetAccAddress(attrs, evBidderKey); err != nil {
		return ev, err
	}
	if ev.Price, err = sdkutil.GetCoin(attrs, evPriceKey); err != nil {
		return ev, err
	}
	if ev.EndTime, err = sdkutil.GetTime(attrs, evEndTimeKey); err != nil {
		return ev, err
	}

	return ev, nil
}
