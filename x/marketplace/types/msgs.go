package types

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Msg is the interface every marketplace transaction message implements.
// It mirrors the legacy amino message surface: routed by value, validated
// statelessly, signed over sorted JSON.
type Msg interface {
	Route() string
	Type() string
	ValidateBasic() error
	GetSignBytes() []byte
	GetSigners() []sdk.AccAddress
}

const (
	msgTypeUpdateParams        = "update-params"
	msgTypeSetAsk              = "set-ask"
	msgTypeRemoveAsk           = "remove-ask"
	msgTypeAcceptBid           = "accept-bid"
	msgTypeSetBid              = "set-bid"
	msgTypeRemoveBid           = "remove-bid"
	msgTypeSetCollectionBid    = "set-collection-bid"
	msgTypeRemoveCollectionBid = "remove-collection-bid"
	msgTypeAcceptCollectionBid = "accept-collection-bid"
	msgTypeSetAuction          = "set-auction"
	msgTypeSetAuctionBid       = "set-auction-bid"
	msgTypeCloseAuction        = "close-auction"
	msgTypeFinalizeAuction     = "finalize-auction"
	msgTypeVoidAuction         = "void-auction"
)

// token ids are length-prefixed with a single byte in store keys
const maxTokenIDLength = 255

func validateToken(tokenID string) error {
	if len(tokenID) == 0 {
		return ErrInvalidPrice.Wrap("empty token id")
	}
	if len(tokenID) > maxTokenIDLength {
		return ErrInvalidPrice.Wrapf("token id longer than %d bytes", maxTokenIDLength)
	}
	return nil
}

func validatePositivePrice(price sdk.Coin) error {
	if !price.IsValid() || !price.IsPositive() {
		return ErrInvalidPrice.Wrapf("%s", price)
	}
	if price.Amount.GTE(maxPriceAmount) {
		return ErrInvalidPrice.Wrapf("amount %s exceeds maximum", price.Amount)
	}
	return nil
}

func validateDeposit(deposit, price sdk.Coin) error {
	if !deposit.IsValid() || deposit.Denom != price.Denom || !deposit.Amount.Equal(price.Amount) {
		return ErrInvalidDeposit.Wrapf("deposit %s, required %s", deposit, price)
	}
	return nil
}

// MsgUpdateParams replaces the marketplace policy. Operator only.
type MsgUpdateParams struct {
	Sender sdk.AccAddress `json:"sender"`
	Params Params         `json:"params"`
}

// Route implements the Msg interface
func (msg MsgUpdateParams) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgUpdateParams) Type() string { return msgTypeUpdateParams }

// GetSignBytes encodes the message for signing
func (msg MsgUpdateParams) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Sender}
}

// ValidateBasic does basic validation of the new params
func (msg MsgUpdateParams) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Sender); err != nil {
		return err
	}
	return msg.Params.Validate()
}

// MsgSetAsk lists an asset for sale, or updates an existing listing.
type MsgSetAsk struct {
	Seller         sdk.AccAddress `json:"seller"`
	TokenID        string         `json:"token_id"`
	Price          sdk.Coin       `json:"price"`
	FundsRecipient sdk.AccAddress `json:"funds_recipient,omitempty"`
	ReservedFor    sdk.AccAddress `json:"reserved_for,omitempty"`
	ExpiresAt      *time.Time     `json:"expires_at,omitempty"`
}

// Route implements the Msg interface
func (msg MsgSetAsk) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgSetAsk) Type() string { return msgTypeSetAsk }

// GetSignBytes encodes the message for signing
func (msg MsgSetAsk) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgSetAsk) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Seller}
}

// ValidateBasic does basic validation of the listing
func (msg MsgSetAsk) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Seller); err != nil {
		return err
	}
	if err := validateToken(msg.TokenID); err != nil {
		return err
	}
	if !msg.FundsRecipient.Empty() {
		if err := sdk.VerifyAddressFormat(msg.FundsRecipient); err != nil {
			return err
		}
	}
	if !msg.ReservedFor.Empty() {
		if err := sdk.VerifyAddressFormat(msg.ReservedFor); err != nil {
			return err
		}
	}
	return validatePositivePrice(msg.Price)
}

// MsgRemoveAsk delists an asset and returns it to the seller.
type MsgRemoveAsk struct {
	Seller  sdk.AccAddress `json:"seller"`
	TokenID string         `json:"token_id"`
}

// Route implements the Msg interface
func (msg MsgRemoveAsk) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgRemoveAsk) Type() string { return msgTypeRemoveAsk }

// GetSignBytes encodes the message for signing
func (msg MsgRemoveAsk) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgRemoveAsk) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Seller}
}

// ValidateBasic method for MsgRemoveAsk
func (msg MsgRemoveAsk) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Seller); err != nil {
		return err
	}
	return validateToken(msg.TokenID)
}

// MsgAcceptBid is the seller accepting a specific standing bid.
type MsgAcceptBid struct {
	Seller  sdk.AccAddress `json:"seller"`
	TokenID string         `json:"token_id"`
	Bidder  sdk.AccAddress `json:"bidder"`
}

// Route implements the Msg interface
func (msg MsgAcceptBid) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgAcceptBid) Type() string { return msgTypeAcceptBid }

// GetSignBytes encodes the message for signing
func (msg MsgAcceptBid) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgAcceptBid) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Seller}
}

// ValidateBasic method for MsgAcceptBid
func (msg MsgAcceptBid) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Seller); err != nil {
		return err
	}
	if err := sdk.VerifyAddressFormat(msg.Bidder); err != nil {
		return err
	}
	return validateToken(msg.TokenID)
}

// MsgSetBid places an escrowed bid on one asset. Deposit must equal Price.
type MsgSetBid struct {
	Bidder    sdk.AccAddress `json:"bidder"`
	TokenID   string         `json:"token_id"`
	Price     sdk.Coin       `json:"price"`
	Deposit   sdk.Coin       `json:"deposit"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
}

// Route implements the Msg interface
func (msg MsgSetBid) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgSetBid) Type() string { return msgTypeSetBid }

// GetSignBytes encodes the message for signing
func (msg MsgSetBid) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgSetBid) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Bidder}
}

// ValidateBasic does basic validation of bid and deposit
func (msg MsgSetBid) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Bidder); err != nil {
		return err
	}
	if err := validateToken(msg.TokenID); err != nil {
		return err
	}
	if err := validatePositivePrice(msg.Price); err != nil {
		return err
	}
	return validateDeposit(msg.Deposit, msg.Price)
}

// MsgRemoveBid withdraws a bid and refunds its escrow.
type MsgRemoveBid struct {
	Bidder  sdk.AccAddress `json:"bidder"`
	TokenID string         `json:"token_id"`
}

// Route implements the Msg interface
func (msg MsgRemoveBid) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgRemoveBid) Type() string { return msgTypeRemoveBid }

// GetSignBytes encodes the message for signing
func (msg MsgRemoveBid) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgRemoveBid) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Bidder}
}

// ValidateBasic method for MsgRemoveBid
func (msg MsgRemoveBid) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Bidder); err != nil {
		return err
	}
	return validateToken(msg.TokenID)
}

// MsgSetCollectionBid places an escrowed bid for up to Units collection
// assets. Deposit must equal Price x Units.
type MsgSetCollectionBid struct {
	Bidder    sdk.AccAddress `json:"bidder"`
	Units     uint32         `json:"units"`
	Price     sdk.Coin       `json:"price"`
	Deposit   sdk.Coin       `json:"deposit"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
}

// Route implements the Msg interface
func (msg MsgSetCollectionBid) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgSetCollectionBid) Type() string { return msgTypeSetCollectionBid }

// GetSignBytes encodes the message for signing
func (msg MsgSetCollectionBid) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgSetCollectionBid) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Bidder}
}

// ValidateBasic does basic validation of units, price and deposit
func (msg MsgSetCollectionBid) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Bidder); err != nil {
		return err
	}
	if msg.Units == 0 {
		return ErrInvalidUnits
	}
	if err := validatePositivePrice(msg.Price); err != nil {
		return err
	}
	required := sdk.NewCoin(msg.Price.Denom, msg.Price.Amount.MulRaw(int64(msg.Units)))
	return validateDeposit(msg.Deposit, required)
}

// MsgRemoveCollectionBid withdraws a collection bid and refunds the full
// remaining escrow.
type MsgRemoveCollectionBid struct {
	Bidder sdk.AccAddress `json:"bidder"`
}

// Route implements the Msg interface
func (msg MsgRemoveCollectionBid) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgRemoveCollectionBid) Type() string { return msgTypeRemoveCollectionBid }

// GetSignBytes encodes the message for signing
func (msg MsgRemoveCollectionBid) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgRemoveCollectionBid) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Bidder}
}

// ValidateBasic method for MsgRemoveCollectionBid
func (msg MsgRemoveCollectionBid) ValidateBasic() error {
	return sdk.VerifyAddressFormat(msg.Bidder)
}

// MsgAcceptCollectionBid sells one asset into a standing collection bid.
// Sender must be the asset's lister, or its owner when unlisted.
type MsgAcceptCollectionBid struct {
	Seller  sdk.AccAddress `json:"seller"`
	TokenID string         `json:"token_id"`
	Bidder  sdk.AccAddress `json:"bidder"`
}

// Route implements the Msg interface
func (msg MsgAcceptCollectionBid) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgAcceptCollectionBid) Type() string { return msgTypeAcceptCollectionBid }

// GetSignBytes encodes the message for signing
func (msg MsgAcceptCollectionBid) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgAcceptCollectionBid) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Seller}
}

// ValidateBasic method for MsgAcceptCollectionBid
func (msg MsgAcceptCollectionBid) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Seller); err != nil {
		return err
	}
	if err := sdk.VerifyAddressFormat(msg.Bidder); err != nil {
		return err
	}
	return validateToken(msg.TokenID)
}

// MsgSetAuction opens an English auction for one asset.
type MsgSetAuction struct {
	Seller         sdk.AccAddress `json:"seller"`
	TokenID        string         `json:"token_id"`
	StartTime      *time.Time     `json:"start_time,omitempty"`
	EndTime        time.Time      `json:"end_time"`
	StartingPrice  sdk.Coin       `json:"starting_price"`
	ReservePrice   *sdk.Coin      `json:"reserve_price,omitempty"`
	FundsRecipient sdk.AccAddress `json:"funds_recipient,omitempty"`
}

// Route implements the Msg interface
func (msg MsgSetAuction) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgSetAuction) Type() string { return msgTypeSetAuction }

// GetSignBytes encodes the message for signing
func (msg MsgSetAuction) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgSetAuction) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Seller}
}

// ValidateBasic does basic validation of prices and timing
func (msg MsgSetAuction) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Seller); err != nil {
		return err
	}
	if err := validateToken(msg.TokenID); err != nil {
		return err
	}
	if !msg.FundsRecipient.Empty() {
		if err := sdk.VerifyAddressFormat(msg.FundsRecipient); err != nil {
			return err
		}
	}
	if err := validatePositivePrice(msg.StartingPrice); err != nil {
		return err
	}
	if msg.ReservePrice != nil {
		if err := validatePositivePrice(*msg.ReservePrice); err != nil {
			return err
		}
		if msg.ReservePrice.Denom != msg.StartingPrice.Denom ||
			msg.ReservePrice.Amount.LT(msg.StartingPrice.Amount) {
			return ErrInvalidReserve
		}
	}
	if msg.StartTime != nil && !msg.EndTime.After(*msg.StartTime) {
		return ErrInvalidTiming.Wrap("end time not after start time")
	}
	return nil
}

// MsgSetAuctionBid places an escrowed auction bid. Deposit must equal Price.
type MsgSetAuctionBid struct {
	Bidder  sdk.AccAddress `json:"bidder"`
	TokenID string         `json:"token_id"`
	Price   sdk.Coin       `json:"price"`
	Deposit sdk.Coin       `json:"deposit"`
}

// Route implements the Msg interface
func (msg MsgSetAuctionBid) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgSetAuctionBid) Type() string { return msgTypeSetAuctionBid }

// GetSignBytes encodes the message for signing
func (msg MsgSetAuctionBid) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgSetAuctionBid) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Bidder}
}

// ValidateBasic does basic validation of bid and deposit
func (msg MsgSetAuctionBid) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Bidder); err != nil {
		return err
	}
	if err := validateToken(msg.TokenID); err != nil {
		return err
	}
	if err := validatePositivePrice(msg.Price); err != nil {
		return err
	}
	return validateDeposit(msg.Deposit, msg.Price)
}

// MsgCloseAuction is the seller ending an auction whose reserve is not met,
// either accepting or rejecting the current highest bid.
type MsgCloseAuction struct {
	Seller           sdk.AccAddress `json:"seller"`
	TokenID          string         `json:"token_id"`
	AcceptHighestBid bool           `json:"accept_highest_bid"`
}

// Route implements the Msg interface
func (msg MsgCloseAuction) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgCloseAuction) Type() string { return msgTypeCloseAuction }

// GetSignBytes encodes the message for signing
func (msg MsgCloseAuction) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgCloseAuction) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Seller}
}

// ValidateBasic method for MsgCloseAuction
func (msg MsgCloseAuction) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Seller); err != nil {
		return err
	}
	return validateToken(msg.TokenID)
}

// MsgFinalizeAuction settles an ended auction whose reserve is met.
// Permissionless.
type MsgFinalizeAuction struct {
	Sender  sdk.AccAddress `json:"sender"`
	TokenID string         `json:"token_id"`
}

// Route implements the Msg interface
func (msg MsgFinalizeAuction) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgFinalizeAuction) Type() string { return msgTypeFinalizeAuction }

// GetSignBytes encodes the message for signing
func (msg MsgFinalizeAuction) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgFinalizeAuction) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Sender}
}

// ValidateBasic method for MsgFinalizeAuction
func (msg MsgFinalizeAuction) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Sender); err != nil {
		return err
	}
	return validateToken(msg.TokenID)
}

// MsgVoidAuction lets the highest bidder of an expired, reserve-unmet
// auction reclaim escrow; the asset returns to the seller.
type MsgVoidAuction struct {
	Bidder  sdk.AccAddress `json:"bidder"`
	TokenID string         `json:"token_id"`
}

// Route implements the Msg interface
func (msg MsgVoidAuction) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgVoidAuction) Type() string { return msgTypeVoidAuction }

// GetSignBytes encodes the message for signing
func (msg MsgVoidAuction) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg MsgVoidAuction) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Bidder}
}

// ValidateBasic method for MsgVoidAuction
func (msg MsgVoidAuction) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(msg.Bidder); err != nil {
		return err
	}
	return validateToken(msg.TokenID)
}
