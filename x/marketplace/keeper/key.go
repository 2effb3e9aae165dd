package keeper

import (
	"bytes"
	"encoding/binary"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

// priceKeyLen holds a 128-bit amount; big-endian so iteration order is
// numeric order.
const priceKeyLen = 16

func priceBytes(amount sdkmath.Int) []byte {
	out := make([]byte, priceKeyLen)
	amount.BigInt().FillBytes(out)
	return out
}

func timeBytes(t time.Time) []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, uint64(t.UnixNano()))
	return out
}

// expiryBytes sorts records without an expiry after every dated record.
func expiryBytes(t *time.Time) []byte {
	if t == nil {
		return []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	}
	return timeBytes(*t)
}

// tokenBytes length-prefixes a token id used as a non-terminal key component.
func tokenBytes(tokenID string) []byte {
	return append([]byte{byte(len(tokenID))}, tokenID...)
}

func buildKey(parts ...[]byte) []byte {
	buf := &bytes.Buffer{}
	for _, p := range parts {
		buf.Write(p)
	}
	return buf.Bytes()
}

// primary keys

func askKey(tokenID string) []byte {
	return buildKey(types.AskPrefix, []byte(tokenID))
}

func bidKey(tokenID string, bidder sdk.AccAddress) []byte {
	return buildKey(types.BidPrefix, tokenBytes(tokenID), bidder.Bytes())
}

func collectionBidKey(bidder sdk.AccAddress) []byte {
	return buildKey(types.CollectionBidPrefix, bidder.Bytes())
}

func auctionKey(tokenID string) []byte {
	return buildKey(types.AuctionPrefix, []byte(tokenID))
}

// ask index keys

func askPriceIndexKey(amount sdkmath.Int, tokenID string) []byte {
	return buildKey(types.AskPriceIndexPrefix, priceBytes(amount), []byte(tokenID))
}

func askExpiryIndexKey(expiresAt *time.Time, tokenID string) []byte {
	return buildKey(types.AskExpiryIndexPrefix, expiryBytes(expiresAt), []byte(tokenID))
}

func askSellerIndexKey(seller sdk.AccAddress, expiresAt *time.Time, tokenID string) []byte {
	return buildKey(types.AskSellerIndexPrefix, address.MustLengthPrefix(seller), expiryBytes(expiresAt), []byte(tokenID))
}

func askSellerIndexPrefix(seller sdk.AccAddress) []byte {
	return buildKey(types.AskSellerIndexPrefix, address.MustLengthPrefix(seller))
}

func askIndexKeys(ask types.Ask) [][]byte {
	return [][]byte{
		askPriceIndexKey(ask.Price.Amount, ask.TokenID),
		askExpiryIndexKey(ask.ExpiresAt, ask.TokenID),
		askSellerIndexKey(ask.Seller, ask.ExpiresAt, ask.TokenID),
	}
}

// bid index keys

func bidAssetPriceIndexKey(tokenID string, amount sdkmath.Int, bidder sdk.AccAddress) []byte {
	return buildKey(types.BidAssetPriceIndexPrefix, tokenBytes(tokenID), priceBytes(amount), bidder.Bytes())
}

func bidAssetPriceIndexPrefix(tokenID string) []byte {
	return buildKey(types.BidAssetPriceIndexPrefix, tokenBytes(tokenID))
}

func bidAssetPriceLevelPrefix(tokenID string, amount sdkmath.Int) []byte {
	return buildKey(types.BidAssetPriceIndexPrefix, tokenBytes(tokenID), priceBytes(amount))
}

func bidExpiryIndexKey(expiresAt *time.Time, tokenID string, bidder sdk.AccAddress) []byte {
	return buildKey(types.BidExpiryIndexPrefix, expiryBytes(expiresAt), tokenBytes(tokenID), bidder.Bytes())
}

func bidBidderIndexKey(bidder sdk.AccAddress, expiresAt *time.Time, tokenID string) []byte {
	return buildKey(types.BidBidderIndexPrefix, address.MustLengthPrefix(bidder), expiryBytes(expiresAt), []byte(tokenID))
}

func bidBidderIndexPrefix(bidder sdk.AccAddress) []byte {
	return buildKey(types.BidBidderIndexPrefix, address.MustLengthPrefix(bidder))
}

func bidIndexKeys(bid types.Bid) [][]byte {
	return [][]byte{
		bidAssetPriceIndexKey(bid.TokenID, bid.Price.Amount, bid.Bidder),
		bidExpiryIndexKey(bid.ExpiresAt, bid.TokenID, bid.Bidder),
		bidBidderIndexKey(bid.Bidder, bid.ExpiresAt, bid.TokenID),
	}
}

// collection bid index keys

func collectionBidPriceIndexKey(amount sdkmath.Int, bidder sdk.AccAddress) []byte {
	return buildKey(types.CollectionBidPriceIndexPrefix, priceBytes(amount), bidder.Bytes())
}

func collectionBidExpiryIndexKey(expiresAt *time.Time, bidder sdk.AccAddress) []byte {
	return buildKey(types.CollectionBidExpiryIndexPrefix, expiryBytes(expiresAt), bidder.Bytes())
}

func collectionBidIndexKeys(cb types.CollectionBid) [][]byte {
	return [][]byte{
		collectionBidPriceIndexKey(cb.Price.Amount, cb.Bidder),
		collectionBidExpiryIndexKey(cb.ExpiresAt, cb.Bidder),
	}
}

// auction index keys

func auctionStartIndexKey(start time.Time, tokenID string) []byte {
	return buildKey(types.AuctionStartIndexPrefix, timeBytes(start), []byte(tokenID))
}

func auctionEndIndexKey(end time.Time, tokenID string) []byte {
	return buildKey(types.AuctionEndIndexPrefix, timeBytes(end), []byte(tokenID))
}

func auctionPriceIndexKey(amount sdkmath.Int, tokenID string) []byte {
	return buildKey(types.AuctionPriceIndexPrefix, priceBytes(amount), []byte(tokenID))
}

func auctionSellerIndexKey(seller sdk.AccAddress, tokenID string) []byte {
	return buildKey(types.AuctionSellerIndexPrefix, address.MustLengthPrefix(seller), []byte(tokenID))
}

func auctionSellerIndexPrefix(seller sdk.AccAddress) []byte {
	return buildKey(types.AuctionSellerIndexPrefix, address.MustLengthPrefix(seller))
}

func auctionBidderIndexKey(bidder sdk.AccAddress, tokenID string) []byte {
	return buildKey(types.AuctionBidderIndexPrefix, address.MustLengthPrefix(bidder), []byte(tokenID))
}

func auctionBidderIndexPrefix(bidder sdk.AccAddress) []byte {
	return buildKey(types.AuctionBidderIndexPrefix, address.MustLengthPrefix(bidder))
}

// auctionIndexKeys includes price/bidder rows only once a highest bid exists.
func auctionIndexKeys(a types.Auction) [][]byte {
	keys := [][]byte{
		auctionStartIndexKey(a.StartTime, a.TokenID),
		auctionEndIndexKey(a.EndTime, a.TokenID),
		auctionSellerIndexKey(a.Seller, a.TokenID),
	}
	if a.HighestBid != nil {
		keys = append(keys,
			auctionPriceIndexKey(a.HighestBid.Price.Amount, a.TokenID),
			auctionBidderIndexKey(a.HighestBid.Bidder, a.TokenID),
		)
	}
	return keys
}
