package types

const (
	// ModuleName is the module name constant used in many places
	ModuleName = "marketplace"

	// StoreKey is the store key string for marketplace
	StoreKey = ModuleName

	// RouterKey is the message route for marketplace
	RouterKey = ModuleName
)

var (
	ParamsPrefix = []byte{0x00}

	AskPrefix           = []byte{0x01, 0x00}
	BidPrefix           = []byte{0x02, 0x00}
	CollectionBidPrefix = []byte{0x03, 0x00}
	AuctionPrefix       = []byte{0x04, 0x00}

	// secondary indices: (prefix, index key..., primary key) -> primary key
	AskPriceIndexPrefix  = []byte{0x11, 0x00}
	AskExpiryIndexPrefix = []byte{0x11, 0x01}
	AskSellerIndexPrefix = []byte{0x11, 0x02}

	BidAssetPriceIndexPrefix = []byte{0x12, 0x00}
	BidExpiryIndexPrefix     = []byte{0x12, 0x01}
	BidBidderIndexPrefix     = []byte{0x12, 0x02}

	CollectionBidPriceIndexPrefix  = []byte{0x13, 0x00}
	CollectionBidExpiryIndexPrefix = []byte{0x13, 0x01}

	AuctionStartIndexPrefix  = []byte{0x14, 0x00}
	AuctionEndIndexPrefix    = []byte{0x14, 0x01}
	AuctionPriceIndexPrefix  = []byte{0x14, 0x02}
	AuctionSellerIndexPrefix = []byte{0x14, 0x03}
	AuctionBidderIndexPrefix = []byte{0x14, 0x04}
)
