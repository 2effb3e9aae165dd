package types

import "fmt"

// GenesisState is the full exported state of the marketplace module.
type GenesisState struct {
	Params         Params          `json:"params"`
	Asks           []Ask           `json:"asks"`
	Bids           []Bid           `json:"bids"`
	CollectionBids []CollectionBid `json:"collection_bids"`
	Auctions       Auctions        `json:"auctions"`
}

// DefaultGenesisState returns the default genesis of the marketplace module
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate checks params and the per-key uniqueness invariants of the book.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	askTokens := make(map[string]bool, len(gs.Asks))
	for _, ask := range gs.Asks {
		if askTokens[ask.TokenID] {
			return fmt.Errorf("duplicate ask for token %s", ask.TokenID)
		}
		askTokens[ask.TokenID] = true
	}

	bidKeys := make(map[string]bool, len(gs.Bids))
	for _, bid := range gs.Bids {
		key := bid.TokenID + "/" + bid.Bidder.String()
		if bidKeys[key] {
			return fmt.Errorf("duplicate bid for token %s by %s", bid.TokenID, bid.Bidder)
		}
		bidKeys[key] = true
	}

	bidders := make(map[string]bool, len(gs.CollectionBids))
	for _, cb := range gs.CollectionBids {
		if cb.Units == 0 {
			return fmt.Errorf("collection bid of %s has zero units", cb.Bidder)
		}
		if bidders[cb.Bidder.String()] {
			return fmt.Errorf("duplicate collection bid by %s", cb.Bidder)
		}
		bidders[cb.Bidder.String()] = true
	}

	auctionTokens := make(map[string]bool, len(gs.Auctions))
	for _, a := range gs.Auctions {
		if auctionTokens[a.TokenID] {
			return fmt.Errorf("duplicate auction for token %s", a.TokenID)
		}
		if askTokens[a.TokenID] {
			return fmt.Errorf("token %s both listed and on auction", a.TokenID)
		}
		if !a.EndTime.After(a.StartTime) {
			return fmt.Errorf("auction for token %s ends before it starts", a.TokenID)
		}
		auctionTokens[a.TokenID] = true
	}

	return nil
}
