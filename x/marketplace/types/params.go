package types

import (
	fmt "fmt"
	"math/big"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MatchPolicy selects the price comparator applied when a new bid meets an
// existing ask.
type MatchPolicy string

const (
	// MatchPolicyExact trades only when bid price equals ask price.
	MatchPolicyExact MatchPolicy = "exact"
	// MatchPolicyCrossing trades when bid price is at or above ask price;
	// the excess is refunded to the buyer at settlement.
	MatchPolicyCrossing MatchPolicy = "crossing"
)

var (
	DefaultDenom                            = "ugal"
	DefaultFeePercent                       = math.LegacyNewDec(2)
	DefaultMinPrice                         = math.NewInt(1000)
	DefaultMinBidIncrement                  = math.NewInt(1000)
	DefaultMinExpiry          time.Duration = 24 * time.Hour
	DefaultMaxExpiry          time.Duration = 180 * 24 * time.Hour
	DefaultMinAuctionDuration time.Duration = time.Hour
	DefaultMaxAuctionDuration time.Duration = 90 * 24 * time.Hour
	DefaultBufferDuration     time.Duration = 5 * time.Minute
	DefaultClosedDuration     time.Duration = 10 * time.Minute
	maxFeePercent                           = math.LegacyNewDec(100)

	// price index keys hold the amount as 128-bit big-endian
	maxPriceAmount = math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 128))
)

// Params is the marketplace-wide policy singleton. It is loaded once per
// operation and threaded through components by parameter.
type Params struct {
	// Denom is the sole payment denomination accepted by the marketplace.
	Denom string `json:"denom"`
	// FeePercent is the marketplace fee in percent of the payment amount.
	FeePercent math.LegacyDec `json:"fee_percent"`
	// FeeCollector receives the marketplace fee.
	FeeCollector sdk.AccAddress `json:"fee_collector"`
	// MinPrice is the lowest admissible ask/bid/starting price.
	MinPrice math.Int `json:"min_price"`
	// MinBidIncrement is the amount every auction bid must exceed the
	// previous highest bid by.
	MinBidIncrement math.Int `json:"min_bid_increment"`
	// MinExpiry/MaxExpiry bound order expiries relative to block time.
	MinExpiry time.Duration `json:"min_expiry"`
	MaxExpiry time.Duration `json:"max_expiry"`
	// MinAuctionDuration/MaxAuctionDuration bound auction run times.
	MinAuctionDuration time.Duration `json:"min_auction_duration"`
	MaxAuctionDuration time.Duration `json:"max_auction_duration"`
	// BufferDuration is the anti-snipe window: a bid landing within it
	// pushes the auction end out to now+BufferDuration.
	BufferDuration time.Duration `json:"buffer_duration"`
	// ClosedDuration is the grace window between auction end and expiry
	// during which only the seller may act.
	ClosedDuration time.Duration `json:"closed_duration"`
	// Operators may update these params.
	Operators []sdk.AccAddress `json:"operators"`
	// MatchPolicy selects exact or crossing bid/ask matching.
	MatchPolicy MatchPolicy `json:"match_policy"`
}

func DefaultParams() Params {
	return Params{
		Denom:              DefaultDenom,
		FeePercent:         DefaultFeePercent,
		MinPrice:           DefaultMinPrice,
		MinBidIncrement:    DefaultMinBidIncrement,
		MinExpiry:          DefaultMinExpiry,
		MaxExpiry:          DefaultMaxExpiry,
		MinAuctionDuration: DefaultMinAuctionDuration,
		MaxAuctionDuration: DefaultMaxAuctionDuration,
		BufferDuration:     DefaultBufferDuration,
		ClosedDuration:     DefaultClosedDuration,
		MatchPolicy:        MatchPolicyExact,
	}
}

func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.Denom); err != nil {
		return err
	}

	if err := validateFeePercent(p.FeePercent); err != nil {
		return err
	}

	if p.MinPrice.IsNil() || !p.MinPrice.IsPositive() {
		return fmt.Errorf("min price must be positive")
	}

	if p.MinBidIncrement.IsNil() || !p.MinBidIncrement.IsPositive() {
		return fmt.Errorf("min bid increment must be positive")
	}

	if err := validateWindow(p.MinExpiry, p.MaxExpiry, "expiry"); err != nil {
		return err
	}

	if err := validateWindow(p.MinAuctionDuration, p.MaxAuctionDuration, "auction duration"); err != nil {
		return err
	}

	if p.BufferDuration <= 0 {
		return fmt.Errorf("buffer duration must be positive")
	}

	if p.ClosedDuration <= 0 {
		return fmt.Errorf("closed duration must be positive")
	}

	switch p.MatchPolicy {
	case MatchPolicyExact, MatchPolicyCrossing:
	default:
		return fmt.Errorf("invalid match policy: %q", p.MatchPolicy)
	}

	return nil
}

// IsOperator reports whether addr is a privileged operator.
func (p Params) IsOperator(addr sdk.AccAddress) bool {
	for _, op := range p.Operators {
		if op.Equals(addr) {
			return true
		}
	}
	return false
}

// ValidatePrice checks denomination and minimum against a submitted price.
func (p Params) ValidatePrice(price sdk.Coin) error {
	if price.Denom != p.Denom {
		return ErrInvalidPrice.Wrapf("denom %s, expected %s", price.Denom, p.Denom)
	}
	if price.Amount.LT(p.MinPrice) {
		return ErrInvalidPrice.Wrapf("amount %s below minimum %s", price.Amount, p.MinPrice)
	}
	return nil
}

// ValidateExpiry checks an optional order expiry against the configured
// window relative to now.
func (p Params) ValidateExpiry(now time.Time, expiresAt *time.Time) error {
	if expiresAt == nil {
		return nil
	}
	if expiresAt.Before(now.Add(p.MinExpiry)) || expiresAt.After(now.Add(p.MaxExpiry)) {
		return ErrInvalidExpiry.Wrapf("expiry %s outside [%s, %s]",
			expiresAt, now.Add(p.MinExpiry), now.Add(p.MaxExpiry))
	}
	return nil
}

// MinIncrementCoin returns the bid increment in the configured denom.
func (p Params) MinIncrementCoin() sdk.Coin {
	return sdk.NewCoin(p.Denom, p.MinBidIncrement)
}

func validateFeePercent(v math.LegacyDec) error {
	if v.IsNil() || v.IsNegative() {
		return fmt.Errorf("fee percent must be non-negative")
	}
	if v.GT(maxFeePercent) {
		return fmt.Errorf("fee percent too high: %s", v)
	}
	return nil
}

func validateWindow(lo, hi time.Duration, name string) error {
	if lo <= 0 {
		return fmt.Errorf("min %s must be positive", name)
	}
	if hi < lo {
		return fmt.Errorf("max %s below min", name)
	}
	return nil
}
