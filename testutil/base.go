package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/cometbft/cometbft/libs/rand"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Name generates a random name with the given prefix
func Name(_ testing.TB, prefix string) string {
	return fmt.Sprintf("%s-%v", prefix, rand.Uint64())
}

// TokenID generates a random token identifier
func TokenID(t testing.TB) string {
	t.Helper()
	return Name(t, "token")
}

// AccAddress generates a random account address
func AccAddress(t testing.TB) sdk.AccAddress {
	t.Helper()
	return sdk.AccAddress(ed25519.GenPrivKey().PubKey().Address())
}

// Coin returns amount in the default marketplace denomination
func Coin(_ testing.TB, amount int64) sdk.Coin {
	return sdk.NewInt64Coin("ugal", amount)
}

// ExpiryAt returns a pointer to now+d, the shape order expiries take
func ExpiryAt(now time.Time, d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}
