package keeper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

// TestSuite bundles a keeper over an in-memory store with mock bank and
// registry backends.
type TestSuite struct {
	t        testing.TB
	ctx      sdk.Context
	keeper   Keeper
	bank     *BankMock
	registry *RegistryMock
}

// SetupTestSuite creates a suite with default params already stored and
// block time set to a fixed instant.
func SetupTestSuite(t testing.TB) *TestSuite {
	t.Helper()

	key := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()

	cms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	require.NoError(t, cms.LoadLatestVersion())

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := sdk.NewContext(cms, cmtproto.Header{Time: now}, false, log.NewNopLogger())

	bank := NewBankMock()
	registry := NewRegistryMock()

	cdc := codec.NewLegacyAmino()
	types.RegisterLegacyAminoCodec(cdc)

	suite := &TestSuite{
		t:        t,
		ctx:      ctx,
		keeper:   NewKeeper(cdc, key, bank, registry),
		bank:     bank,
		registry: registry,
	}

	require.NoError(t, suite.keeper.SetParams(ctx, types.DefaultParams()))

	return suite
}

func (s *TestSuite) Context() sdk.Context    { return s.ctx }
func (s *TestSuite) Keeper() Keeper          { return s.keeper }
func (s *TestSuite) Bank() *BankMock         { return s.bank }
func (s *TestSuite) Registry() *RegistryMock { return s.registry }
func (s *TestSuite) Now() time.Time          { return s.ctx.BlockTime() }

// AdvanceBlock moves block time forward by d.
func (s *TestSuite) AdvanceBlock(d time.Duration) sdk.Context {
	s.ctx = s.ctx.WithBlockTime(s.ctx.BlockTime().Add(d))
	return s.ctx
}

// BankMock tracks balances per address string, including module accounts.
type BankMock struct {
	balances map[string]sdk.Coins
}

func NewBankMock() *BankMock {
	return &BankMock{balances: make(map[string]sdk.Coins)}
}

// Fund credits an account out of thin air.
func (b *BankMock) Fund(addr sdk.AccAddress, coins ...sdk.Coin) {
	b.balances[addr.String()] = b.balances[addr.String()].Add(coins...)
}

// Balance returns the amount of denom held by addr.
func (b *BankMock) Balance(addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

func (b *BankMock) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return b.Balance(addr, denom)
}

// ModuleBalance returns the amount of denom held by a module account.
func (b *BankMock) ModuleBalance(module, denom string) sdk.Coin {
	return b.Balance(authtypes.NewModuleAddress(module), denom)
}

// Total sums all balances of denom, for conservation checks.
func (b *BankMock) Total(denom string) sdk.Coin {
	total := sdk.NewCoin(denom, sdkmath.ZeroInt())
	for _, coins := range b.balances {
		total.Amount = total.Amount.Add(coins.AmountOf(denom))
	}
	return total
}

func (b *BankMock) send(from, to string, amt sdk.Coins) error {
	remaining, neg := b.balances[from].SafeSub(amt...)
	if neg {
		return fmt.Errorf("insufficient funds: %s holds %s, needs %s", from, b.balances[from], amt)
	}
	b.balances[from] = remaining
	b.balances[to] = b.balances[to].Add(amt...)
	return nil
}

func (b *BankMock) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.send(senderAddr.String(), authtypes.NewModuleAddress(recipientModule).String(), amt)
}

func (b *BankMock) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.send(authtypes.NewModuleAddress(senderModule).String(), recipientAddr.String(), amt)
}

// RegistryMock is an in-memory asset registry with injectable failures.
type RegistryMock struct {
	owners  map[string]sdk.AccAddress
	royalty *types.RoyaltyInfo
	err     error
}

func NewRegistryMock() *RegistryMock {
	return &RegistryMock{owners: make(map[string]sdk.AccAddress)}
}

// SetOwner records token ownership.
func (r *RegistryMock) SetOwner(tokenID string, owner sdk.AccAddress) {
	r.owners[tokenID] = owner
}

// SetRoyalty configures the collection royalty; nil means no royalty.
func (r *RegistryMock) SetRoyalty(info *types.RoyaltyInfo) {
	r.royalty = info
}

// FailWith makes every subsequent registry call return err until reset
// with nil.
func (r *RegistryMock) FailWith(err error) {
	r.err = err
}

func (r *RegistryMock) OwnerOf(_ sdk.Context, tokenID string) (sdk.AccAddress, error) {
	if r.err != nil {
		return nil, r.err
	}
	owner, ok := r.owners[tokenID]
	if !ok {
		return nil, fmt.Errorf("unknown token %s", tokenID)
	}
	return owner, nil
}

func (r *RegistryMock) Transfer(_ sdk.Context, tokenID string, from, to sdk.AccAddress) error {
	if r.err != nil {
		return r.err
	}
	owner, ok := r.owners[tokenID]
	if !ok {
		return fmt.Errorf("unknown token %s", tokenID)
	}
	if !owner.Equals(from) {
		return fmt.Errorf("token %s held by %s, not %s", tokenID, owner, from)
	}
	r.owners[tokenID] = to
	return nil
}

func (r *RegistryMock) RoyaltyInfo(_ sdk.Context) (*types.RoyaltyInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.royalty, nil
}
