package types_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galleria-zone/galleria-node/testutil"
	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Params)
		valid  bool
	}{
		{"defaults", func(*types.Params) {}, true},
		{"zero fee", func(p *types.Params) { p.FeePercent = math.LegacyZeroDec() }, true},
		{"negative fee", func(p *types.Params) { p.FeePercent = math.LegacyNewDec(-1) }, false},
		{"fee above 100", func(p *types.Params) { p.FeePercent = math.LegacyNewDec(101) }, false},
		{"zero min price", func(p *types.Params) { p.MinPrice = math.ZeroInt() }, false},
		{"zero increment", func(p *types.Params) { p.MinBidIncrement = math.ZeroInt() }, false},
		{"max expiry below min", func(p *types.Params) { p.MaxExpiry = p.MinExpiry - time.Hour }, false},
		{"zero buffer", func(p *types.Params) { p.BufferDuration = 0 }, false},
		{"zero closed window", func(p *types.Params) { p.ClosedDuration = 0 }, false},
		{"bad match policy", func(p *types.Params) { p.MatchPolicy = "best-effort" }, false},
		{"crossing policy", func(p *types.Params) { p.MatchPolicy = types.MatchPolicyCrossing }, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params := types.DefaultParams()
			test.mutate(&params)

			err := params.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParamsValidatePrice(t *testing.T) {
	params := types.DefaultParams()

	require.NoError(t, params.ValidatePrice(testutil.Coin(t, 1000)))
	require.ErrorIs(t, params.ValidatePrice(testutil.Coin(t, 999)), types.ErrInvalidPrice)

	bad := testutil.Coin(t, 5000)
	bad.Denom = "uother"
	require.ErrorIs(t, params.ValidatePrice(bad), types.ErrInvalidPrice)
}

func TestParamsValidateExpiry(t *testing.T) {
	params := types.DefaultParams()

	require.NoError(t, params.ValidateExpiry(now, nil))
	require.NoError(t, params.ValidateExpiry(now, testutil.ExpiryAt(now, params.MinExpiry)))
	require.NoError(t, params.ValidateExpiry(now, testutil.ExpiryAt(now, params.MaxExpiry)))

	err := params.ValidateExpiry(now, testutil.ExpiryAt(now, params.MinExpiry-time.Second))
	require.ErrorIs(t, err, types.ErrInvalidExpiry)

	err = params.ValidateExpiry(now, testutil.ExpiryAt(now, params.MaxExpiry+time.Second))
	require.ErrorIs(t, err, types.ErrInvalidExpiry)
}

func TestParamsIsOperator(t *testing.T) {
	operator := testutil.AccAddress(t)
	outsider := testutil.AccAddress(t)

	params := types.DefaultParams()
	assert.False(t, params.IsOperator(operator))

	params.Operators = append(params.Operators, operator)
	assert.True(t, params.IsOperator(operator))
	assert.False(t, params.IsOperator(outsider))
}
