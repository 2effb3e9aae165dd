package marketplace

import (
	"github.com/galleria-zone/galleria-node/x/marketplace/keeper"
	"github.com/galleria-zone/galleria-node/x/marketplace/types"
)

const (
	// StoreKey represents storekey of marketplace module
	StoreKey = types.StoreKey
	// ModuleName represents current module name
	ModuleName = types.ModuleName
)

type (
	// Keeper defines keeper of marketplace module
	Keeper = keeper.Keeper
)

var (
	// NewKeeper creates new keeper instance of marketplace module
	NewKeeper = keeper.NewKeeper
)
