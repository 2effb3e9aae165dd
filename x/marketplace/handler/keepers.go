package handler

import (
	"github.com/galleria-zone/galleria-node/x/marketplace/keeper"
)

// Keepers aggregates the keepers needed by the marketplace handler
type Keepers struct {
	Marketplace keeper.Keeper
}
