package engine

import "github.com/lixenwraith/vi-snake/core"

// AnyStore provides type-erased operations for lifecycle management
// World destroys entities and clears stores through it without knowing concrete types
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}
