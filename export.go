package recipeclip

import "context"

// RecipeStore persists an exported copy of the collection with atomic
// semantics. Save writes to a temporary location; Commit makes changes
// permanent; Abort discards pending changes.
type RecipeStore interface {
	Save(ctx context.Context, recipe *Recipe) error
	Commit() error
	Abort() error
}
