package recipes

import (
	"context"

	"github.com/angelmondragon/kitchenops/internal/notify"
	"github.com/angelmondragon/kitchenops/internal/validate"
	"github.com/angelmondragon/kitchenops/pkg/enums"
)

// Builder holds the transient ingredient list while a recipe form is open.
// It is UI draft state, not domain state: nothing here touches the store
// until the draft is finalized through the service.
type Builder struct {
	notifier    notify.Sink
	ingredients []Ingredient
}

func NewBuilder(notifier notify.Sink) *Builder {
	return &Builder{notifier: notifier}
}

// AddIngredient validates the current ingredient draft and appends it.
// Duplicate item names are allowed and kept distinct.
func (b *Builder) AddIngredient(ctx context.Context, ingredient Ingredient) error {
	if err := validate.Struct(ingredient); err != nil {
		if b.notifier != nil {
			b.notifier.Notify(ctx, notify.Notification{
				Title:    "Error",
				Message:  "Please fill in all ingredient fields.",
				Severity: enums.SeverityDestructive,
			})
		}
		return err
	}
	b.ingredients = append(b.ingredients, ingredient)
	return nil
}

// RemoveIngredient drops the entry at a position. Out-of-range indexes are a
// silent no-op.
func (b *Builder) RemoveIngredient(index int) {
	if index < 0 || index >= len(b.ingredients) {
		return
	}
	b.ingredients = append(b.ingredients[:index], b.ingredients[index+1:]...)
}

// Ingredients returns a copy of the draft list in insertion order.
func (b *Builder) Ingredients() []Ingredient {
	out := make([]Ingredient, len(b.ingredients))
	copy(out, b.ingredients)
	return out
}

// Reset clears the draft list, as on cancel or after the recipe is saved.
func (b *Builder) Reset() {
	b.ingredients = nil
}
