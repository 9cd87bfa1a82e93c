package recipes

import (
	"context"
	"testing"

	"github.com/angelmondragon/kitchenops/internal/notify"
	pkgerrors "github.com/angelmondragon/kitchenops/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderAddAndRemove(t *testing.T) {
	b := NewBuilder(&notify.Recorder{})
	ctx := context.Background()

	require.NoError(t, b.AddIngredient(ctx, Ingredient{Item: "Tomatoes", Quantity: 2, Unit: "kg"}))
	require.NoError(t, b.AddIngredient(ctx, Ingredient{Item: "Olive Oil", Quantity: 0.1, Unit: "liters"}))
	require.NoError(t, b.AddIngredient(ctx, Ingredient{Item: "Pasta", Quantity: 1, Unit: "kg"}))
	require.Len(t, b.Ingredients(), 3)

	b.RemoveIngredient(1)
	list := b.Ingredients()
	require.Len(t, list, 2)
	assert.Equal(t, "Tomatoes", list[0].Item)
	assert.Equal(t, "Pasta", list[1].Item)

	// Out-of-range removals are silent no-ops.
	b.RemoveIngredient(-1)
	b.RemoveIngredient(5)
	assert.Len(t, b.Ingredients(), 2)
}

func TestBuilderValidatesIngredientFields(t *testing.T) {
	recorder := &notify.Recorder{}
	b := NewBuilder(recorder)
	ctx := context.Background()

	tests := []Ingredient{
		{Quantity: 1, Unit: "tsp"},
		{Item: "Salt", Unit: "tsp"},
		{Item: "Salt", Quantity: 1},
	}
	for _, ingredient := range tests {
		err := b.AddIngredient(ctx, ingredient)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
	}
	assert.Empty(t, b.Ingredients())

	last, ok := recorder.Last()
	require.True(t, ok)
	assert.Equal(t, "Please fill in all ingredient fields.", last.Message)
}

func TestBuilderKeepsDuplicateNamesDistinct(t *testing.T) {
	b := NewBuilder(nil)
	ctx := context.Background()

	require.NoError(t, b.AddIngredient(ctx, Ingredient{Item: "Salt", Quantity: 1, Unit: "tsp"}))
	require.NoError(t, b.AddIngredient(ctx, Ingredient{Item: "Salt", Quantity: 2, Unit: "tbsp"}))

	list := b.Ingredients()
	require.Len(t, list, 2)
	assert.Equal(t, 1.0, list[0].Quantity)
	assert.Equal(t, 2.0, list[1].Quantity)
}

func TestBuilderReset(t *testing.T) {
	b := NewBuilder(nil)
	require.NoError(t, b.AddIngredient(context.Background(), Ingredient{Item: "Salt", Quantity: 1, Unit: "tsp"}))

	b.Reset()
	assert.Empty(t, b.Ingredients())
}
