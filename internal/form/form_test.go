package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type itemDraft struct {
	Name     string
	Quantity int
}

func TestFormStartsInAddMode(t *testing.T) {
	var f Form[itemDraft]
	assert.False(t, f.Editing())
	assert.Empty(t, f.EditingID())
	assert.Zero(t, f.Draft())
}

func TestFormEditCycle(t *testing.T) {
	var f Form[itemDraft]

	f.BeginEdit("3", itemDraft{Name: "Olive Oil", Quantity: 5})
	assert.True(t, f.Editing())
	assert.Equal(t, "3", f.EditingID())
	assert.Equal(t, "Olive Oil", f.Draft().Name)

	f.SetDraft(itemDraft{Name: "Olive Oil", Quantity: 8})
	assert.Equal(t, 8, f.Draft().Quantity)
	assert.Equal(t, "3", f.EditingID())

	f.Reset()
	assert.False(t, f.Editing())
	assert.Zero(t, f.Draft())
}
