package recipes

// Ingredient is one line of a recipe. Quantities are fractional (0.1 liters
// of olive oil), unlike inventory counts.
type Ingredient struct {
	Item     string  `json:"item" validate:"required"`
	Quantity float64 `json:"quantity" validate:"required"`
	Unit     string  `json:"unit" validate:"required"`
}

// Recipe is a named, ordered list of ingredients.
type Recipe struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Ingredients []Ingredient `json:"ingredients"`
	Servings    int          `json:"servings"`
	Category    string       `json:"category"`
}

func (r Recipe) RecordID() string { return r.ID }

// Draft is the add/edit form payload. Finalizing requires a name, a
// category and at least one ingredient; servings default to 1.
type Draft struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Ingredients []Ingredient `json:"ingredients"`
	Servings    int          `json:"servings"`
	Category    string       `json:"category" validate:"required"`
}
