package recipes

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/kitchenops/internal/notify"
	"github.com/angelmondragon/kitchenops/internal/search"
	"github.com/angelmondragon/kitchenops/internal/store"
	"github.com/angelmondragon/kitchenops/internal/validate"
	"github.com/angelmondragon/kitchenops/pkg/enums"
	pkgerrors "github.com/angelmondragon/kitchenops/pkg/errors"
	"github.com/angelmondragon/kitchenops/pkg/ident"
	"go.uber.org/multierr"
)

// ServiceParams groups dependencies for the recipe service.
type ServiceParams struct {
	IDs      ident.Generator
	Notifier notify.Sink
}

// Service exposes the recipe page operations.
type Service interface {
	Add(ctx context.Context, draft Draft) (Recipe, error)
	Update(ctx context.Context, id string, draft Draft) (Recipe, error)
	Delete(ctx context.Context, id string)
	Sell(ctx context.Context, id string, portions int) error
	Get(id string) (Recipe, bool)
	List() []Recipe
	Search(query, categoryFilter string) []Recipe
	Load(recipes ...Recipe)
}

type service struct {
	records  *store.Store[Recipe]
	ids      ident.Generator
	notifier notify.Sink
}

// NewService builds a recipe service with the required collaborators.
func NewService(params ServiceParams) (Service, error) {
	if params.IDs == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "id generator is required")
	}
	if params.Notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "notification sink is required")
	}
	return &service{
		records:  store.New[Recipe](),
		ids:      params.IDs,
		notifier: params.Notifier,
	}, nil
}

// Add finalizes a draft into a stored recipe.
func (s *service) Add(ctx context.Context, draft Draft) (Recipe, error) {
	if err := validateDraft(draft); err != nil {
		s.notifyError(ctx, "Please fill in all required fields and add at least one ingredient.")
		return Recipe{}, err
	}

	recipe := newRecipe(s.ids.NewID(), draft)
	s.records.Add(recipe)

	s.notifySuccess(ctx, "Recipe added successfully.")
	return recipe, nil
}

// Update re-validates the draft and replaces the recipe at id.
func (s *service) Update(ctx context.Context, id string, draft Draft) (Recipe, error) {
	if err := validateDraft(draft); err != nil {
		s.notifyError(ctx, "Please fill in all required fields and add at least one ingredient.")
		return Recipe{}, err
	}
	if _, ok := s.records.Get(id); !ok {
		return Recipe{}, pkgerrors.New(pkgerrors.CodeNotFound, "recipe not found")
	}

	recipe := newRecipe(id, draft)
	s.records.Replace(id, recipe)

	s.notifySuccess(ctx, "Recipe updated successfully.")
	return recipe, nil
}

// Delete removes the recipe unconditionally. Missing ids are a silent no-op.
func (s *service) Delete(ctx context.Context, id string) {
	s.records.Delete(id)
	s.notifySuccess(ctx, "Recipe deleted successfully.")
}

// Sell reports the ingredient quantities consumed by preparing the recipe.
// Inventory is not cascaded; entities stay independent.
func (s *service) Sell(ctx context.Context, id string, portions int) error {
	recipe, ok := s.records.Get(id)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "recipe not found")
	}
	if portions < 1 {
		portions = 1
	}

	lines := make([]string, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		lines = append(lines, fmt.Sprintf("%g %s of %s",
			ingredient.Quantity*float64(portions), ingredient.Unit, ingredient.Item))
	}

	s.notifier.Notify(ctx, notify.Notification{
		Title:    "Recipe Sold",
		Message:  "Ingredients reduced: " + strings.Join(lines, ", "),
		Severity: enums.SeverityInfo,
	})
	return nil
}

func (s *service) Get(id string) (Recipe, bool) {
	return s.records.Get(id)
}

func (s *service) List() []Recipe {
	return s.records.List()
}

// Search filters by free text over name and category, AND an optional
// category filter.
func (s *service) Search(query, categoryFilter string) []Recipe {
	var out []Recipe
	for _, recipe := range s.records.List() {
		if !search.MatchesQuery(query, recipe.Name, recipe.Category) {
			continue
		}
		if !search.MatchesFilter(categoryFilter, recipe.Category) {
			continue
		}
		out = append(out, recipe)
	}
	return out
}

// Load seeds recipes verbatim.
func (s *service) Load(recipes ...Recipe) {
	for _, recipe := range recipes {
		s.records.Add(recipe)
	}
}

func newRecipe(id string, draft Draft) Recipe {
	servings := draft.Servings
	if servings < 1 {
		servings = 1
	}
	ingredients := make([]Ingredient, len(draft.Ingredients))
	copy(ingredients, draft.Ingredients)

	return Recipe{
		ID:          id,
		Name:        draft.Name,
		Description: draft.Description,
		Ingredients: ingredients,
		Servings:    servings,
		Category:    draft.Category,
	}
}

func validateDraft(draft Draft) error {
	var ingredientsErr error
	if len(draft.Ingredients) == 0 {
		ingredientsErr = pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"ingredients": "at least one ingredient is required"})
	}
	return multierr.Combine(validate.Struct(draft), ingredientsErr)
}

func (s *service) notifySuccess(ctx context.Context, message string) {
	s.notifier.Notify(ctx, notify.Notification{
		Title:    "Success",
		Message:  message,
		Severity: enums.SeverityInfo,
	})
}

func (s *service) notifyError(ctx context.Context, message string) {
	s.notifier.Notify(ctx, notify.Notification{
		Title:    "Error",
		Message:  message,
		Severity: enums.SeverityDestructive,
	})
}
