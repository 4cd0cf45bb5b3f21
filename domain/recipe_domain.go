package domain

import (
	"errors"

	"SnackStock-Backend/pkg/pantry"
)

var (
	MessageSuccessGenerateRecipes = "recipes generated successfully"
	MessageSuccessGetRecipes      = "recipes retrieved successfully"
	MessageSuccessCompleteRecipe  = "recipe completed, ingredients consumed from inventory"
	MessageSuccessToggleSaved     = "recipe saved state updated"
	MessageSuccessClearRecipes    = "recipes cleared successfully"

	MessageFailedGenerateRecipes = "failed to generate recipes"
	MessageFailedGetRecipes      = "failed to retrieve recipes"
	MessageFailedCompleteRecipe  = "failed to complete recipe"
	MessageFailedToggleSaved     = "failed to update recipe saved state"
	MessageFailedClearRecipes    = "failed to clear recipes"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrGeminiAPIFailed          = errors.New("gemini API processing failed")
	ErrNoIngredients            = errors.New("no ingredients selected for recipe generation")
)

type (
	GenerateRecipesRequest struct {
		Ingredients []string `json:"ingredients" validate:"required,min=1"`
		Count       int      `json:"count" validate:"omitempty,min=1,max=10"`
	}

	RecipeResponse struct {
		ID             string   `json:"id"`
		Title          string   `json:"title"`
		MainIngredient string   `json:"main_ingredient,omitempty"`
		Ingredients    []string `json:"ingredients"`
		Instructions   []string `json:"instructions"`
		PrepTime       string   `json:"prep_time"`
		Servings       int      `json:"servings"`
		Difficulty     string   `json:"difficulty"`
		Saved          bool     `json:"saved"`
	}

	GenerateRecipesResponse struct {
		Recipes []RecipeResponse `json:"recipes"`
		Total   int              `json:"total"`
	}

	CompleteRecipeResponse struct {
		ConsumedItems []ConsumedItem `json:"consumed_items"`
		Total         int            `json:"total"`
	}

	ConsumedItem struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
		Action   string `json:"action"`
	}
)

// FromSuggestion maps the canonical normalized record onto the API shape.
func FromSuggestion(id string, s pantry.Suggestion, saved bool) RecipeResponse {
	return RecipeResponse{
		ID:             id,
		Title:          s.Title,
		MainIngredient: s.MainIngredient,
		Ingredients:    s.Ingredients,
		Instructions:   s.Instructions,
		PrepTime:       s.PrepTime,
		Servings:       s.Servings,
		Difficulty:     s.Difficulty,
		Saved:          saved,
	}
}
