package pantry

import (
	"encoding/json"
	"strings"
)

const (
	DefaultRecipeCount   = 3
	DefaultRecipeTitle   = "Receta"
	DefaultPrepTime      = "30 min"
	DefaultServings      = 4
	DefaultDifficulty    = "Media"
	DefaultStepDelimiter = ". "
)

type GenerationRequest struct {
	Ingredients []string `json:"ingredients"`
	Count       int      `json:"count"`
}

// BuildGenerationRequest normalizes user input into the request shape the
// generator expects: a never-nil ingredient slice and a positive count
// (defaulting to the usual batch of three).
func BuildGenerationRequest(ingredients []string, count int) GenerationRequest {
	if ingredients == nil {
		ingredients = []string{}
	}
	if count <= 0 {
		count = DefaultRecipeCount
	}
	return GenerationRequest{Ingredients: ingredients, Count: count}
}

// RawRecipe mirrors the loosely-typed generator payload. Backends have
// been observed sending either "time" or "prepTime", and instructions as
// either a JSON array or a single delimited string.
type RawRecipe struct {
	Title        string          `json:"title"`
	Ingredients  []string        `json:"ingredients"`
	Instructions json.RawMessage `json:"instructions"`
	Time         string          `json:"time"`
	PrepTime     string          `json:"prepTime"`
	Servings     int             `json:"servings"`
	Difficulty   string          `json:"difficulty"`
}

// Suggestion is the one canonical recipe record. No other component
// branches on the raw generator shape.
type Suggestion struct {
	Title          string   `json:"title"`
	MainIngredient string   `json:"main_ingredient,omitempty"`
	Ingredients    []string `json:"ingredients"`
	Instructions   []string `json:"instructions"`
	PrepTime       string   `json:"prep_time"`
	Servings       int      `json:"servings"`
	Difficulty     string   `json:"difficulty"`
	Saved          bool     `json:"saved"`
}

// NormalizeRecipe converts a raw generator record into a Suggestion,
// substituting defaults for any absent field. It never fails: malformed
// or missing ingredients and instructions coerce to empty sequences.
func NormalizeRecipe(raw RawRecipe, fallbackMain, stepDelimiter string) Suggestion {
	title := raw.Title
	if title == "" {
		title = DefaultRecipeTitle
	}

	prepTime := raw.Time
	if prepTime == "" {
		prepTime = raw.PrepTime
	}
	if prepTime == "" {
		prepTime = DefaultPrepTime
	}

	servings := raw.Servings
	if servings <= 0 {
		servings = DefaultServings
	}

	difficulty := raw.Difficulty
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	ingredients := raw.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	return Suggestion{
		Title:          title,
		MainIngredient: fallbackMain,
		Ingredients:    ingredients,
		Instructions:   normalizeInstructions(raw.Instructions, stepDelimiter),
		PrepTime:       prepTime,
		Servings:       servings,
		Difficulty:     difficulty,
	}
}

func normalizeInstructions(raw json.RawMessage, delimiter string) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var steps []string
	if err := json.Unmarshal(raw, &steps); err == nil {
		if steps == nil {
			return []string{}
		}
		return steps
	}

	var single string
	if err := json.Unmarshal(raw, &single); err != nil {
		return []string{}
	}
	return SplitSteps(single, delimiter)
}

// SplitSteps breaks a single delimited instruction string into steps.
// The delimiter is backend-dependent and therefore configurable.
func SplitSteps(instructions, delimiter string) []string {
	if delimiter == "" {
		delimiter = DefaultStepDelimiter
	}

	parts := strings.Split(instructions, delimiter)
	steps := make([]string, 0, len(parts))
	for _, part := range parts {
		step := strings.TrimSpace(part)
		if step != "" {
			steps = append(steps, step)
		}
	}
	return steps
}
