package pantry

import (
	"encoding/json"
	"testing"
)

func TestBuildGenerationRequest(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []string
		count       int
		wantLen     int
		wantCount   int
	}{
		{"defaults count", []string{"leche"}, 0, 1, 3},
		{"negative count", []string{"pan"}, -2, 1, 3},
		{"explicit count", []string{"pan", "queso"}, 5, 2, 5},
		{"nil ingredients", nil, 3, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := BuildGenerationRequest(tt.ingredients, tt.count)
			if req.Ingredients == nil {
				t.Fatal("ingredients must never be nil")
			}
			if len(req.Ingredients) != tt.wantLen {
				t.Fatalf("got %d ingredients, want %d", len(req.Ingredients), tt.wantLen)
			}
			if req.Count != tt.wantCount {
				t.Fatalf("count = %d, want %d", req.Count, tt.wantCount)
			}
		})
	}
}

func TestNormalizeRecipeDefaults(t *testing.T) {
	raw := RawRecipe{Instructions: json.RawMessage(`"Paso 1. Paso 2."`)}

	got := NormalizeRecipe(raw, "leche", "")

	if got.Title != "Receta" {
		t.Fatalf("title = %q, want %q", got.Title, "Receta")
	}
	if got.PrepTime != "30 min" {
		t.Fatalf("prep time = %q, want %q", got.PrepTime, "30 min")
	}
	if got.Servings != 4 {
		t.Fatalf("servings = %d, want 4", got.Servings)
	}
	if got.Difficulty != "Media" {
		t.Fatalf("difficulty = %q, want %q", got.Difficulty, "Media")
	}
	if got.MainIngredient != "leche" {
		t.Fatalf("main ingredient = %q, want %q", got.MainIngredient, "leche")
	}
	if got.Ingredients == nil || len(got.Ingredients) != 0 {
		t.Fatalf("ingredients = %v, want empty slice", got.Ingredients)
	}
	if len(got.Instructions) == 0 {
		t.Fatal("instructions must be a non-empty sequence")
	}
	if len(got.Instructions) == 1 && got.Instructions[0] == "Paso 1. Paso 2." {
		t.Fatal("delimited string was not split into steps")
	}
}

func TestNormalizeRecipePrefersTimeOverPrepTime(t *testing.T) {
	tests := []struct {
		name string
		raw  RawRecipe
		want string
	}{
		{"time wins", RawRecipe{Time: "15 min", PrepTime: "45 min"}, "15 min"},
		{"prepTime as fallback", RawRecipe{PrepTime: "45 min"}, "45 min"},
		{"default when both absent", RawRecipe{}, "30 min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRecipe(tt.raw, "", "")
			if got.PrepTime != tt.want {
				t.Fatalf("prep time = %q, want %q", got.PrepTime, tt.want)
			}
		})
	}
}

func TestNormalizeRecipeInstructions(t *testing.T) {
	tests := []struct {
		name      string
		raw       json.RawMessage
		delimiter string
		want      []string
	}{
		{"array passes through", json.RawMessage(`["Picar", "Cocinar"]`), "", []string{"Picar", "Cocinar"}},
		{"string splits on delimiter", json.RawMessage(`"Picar. Cocinar. Servir."`), ". ", []string{"Picar", "Cocinar", "Servir."}},
		{"custom delimiter", json.RawMessage(`"Picar|Cocinar"`), "|", []string{"Picar", "Cocinar"}},
		{"absent coerces to empty", nil, "", []string{}},
		{"null coerces to empty", json.RawMessage(`null`), "", []string{}},
		{"wrong type coerces to empty", json.RawMessage(`42`), "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRecipe(RawRecipe{Instructions: tt.raw}, "", tt.delimiter)
			if got.Instructions == nil {
				t.Fatal("instructions must never be nil")
			}
			if len(got.Instructions) != len(tt.want) {
				t.Fatalf("got %d steps %v, want %d", len(got.Instructions), got.Instructions, len(tt.want))
			}
			for i := range tt.want {
				if got.Instructions[i] != tt.want[i] {
					t.Fatalf("step %d = %q, want %q", i, got.Instructions[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeRecipeKeepsBackendFields(t *testing.T) {
	raw := RawRecipe{
		Title:       "Tortilla de papas",
		Ingredients: []string{"papas", "huevos"},
		Time:        "40 min",
		Servings:    2,
		Difficulty:  "Fácil",
	}

	got := NormalizeRecipe(raw, "papas", "")

	if got.Title != "Tortilla de papas" || got.Servings != 2 || got.Difficulty != "Fácil" {
		t.Fatalf("backend-supplied fields were overridden: %+v", got)
	}
	if len(got.Ingredients) != 2 {
		t.Fatalf("ingredients = %v", got.Ingredients)
	}
	if got.Saved {
		t.Fatal("new suggestions start unsaved")
	}
}
