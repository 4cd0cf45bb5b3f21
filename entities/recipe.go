package entities

import (
	"time"

	"github.com/google/uuid"
)

// RecipeSuggestion is one AI-generated candidate recipe, kept per user.
// UsedIngredients is the ingredient set captured at generation time; it
// drives the inventory reconciliation when the recipe is completed.
type RecipeSuggestion struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Title           string    `json:"title"`
	MainIngredient  string    `json:"main_ingredient,omitempty"`
	PrepTime        string    `json:"prep_time"`
	Servings        int       `json:"servings"`
	Difficulty      string    `json:"difficulty"`
	Ingredients     string    `json:"ingredients" gorm:"type:text"`      // JSON array of strings
	Instructions    string    `json:"instructions" gorm:"type:text"`     // JSON array of steps
	UsedIngredients string    `json:"used_ingredients" gorm:"type:text"` // JSON array of strings
	Saved           bool      `json:"saved"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type RecipeCompletion struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	RecipeID    uuid.UUID `json:"recipe_id"`
	CompletedAt time.Time `gorm:"type:timestamp" json:"completed_at"`

	User   *User             `gorm:"foreignKey:UserID"`
	Recipe *RecipeSuggestion `gorm:"foreignKey:RecipeID"`
}
