package recipe

import (
	"context"
	"time"

	"SnackStock-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateSuggestion(ctx context.Context, suggestion *entities.RecipeSuggestion) error
		GetSuggestionByID(ctx context.Context, id string) (*entities.RecipeSuggestion, error)
		GetSuggestions(ctx context.Context, userID string) ([]*entities.RecipeSuggestion, error)
		UpdateSuggestion(ctx context.Context, suggestion *entities.RecipeSuggestion) error
		DeleteSuggestionsByUser(ctx context.Context, userID string) error
		AddCompletion(ctx context.Context, userID, recipeID string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateSuggestion(ctx context.Context, suggestion *entities.RecipeSuggestion) error {
	return r.db.WithContext(ctx).Create(suggestion).Error
}

func (r *recipeRepository) GetSuggestionByID(ctx context.Context, id string) (*entities.RecipeSuggestion, error) {
	var suggestion entities.RecipeSuggestion
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&suggestion).Error; err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (r *recipeRepository) GetSuggestions(ctx context.Context, userID string) ([]*entities.RecipeSuggestion, error) {
	var suggestions []*entities.RecipeSuggestion
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&suggestions).Error; err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *recipeRepository) UpdateSuggestion(ctx context.Context, suggestion *entities.RecipeSuggestion) error {
	return r.db.WithContext(ctx).Save(suggestion).Error
}

func (r *recipeRepository) DeleteSuggestionsByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.RecipeSuggestion{}).Error
}

func (r *recipeRepository) AddCompletion(ctx context.Context, userID, recipeID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return err
	}

	completion := entities.RecipeCompletion{
		ID:          uuid.New(),
		UserID:      userUUID,
		RecipeID:    recipeUUID,
		CompletedAt: time.Now(),
	}

	return r.db.WithContext(ctx).Create(&completion).Error
}
