package recipe

import (
	"context"
	"errors"
	"testing"

	"SnackStock-Backend/domain"
	"SnackStock-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	suggestions map[string]*entities.RecipeSuggestion
	completions []string
	cleared     []string
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{suggestions: map[string]*entities.RecipeSuggestion{}}
}

func (r *fakeRecipeRepository) CreateSuggestion(_ context.Context, suggestion *entities.RecipeSuggestion) error {
	r.suggestions[suggestion.ID.String()] = suggestion
	return nil
}

func (r *fakeRecipeRepository) GetSuggestionByID(_ context.Context, id string) (*entities.RecipeSuggestion, error) {
	suggestion, ok := r.suggestions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return suggestion, nil
}

func (r *fakeRecipeRepository) GetSuggestions(_ context.Context, userID string) ([]*entities.RecipeSuggestion, error) {
	var out []*entities.RecipeSuggestion
	for _, s := range r.suggestions {
		if s.UserID.String() == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRecipeRepository) UpdateSuggestion(_ context.Context, suggestion *entities.RecipeSuggestion) error {
	r.suggestions[suggestion.ID.String()] = suggestion
	return nil
}

func (r *fakeRecipeRepository) DeleteSuggestionsByUser(_ context.Context, userID string) error {
	r.cleared = append(r.cleared, userID)
	for id, s := range r.suggestions {
		if s.UserID.String() == userID {
			delete(r.suggestions, id)
		}
	}
	return nil
}

func (r *fakeRecipeRepository) AddCompletion(_ context.Context, _, recipeID string) error {
	r.completions = append(r.completions, recipeID)
	return nil
}

type fakeInventoryRepository struct {
	items     []*entities.PantryItem
	deleted   []string
	deleteErr map[string]error
}

func (r *fakeInventoryRepository) AddPantryItem(_ context.Context, item *entities.PantryItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakeInventoryRepository) GetPantryItemByID(_ context.Context, id string) (*entities.PantryItem, error) {
	for _, item := range r.items {
		if item.ID.String() == id {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInventoryRepository) UpdatePantryItem(_ context.Context, _ *entities.PantryItem) error {
	return nil
}

func (r *fakeInventoryRepository) DeletePantryItem(_ context.Context, id string) error {
	if err, ok := r.deleteErr[id]; ok {
		return err
	}
	r.deleted = append(r.deleted, id)
	for i, item := range r.items {
		if item.ID.String() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeInventoryRepository) GetPantryItems(_ context.Context, userID string) ([]*entities.PantryItem, error) {
	var out []*entities.PantryItem
	for _, item := range r.items {
		if item.UserID.String() == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepository) CreateReceiptScan(_ context.Context, _ *entities.ReceiptScan) error {
	return nil
}

func (r *fakeInventoryRepository) GetReceiptScanByID(_ context.Context, _ string) (*entities.ReceiptScan, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInventoryRepository) UpdateReceiptScan(_ context.Context, _ *entities.ReceiptScan) error {
	return nil
}

type fakeStatsService struct {
	recorded  []domain.RecordConsumptionRequest
	recordErr error
}

func (s *fakeStatsService) RecordConsumption(_ context.Context, req domain.RecordConsumptionRequest, _ string) error {
	if s.recordErr != nil {
		return s.recordErr
	}
	s.recorded = append(s.recorded, req)
	return nil
}

func (s *fakeStatsService) GetStatistics(_ context.Context, _ string) (domain.StatisticsResponse, error) {
	return domain.StatisticsResponse{}, nil
}

func seedSuggestion(repo *fakeRecipeRepository, userID uuid.UUID, usedIngredients string) *entities.RecipeSuggestion {
	suggestion := &entities.RecipeSuggestion{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           "Tortilla de papas",
		PrepTime:        "30 min",
		Servings:        4,
		Difficulty:      "Media",
		Ingredients:     `["Papas","Huevos"]`,
		Instructions:    `["Pelar las papas","Batir los huevos"]`,
		UsedIngredients: usedIngredients,
	}
	repo.suggestions[suggestion.ID.String()] = suggestion
	return suggestion
}

func seedItem(repo *fakeInventoryRepository, userID uuid.UUID, name, category string) *entities.PantryItem {
	item := &entities.PantryItem{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		Quantity: 2,
		Category: category,
	}
	repo.items = append(repo.items, item)
	return item
}

func TestCompleteRecipeConsumesMatchedItems(t *testing.T) {
	userID := uuid.New()
	recipeRepo := newFakeRecipeRepository()
	inventoryRepo := &fakeInventoryRepository{}
	statsSvc := &fakeStatsService{}

	suggestion := seedSuggestion(recipeRepo, userID, `["papas","Huevos","Azafrán"]`)
	papas := seedItem(inventoryRepo, userID, "Papas", "Verduras")
	huevos := seedItem(inventoryRepo, userID, "huevos", "Lácteos")
	seedItem(inventoryRepo, userID, "Pan", "Panadería")

	service := NewRecipeService(recipeRepo, inventoryRepo, statsSvc)
	res, err := service.CompleteRecipe(context.Background(), suggestion.ID.String(), userID.String())
	if err != nil {
		t.Fatalf("CompleteRecipe returned error: %v", err)
	}

	if res.Total != 2 {
		t.Fatalf("expected 2 consumed items, got %d", res.Total)
	}
	if res.ConsumedItems[0].Name != "Papas" || res.ConsumedItems[1].Name != "huevos" {
		t.Fatalf("unexpected consumed names: %+v", res.ConsumedItems)
	}
	for _, item := range res.ConsumedItems {
		if item.Action != "consumed" {
			t.Fatalf("expected action consumed, got %q", item.Action)
		}
	}

	if len(statsSvc.recorded) != 2 {
		t.Fatalf("expected 2 consumption records, got %d", len(statsSvc.recorded))
	}
	if statsSvc.recorded[0].Quantity != 1 {
		t.Fatalf("consumption is recorded with quantity 1, got %d", statsSvc.recorded[0].Quantity)
	}
	if statsSvc.recorded[0].Category != "Verduras" {
		t.Fatalf("consumption keeps the item category, got %q", statsSvc.recorded[0].Category)
	}

	if len(inventoryRepo.deleted) != 2 {
		t.Fatalf("expected 2 deletions, got %d", len(inventoryRepo.deleted))
	}
	if inventoryRepo.deleted[0] != papas.ID.String() || inventoryRepo.deleted[1] != huevos.ID.String() {
		t.Fatalf("unexpected deleted IDs: %v", inventoryRepo.deleted)
	}

	if len(recipeRepo.completions) != 1 || recipeRepo.completions[0] != suggestion.ID.String() {
		t.Fatalf("expected completion recorded for %s, got %v", suggestion.ID, recipeRepo.completions)
	}
}

func TestCompleteRecipeNoMatches(t *testing.T) {
	userID := uuid.New()
	recipeRepo := newFakeRecipeRepository()
	inventoryRepo := &fakeInventoryRepository{}
	statsSvc := &fakeStatsService{}

	suggestion := seedSuggestion(recipeRepo, userID, `["Quinoa"]`)
	seedItem(inventoryRepo, userID, "Pan", "Panadería")

	service := NewRecipeService(recipeRepo, inventoryRepo, statsSvc)
	res, err := service.CompleteRecipe(context.Background(), suggestion.ID.String(), userID.String())
	if err != nil {
		t.Fatalf("CompleteRecipe returned error: %v", err)
	}

	if res.Total != 0 || len(res.ConsumedItems) != 0 {
		t.Fatalf("expected empty reconciliation, got %+v", res)
	}
	if len(inventoryRepo.deleted) != 0 {
		t.Fatalf("no items should be deleted, got %v", inventoryRepo.deleted)
	}
	if len(recipeRepo.completions) != 1 {
		t.Fatalf("completion should still be recorded, got %v", recipeRepo.completions)
	}
}

func TestCompleteRecipeContinuesPastItemFailures(t *testing.T) {
	userID := uuid.New()
	recipeRepo := newFakeRecipeRepository()
	inventoryRepo := &fakeInventoryRepository{deleteErr: map[string]error{}}
	statsSvc := &fakeStatsService{}

	suggestion := seedSuggestion(recipeRepo, userID, `["Leche","Pan"]`)
	leche := seedItem(inventoryRepo, userID, "Leche", "Lácteos")
	pan := seedItem(inventoryRepo, userID, "Pan", "Panadería")
	inventoryRepo.deleteErr[leche.ID.String()] = errors.New("db unavailable")

	service := NewRecipeService(recipeRepo, inventoryRepo, statsSvc)
	res, err := service.CompleteRecipe(context.Background(), suggestion.ID.String(), userID.String())
	if err != nil {
		t.Fatalf("one failed item must not fail the batch: %v", err)
	}

	if res.Total != 1 {
		t.Fatalf("expected 1 consumed item, got %d", res.Total)
	}
	if res.ConsumedItems[0].ID != pan.ID.String() {
		t.Fatalf("expected the surviving item to be %s, got %s", pan.ID, res.ConsumedItems[0].ID)
	}
}

func TestCompleteRecipeOwnership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	recipeRepo := newFakeRecipeRepository()
	suggestion := seedSuggestion(recipeRepo, owner, `[]`)

	service := NewRecipeService(recipeRepo, &fakeInventoryRepository{}, &fakeStatsService{})

	_, err := service.CompleteRecipe(context.Background(), suggestion.ID.String(), stranger.String())
	if !errors.Is(err, domain.ErrUnauthorizedRecipeAccess) {
		t.Fatalf("expected ErrUnauthorizedRecipeAccess, got %v", err)
	}

	_, err = service.CompleteRecipe(context.Background(), uuid.NewString(), owner.String())
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestToggleSavedFlipsState(t *testing.T) {
	userID := uuid.New()
	recipeRepo := newFakeRecipeRepository()
	suggestion := seedSuggestion(recipeRepo, userID, `[]`)

	service := NewRecipeService(recipeRepo, &fakeInventoryRepository{}, &fakeStatsService{})

	if err := service.ToggleSaved(context.Background(), suggestion.ID.String(), userID.String()); err != nil {
		t.Fatalf("ToggleSaved returned error: %v", err)
	}
	if !recipeRepo.suggestions[suggestion.ID.String()].Saved {
		t.Fatal("expected suggestion saved after first toggle")
	}

	if err := service.ToggleSaved(context.Background(), suggestion.ID.String(), userID.String()); err != nil {
		t.Fatalf("ToggleSaved returned error: %v", err)
	}
	if recipeRepo.suggestions[suggestion.ID.String()].Saved {
		t.Fatal("expected suggestion unsaved after second toggle")
	}
}

func TestClearSuggestionsRequiresUser(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepository(), &fakeInventoryRepository{}, &fakeStatsService{})

	if err := service.ClearSuggestions(context.Background(), ""); !errors.Is(err, domain.ErrUserNotAllowed) {
		t.Fatalf("expected ErrUserNotAllowed, got %v", err)
	}
}

func TestGetSuggestionsEmptyUser(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepository(), &fakeInventoryRepository{}, &fakeStatsService{})

	res, err := service.GetSuggestions(context.Background(), "")
	if err != nil {
		t.Fatalf("GetSuggestions returned error: %v", err)
	}
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", res)
	}
}
