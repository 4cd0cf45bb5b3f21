package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"SnackStock-Backend/domain"
	"SnackStock-Backend/entities"
	"SnackStock-Backend/internal/utils"
	"SnackStock-Backend/pkg/inventory"
	"SnackStock-Backend/pkg/pantry"
	"SnackStock-Backend/pkg/stats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GenerateSuggestions(ctx context.Context, req domain.GenerateRecipesRequest, userID string) (domain.GenerateRecipesResponse, error)
		GetSuggestions(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		ToggleSaved(ctx context.Context, recipeID string, userID string) error
		ClearSuggestions(ctx context.Context, userID string) error
		CompleteRecipe(ctx context.Context, recipeID string, userID string) (domain.CompleteRecipeResponse, error)
	}

	recipeService struct {
		recipeRepository    RecipeRepository
		inventoryRepository inventory.InventoryRepository
		statsService        stats.StatsService
	}
)

func NewRecipeService(recipeRepository RecipeRepository, inventoryRepository inventory.InventoryRepository, statsService stats.StatsService) RecipeService {
	return &recipeService{
		recipeRepository:    recipeRepository,
		inventoryRepository: inventoryRepository,
		statsService:        statsService,
	}
}

func (s *recipeService) GenerateSuggestions(ctx context.Context, req domain.GenerateRecipesRequest, userID string) (domain.GenerateRecipesResponse, error) {
	if userID == "" {
		return domain.GenerateRecipesResponse{}, domain.ErrUserNotAllowed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GenerateRecipesResponse{}, domain.ErrParseUUID
	}

	if len(req.Ingredients) == 0 {
		return domain.GenerateRecipesResponse{}, domain.ErrNoIngredients
	}

	generationReq := pantry.BuildGenerationRequest(req.Ingredients, req.Count)

	rawRecipes, err := s.callGenerator(ctx, generationReq)
	if err != nil {
		return domain.GenerateRecipesResponse{}, err
	}

	stepDelimiter := utils.GetConfig("RECIPE_STEP_DELIMITER")
	fallbackMain := generationReq.Ingredients[0]

	usedJSON, _ := json.Marshal(generationReq.Ingredients)

	recipes := make([]domain.RecipeResponse, 0, len(rawRecipes))
	for _, raw := range rawRecipes {
		suggestion := pantry.NormalizeRecipe(raw, fallbackMain, stepDelimiter)

		ingredientsJSON, _ := json.Marshal(suggestion.Ingredients)
		instructionsJSON, _ := json.Marshal(suggestion.Instructions)

		entity := &entities.RecipeSuggestion{
			ID:              uuid.New(),
			UserID:          userUUID,
			Title:           suggestion.Title,
			MainIngredient:  suggestion.MainIngredient,
			PrepTime:        suggestion.PrepTime,
			Servings:        suggestion.Servings,
			Difficulty:      suggestion.Difficulty,
			Ingredients:     string(ingredientsJSON),
			Instructions:    string(instructionsJSON),
			UsedIngredients: string(usedJSON),
		}

		if err := s.recipeRepository.CreateSuggestion(ctx, entity); err != nil {
			return domain.GenerateRecipesResponse{}, err
		}

		recipes = append(recipes, domain.FromSuggestion(entity.ID.String(), suggestion, false))
	}

	return domain.GenerateRecipesResponse{
		Recipes: recipes,
		Total:   len(recipes),
	}, nil
}

func (s *recipeService) callGenerator(ctx context.Context, req pantry.GenerationRequest) ([]pantry.RawRecipe, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return nil, fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	prompt := fmt.Sprintf(
		"You are a professional chef. Generate %d unique recipes in Spanish using these ingredients: %s. "+
			"Prioritize using the listed ingredients; common pantry staples may be assumed. "+
			"Return ONLY a valid JSON array of %d recipe objects with these fields: "+
			"title (string), ingredients (array of strings), instructions (array of step strings), "+
			"time (string like \"30 min\"), servings (number), difficulty (one of \"Fácil\", \"Media\", \"Difícil\"). "+
			"Do not include any explanations or text outside of the JSON array.",
		req.Count,
		strings.Join(req.Ingredients, ", "),
		req.Count,
	)

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	geminiReq, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	geminiReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(geminiReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrGeminiAPIFailed
	}

	responseText := strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text)

	// Extract the JSON array from the response text; some models wrap it
	// in markdown fences or return a single object instead
	startIdx := strings.Index(responseText, "[")
	endIdx := strings.LastIndex(responseText, "]")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		startIdx = strings.Index(responseText, "{")
		endIdx = strings.LastIndex(responseText, "}")
		if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
			return nil, fmt.Errorf("invalid response format: %s", responseText)
		}
		responseText = "[" + responseText[startIdx:endIdx+1] + "]"
	} else {
		responseText = responseText[startIdx : endIdx+1]
	}

	var rawRecipes []pantry.RawRecipe
	if err := json.Unmarshal([]byte(responseText), &rawRecipes); err != nil {
		return nil, err
	}

	return rawRecipes, nil
}

func (s *recipeService) GetSuggestions(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	// Read path stays resilient for unauthenticated callers
	if userID == "" {
		return []domain.RecipeResponse{}, nil
	}

	suggestions, err := s.recipeRepository.GetSuggestions(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(suggestions))
	for _, entity := range suggestions {
		response = append(response, toRecipeResponse(entity))
	}
	return response, nil
}

func toRecipeResponse(entity *entities.RecipeSuggestion) domain.RecipeResponse {
	var ingredients, instructions []string
	if err := json.Unmarshal([]byte(entity.Ingredients), &ingredients); err != nil || ingredients == nil {
		ingredients = []string{}
	}
	if err := json.Unmarshal([]byte(entity.Instructions), &instructions); err != nil || instructions == nil {
		instructions = []string{}
	}

	return domain.RecipeResponse{
		ID:             entity.ID.String(),
		Title:          entity.Title,
		MainIngredient: entity.MainIngredient,
		Ingredients:    ingredients,
		Instructions:   instructions,
		PrepTime:       entity.PrepTime,
		Servings:       entity.Servings,
		Difficulty:     entity.Difficulty,
		Saved:          entity.Saved,
	}
}

func (s *recipeService) ToggleSaved(ctx context.Context, recipeID string, userID string) error {
	suggestion, err := s.getOwnedSuggestion(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	suggestion.Saved = !suggestion.Saved
	return s.recipeRepository.UpdateSuggestion(ctx, suggestion)
}

func (s *recipeService) ClearSuggestions(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrUserNotAllowed
	}
	return s.recipeRepository.DeleteSuggestionsByUser(ctx, userID)
}

// CompleteRecipe reconciles the recipe's generation-time ingredient set
// against a fresh inventory snapshot: every matched item is recorded as
// consumed and removed. Items are processed independently; one item's
// failure is logged and does not stop the rest of the batch.
func (s *recipeService) CompleteRecipe(ctx context.Context, recipeID string, userID string) (domain.CompleteRecipeResponse, error) {
	suggestion, err := s.getOwnedSuggestion(ctx, recipeID, userID)
	if err != nil {
		return domain.CompleteRecipeResponse{}, err
	}

	var usedNames []string
	if err := json.Unmarshal([]byte(suggestion.UsedIngredients), &usedNames); err != nil {
		usedNames = []string{}
	}

	items, err := s.inventoryRepository.GetPantryItems(ctx, userID)
	if err != nil {
		return domain.CompleteRecipeResponse{}, err
	}

	snapshot := make([]pantry.Item, 0, len(items))
	for _, item := range items {
		snapshot = append(snapshot, pantry.Item{
			ID:       item.ID.String(),
			Name:     item.Name,
			Category: item.Category,
			Quantity: item.Quantity,
		})
	}

	matches := pantry.MatchConsumed(usedNames, snapshot)

	consumed := make([]domain.ConsumedItem, 0, len(matches))
	for _, match := range matches {
		if err := s.statsService.RecordConsumption(ctx, domain.RecordConsumptionRequest{
			ProductName: match.Item.Name,
			Category:    match.Item.Category,
			Quantity:    1,
			Action:      match.Action,
		}, userID); err != nil {
			log.Printf("Error recording consumption for %s: %v", match.Item.Name, err)
		}

		if err := s.inventoryRepository.DeletePantryItem(ctx, match.Item.ID); err != nil {
			log.Printf("Error deleting pantry item %s: %v", match.Item.ID, err)
			continue
		}

		consumed = append(consumed, domain.ConsumedItem{
			ID:       match.Item.ID,
			Name:     match.Item.Name,
			Category: match.Item.Category,
			Action:   match.Action,
		})
	}

	// Completion history is informational; its failure is not fatal
	if err := s.recipeRepository.AddCompletion(ctx, userID, recipeID); err != nil {
		log.Printf("Error recording recipe completion %s: %v", recipeID, err)
	}

	return domain.CompleteRecipeResponse{
		ConsumedItems: consumed,
		Total:         len(consumed),
	}, nil
}

func (s *recipeService) getOwnedSuggestion(ctx context.Context, recipeID string, userID string) (*entities.RecipeSuggestion, error) {
	suggestion, err := s.recipeRepository.GetSuggestionByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if suggestion.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return suggestion, nil
}
