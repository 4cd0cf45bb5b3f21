package stats

import (
	"context"
	"time"

	"SnackStock-Backend/domain"
	"SnackStock-Backend/entities"
	"SnackStock-Backend/pkg/pantry"

	"github.com/google/uuid"
)

const savingsPerConsumedItemCLP = 1500

type (
	// PantrySnapshotter is the slice of the inventory repository the
	// report needs; satisfied by inventory.InventoryRepository.
	PantrySnapshotter interface {
		GetPantryItems(ctx context.Context, userID string) ([]*entities.PantryItem, error)
	}

	StatsService interface {
		RecordConsumption(ctx context.Context, req domain.RecordConsumptionRequest, userID string) error
		GetStatistics(ctx context.Context, userID string) (domain.StatisticsResponse, error)
	}

	statsService struct {
		statsRepository StatsRepository
		snapshotter     PantrySnapshotter
	}
)

func NewStatsService(statsRepository StatsRepository, snapshotter PantrySnapshotter) StatsService {
	return &statsService{
		statsRepository: statsRepository,
		snapshotter:     snapshotter,
	}
}

func (s *statsService) RecordConsumption(ctx context.Context, req domain.RecordConsumptionRequest, userID string) error {
	if userID == "" {
		return domain.ErrUserNotAllowed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if req.Action != pantry.ActionConsumed && req.Action != pantry.ActionWasted {
		return domain.ErrInvalidConsumptionAction
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	category := req.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	event := &entities.ConsumptionEvent{
		ID:          uuid.New(),
		UserID:      userUUID,
		ProductName: req.ProductName,
		Category:    category,
		Quantity:    quantity,
		Calories:    req.Calories,
		Action:      req.Action,
	}

	return s.statsRepository.CreateEvent(ctx, event)
}

func (s *statsService) GetStatistics(ctx context.Context, userID string) (domain.StatisticsResponse, error) {
	// Read path stays resilient for unauthenticated callers
	if userID == "" {
		return domain.StatisticsResponse{}, nil
	}

	totalConsumed, err := s.statsRepository.SumQuantityByAction(ctx, userID, pantry.ActionConsumed)
	if err != nil {
		return domain.StatisticsResponse{}, err
	}

	totalWasted, err := s.statsRepository.SumQuantityByAction(ctx, userID, pantry.ActionWasted)
	if err != nil {
		return domain.StatisticsResponse{}, err
	}

	items, err := s.snapshotter.GetPantryItems(ctx, userID)
	if err != nil {
		return domain.StatisticsResponse{}, err
	}

	now := time.Now()
	critical := 0
	for _, item := range items {
		if item.ExpiryDate == nil {
			continue
		}
		if pantry.Classify(pantry.DaysLeft(*item.ExpiryDate, now)) == pantry.StatusCritical {
			critical++
		}
	}

	var wasteRate float64
	if totalConsumed+totalWasted > 0 {
		wasteRate = float64(totalWasted) / float64(totalConsumed+totalWasted)
	}

	topConsumed, err := s.statsRepository.TopProductsByAction(ctx, userID, pantry.ActionConsumed, 5)
	if err != nil {
		return domain.StatisticsResponse{}, err
	}

	topWasted, err := s.statsRepository.TopProductsByAction(ctx, userID, pantry.ActionWasted, 5)
	if err != nil {
		return domain.StatisticsResponse{}, err
	}

	consumedList := make([]domain.ProductConsumption, 0, len(topConsumed))
	for _, agg := range topConsumed {
		consumedList = append(consumedList, domain.ProductConsumption{
			Name:          agg.ProductName,
			Category:      agg.Category,
			TimesConsumed: agg.Times,
			TotalCalories: agg.TotalCalories,
		})
	}

	wastedList := make([]domain.WastedProduct, 0, len(topWasted))
	for _, agg := range topWasted {
		wastedList = append(wastedList, domain.WastedProduct{
			Name:        agg.ProductName,
			Category:    agg.Category,
			TimesWasted: agg.Times,
		})
	}

	savings := totalConsumed * savingsPerConsumedItemCLP

	return domain.StatisticsResponse{
		TotalAdded:              len(items) + totalConsumed + totalWasted,
		TotalConsumed:           totalConsumed,
		TotalWasted:             totalWasted,
		WasteRate:               wasteRate,
		TotalProducts:           len(items),
		CriticalProducts:        critical,
		TopConsumed:             consumedList,
		WastedProducts:          wastedList,
		EstimatedSavingsDisplay: pantry.FormatPrice(float64(savings)),
	}, nil
}
