package stats

import (
	"context"

	"SnackStock-Backend/entities"

	"gorm.io/gorm"
)

type (
	ProductAggregate struct {
		ProductName   string
		Category      string
		Times         int
		TotalQuantity int
		TotalCalories int
	}

	StatsRepository interface {
		CreateEvent(ctx context.Context, event *entities.ConsumptionEvent) error
		SumQuantityByAction(ctx context.Context, userID string, action string) (int, error)
		TopProductsByAction(ctx context.Context, userID string, action string, limit int) ([]ProductAggregate, error)
	}

	statsRepository struct {
		db *gorm.DB
	}
)

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CreateEvent(ctx context.Context, event *entities.ConsumptionEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *statsRepository) SumQuantityByAction(ctx context.Context, userID string, action string) (int, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entities.ConsumptionEvent{}).
		Where("user_id = ? AND action = ?", userID, action).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

func (r *statsRepository) TopProductsByAction(ctx context.Context, userID string, action string, limit int) ([]ProductAggregate, error) {
	var aggregates []ProductAggregate
	if err := r.db.WithContext(ctx).
		Model(&entities.ConsumptionEvent{}).
		Select("product_name, category, COUNT(*) as times, COALESCE(SUM(quantity), 0) as total_quantity, COALESCE(SUM(calories), 0) as total_calories").
		Where("user_id = ? AND action = ?", userID, action).
		Group("product_name, category").
		Order("times desc").
		Limit(limit).
		Scan(&aggregates).Error; err != nil {
		return nil, err
	}
	return aggregates, nil
}
