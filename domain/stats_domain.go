package domain

import (
	"errors"
)

var (
	MessageSuccessRecordConsumption = "consumption recorded successfully"
	MessageSuccessGetStatistics     = "statistics retrieved successfully"

	MessageFailedRecordConsumption = "failed to record consumption"
	MessageFailedGetStatistics     = "failed to retrieve statistics"

	ErrInvalidConsumptionAction = errors.New("action must be consumed or wasted")
)

type (
	RecordConsumptionRequest struct {
		ProductName string `json:"product_name" validate:"required"`
		Category    string `json:"category" validate:"omitempty"`
		Quantity    int    `json:"quantity" validate:"omitempty,min=1"`
		Calories    int    `json:"calories" validate:"omitempty,min=0"`
		Action      string `json:"action" validate:"required,oneof=consumed wasted"`
	}

	ProductConsumption struct {
		Name          string `json:"name"`
		Category      string `json:"category"`
		TimesConsumed int    `json:"times_consumed"`
		TotalCalories int    `json:"total_calories,omitempty"`
	}

	WastedProduct struct {
		Name        string `json:"name"`
		Category    string `json:"category"`
		TimesWasted int    `json:"times_wasted"`
	}

	StatisticsResponse struct {
		TotalAdded              int                  `json:"total_added"`
		TotalConsumed           int                  `json:"total_consumed"`
		TotalWasted             int                  `json:"total_wasted"`
		WasteRate               float64              `json:"waste_rate"`
		TotalProducts           int                  `json:"total_products"`
		CriticalProducts        int                  `json:"critical_products"`
		TopConsumed             []ProductConsumption `json:"top_consumed"`
		WastedProducts          []WastedProduct      `json:"wasted_products"`
		EstimatedSavingsDisplay string               `json:"estimated_savings_display"`
	}
)
