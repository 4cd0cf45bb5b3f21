package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddPantryItem     = "pantry item added successfully"
	MessageSuccessUpdatePantryItem  = "pantry item updated successfully"
	MessageSuccessDeletePantryItem  = "pantry item deleted successfully"
	MessageSuccessGetPantryItems    = "pantry items retrieved successfully"
	MessageSuccessMarkAsWasted      = "pantry item marked as wasted"
	MessageSuccessSubmitReceipt     = "receipt submitted successfully"
	MessageSuccessUploadReceipt     = "receipt image uploaded successfully"
	MessageSuccessGetReceiptScan    = "receipt scan retrieved successfully"
	MessageSuccessSaveScannedItems  = "scanned items saved successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddPantryItem     = "failed to add pantry item"
	MessageFailedUpdatePantryItem  = "failed to update pantry item"
	MessageFailedDeletePantryItem  = "failed to delete pantry item"
	MessageFailedGetPantryItems    = "failed to retrieve pantry items"
	MessageFailedMarkAsWasted      = "failed to mark pantry item as wasted"
	MessageFailedSubmitReceipt     = "failed to submit receipt"
	MessageFailedUploadReceipt     = "failed to upload receipt image"
	MessageFailedGetReceiptScan    = "failed to retrieve receipt scan"
	MessageFailedSaveScannedItems  = "failed to save scanned items"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrPantryItemNotFound      = errors.New("pantry item not found")
	ErrInvalidExpiryDate       = errors.New("invalid expiry date")
	ErrInvalidQuantity         = errors.New("quantity must be positive")
	ErrInvalidReceiptScan      = errors.New("invalid receipt scan ID")
	ErrReceiptProcessingFailed = errors.New("receipt processing failed")
	ErrEmptyReceiptText        = errors.New("receipt text is empty")
	ErrUnauthorizedAccess      = errors.New("unauthorized access to pantry item")
)

const DefaultCategory = "General"

type (
	AddPantryItemRequest struct {
		Name       string `json:"name" validate:"required"`
		Quantity   int    `json:"quantity" validate:"omitempty,min=1"`
		Category   string `json:"category" validate:"omitempty"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty"`
	}

	UpdatePantryItemRequest struct {
		Name       string `json:"name" validate:"omitempty"`
		Quantity   int    `json:"quantity" validate:"omitempty,min=1"`
		Category   string `json:"category" validate:"omitempty"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty"`
	}

	PantryItemResponse struct {
		ID         string     `json:"id"`
		Name       string     `json:"name"`
		Quantity   int        `json:"quantity"`
		Category   string     `json:"category"`
		ExpiryDate *time.Time `json:"expiry_date,omitempty"`
		DaysLeft   *int       `json:"days_left,omitempty"`
		Status     string     `json:"status,omitempty"`
		CreatedAt  time.Time  `json:"created_at"`
	}

	SubmitReceiptRequest struct {
		RawText string `json:"raw_text" validate:"required"`
	}

	SubmitReceiptResponse struct {
		ScanID string `json:"scan_id"`
		Status string `json:"status"`
	}

	ReceiptScanResponse struct {
		ScanID   string               `json:"scan_id"`
		Status   string               `json:"status"`
		ImageURL string               `json:"image_url,omitempty"`
		Items    []ScannedItemRequest `json:"items,omitempty"`
	}

	ScannedItemRequest struct {
		Name       string `json:"name" validate:"required"`
		Quantity   int    `json:"quantity" validate:"omitempty,min=1"`
		Category   string `json:"category" validate:"omitempty"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty"`
	}

	SaveScannedItemsRequest struct {
		Items []ScannedItemRequest `json:"items" validate:"required,dive"`
	}

	DashboardStatsResponse struct {
		TotalItems              int    `json:"total_items"`
		FreshItems              int    `json:"fresh_items"`
		WarningItems            int    `json:"warning_items"`
		CriticalItems           int    `json:"critical_items"`
		EstimatedSavings        int    `json:"estimated_savings"`
		EstimatedSavingsDisplay string `json:"estimated_savings_display"`
	}
)
