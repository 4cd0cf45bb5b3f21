package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"SnackStock-Backend/domain"
	"SnackStock-Backend/entities"
	"SnackStock-Backend/internal/utils"
	"SnackStock-Backend/internal/utils/storage"
	"SnackStock-Backend/pkg/pantry"
	"SnackStock-Backend/pkg/stats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kept items are valued at a flat CLP amount for the savings estimate.
const savingsPerItemCLP = 1500

type (
	InventoryService interface {
		AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) error
		DeletePantryItem(ctx context.Context, id string, userID string) error
		GetPantryItems(ctx context.Context, userID string, status string, page, limit int) ([]domain.PantryItemResponse, int64, error)
		GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error)
		MarkAsWasted(ctx context.Context, id string, userID string) error
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)

		SubmitReceiptText(ctx context.Context, req domain.SubmitReceiptRequest, userID string) (domain.SubmitReceiptResponse, error)
		GetReceiptScan(ctx context.Context, id string, userID string) (domain.ReceiptScanResponse, error)
		UploadReceiptImage(ctx context.Context, id string, image *multipart.FileHeader, userID string) error
		SaveScannedItems(ctx context.Context, scanID string, req domain.SaveScannedItemsRequest, userID string) error
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		statsService        stats.StatsService
		s3                  storage.AwsS3
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, statsService stats.StatsService, s3 storage.AwsS3) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		statsService:        statsService,
		s3:                  s3,
	}
}

func toResponse(item *entities.PantryItem, now time.Time) domain.PantryItemResponse {
	res := domain.PantryItemResponse{
		ID:         item.ID.String(),
		Name:       item.Name,
		Quantity:   item.Quantity,
		Category:   item.Category,
		ExpiryDate: item.ExpiryDate,
		CreatedAt:  item.CreatedAt,
	}

	if item.ExpiryDate != nil {
		daysLeft := pantry.DaysLeft(*item.ExpiryDate, now)
		res.DaysLeft = &daysLeft
		res.Status = string(pantry.Classify(daysLeft))
	}

	return res
}

func (s *inventoryService) AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	if userID == "" {
		return domain.PantryItemResponse{}, domain.ErrUserNotAllowed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrParseUUID
	}

	if req.Quantity < 0 {
		return domain.PantryItemResponse{}, domain.ErrInvalidQuantity
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	category := req.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.PantryItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	item := &entities.PantryItem{
		ID:            uuid.New(),
		UserID:        userUUID,
		Name:          req.Name,
		Quantity:      quantity,
		Category:      category,
		ExpiryDate:    expiryDate,
		AddedManually: true,
	}

	if err := s.inventoryRepository.AddPantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return toResponse(item, time.Now()), nil
}

func (s *inventoryService) UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) error {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}

	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}

	if req.Category != "" {
		item.Category = req.Category
	}

	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = &parsed
	}

	return s.inventoryRepository.UpdatePantryItem(ctx, item)
}

func (s *inventoryService) DeletePantryItem(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedItem(ctx, id, userID); err != nil {
		return err
	}
	return s.inventoryRepository.DeletePantryItem(ctx, id)
}

func (s *inventoryService) GetPantryItems(ctx context.Context, userID string, status string, page, limit int) ([]domain.PantryItemResponse, int64, error) {
	// Read path stays resilient for unauthenticated callers
	if userID == "" {
		return []domain.PantryItemResponse{}, 0, nil
	}

	items, err := s.inventoryRepository.GetPantryItems(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	response := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		res := toResponse(item, now)
		if status != "" && status != "all" && res.Status != status {
			continue
		}
		response = append(response, res)
	}

	count := int64(len(response))

	// Status is derived, so filtering and paging happen after annotation
	if page > 0 && limit > 0 {
		start := (page - 1) * limit
		if start >= len(response) {
			return []domain.PantryItemResponse{}, count, nil
		}
		end := start + limit
		if end > len(response) {
			end = len(response)
		}
		response = response[start:end]
	}

	return response, count, nil
}

func (s *inventoryService) GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error) {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}
	return toResponse(item, time.Now()), nil
}

// MarkAsWasted records one wasted consumption event and removes the item.
func (s *inventoryService) MarkAsWasted(ctx context.Context, id string, userID string) error {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.statsService.RecordConsumption(ctx, domain.RecordConsumptionRequest{
		ProductName: item.Name,
		Category:    item.Category,
		Quantity:    item.Quantity,
		Action:      pantry.ActionWasted,
	}, userID); err != nil {
		return err
	}

	return s.inventoryRepository.DeletePantryItem(ctx, id)
}

func (s *inventoryService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	items, err := s.inventoryRepository.GetPantryItems(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	now := time.Now()
	var fresh, warning, critical int
	for _, item := range items {
		if item.ExpiryDate == nil {
			fresh++
			continue
		}
		switch pantry.Classify(pantry.DaysLeft(*item.ExpiryDate, now)) {
		case pantry.StatusCritical:
			critical++
		case pantry.StatusWarning:
			warning++
		default:
			fresh++
		}
	}

	savings := (fresh + warning) * savingsPerItemCLP

	return domain.DashboardStatsResponse{
		TotalItems:              len(items),
		FreshItems:              fresh,
		WarningItems:            warning,
		CriticalItems:           critical,
		EstimatedSavings:        savings,
		EstimatedSavingsDisplay: pantry.FormatPrice(float64(savings)),
	}, nil
}

func (s *inventoryService) getOwnedItem(ctx context.Context, id string, userID string) (*entities.PantryItem, error) {
	item, err := s.inventoryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryItemNotFound
		}
		return nil, err
	}

	if item.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return item, nil
}

func (s *inventoryService) SubmitReceiptText(ctx context.Context, req domain.SubmitReceiptRequest, userID string) (domain.SubmitReceiptResponse, error) {
	if userID == "" {
		return domain.SubmitReceiptResponse{}, domain.ErrUserNotAllowed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubmitReceiptResponse{}, domain.ErrParseUUID
	}

	if strings.TrimSpace(req.RawText) == "" {
		return domain.SubmitReceiptResponse{}, domain.ErrEmptyReceiptText
	}

	scan := &entities.ReceiptScan{
		ID:      uuid.New(),
		UserID:  userUUID,
		RawText: req.RawText,
		Status:  "Pending",
	}

	if err := s.inventoryRepository.CreateReceiptScan(ctx, scan); err != nil {
		return domain.SubmitReceiptResponse{}, err
	}

	// Snapshot the response before the extraction goroutine starts
	// mutating the scan.
	res := domain.SubmitReceiptResponse{
		ScanID: scan.ID.String(),
		Status: scan.Status,
	}

	go s.extractReceiptItems(scan)

	return res, nil
}

// extractReceiptItems forwards the OCR text to the extraction model and
// stores the returned line items on the scan. Runs detached from the
// request; the client polls the scan status.
func (s *inventoryService) extractReceiptItems(scan *entities.ReceiptScan) {
	ctx := context.Background()

	fail := func(reason string) {
		scan.Status = "Failed"
		scan.OcrResults = reason
		if err := s.inventoryRepository.UpdateReceiptScan(ctx, scan); err != nil {
			log.Printf("Error updating receipt scan %s: %v", scan.ID, err)
		}
	}

	aiModelURL := utils.GetConfig("AI_MODEL_URL")
	if aiModelURL == "" {
		fail("Error: AI Model URL not configured")
		return
	}

	payload, err := json.Marshal(map[string]string{
		"raw_text": scan.RawText,
		"user_id":  scan.UserID.String(),
	})
	if err != nil {
		fail(fmt.Sprintf("Error encoding request: %s", err.Error()))
		return
	}

	httpReq, err := http.NewRequest("POST", aiModelURL, bytes.NewBuffer(payload))
	if err != nil {
		fail(fmt.Sprintf("Error creating request: %s", err.Error()))
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		fail(fmt.Sprintf("Error sending request to AI model: %s", err.Error()))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		fail(fmt.Sprintf("AI model error: %s - %s", resp.Status, string(bodyBytes)))
		return
	}

	var aiResponse struct {
		Success bool                        `json:"success"`
		Items   []domain.ScannedItemRequest `json:"items"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&aiResponse); err != nil {
		fail(fmt.Sprintf("Error parsing AI response: %s", err.Error()))
		return
	}

	if !aiResponse.Success || len(aiResponse.Items) == 0 {
		fail("AI model couldn't extract any items from receipt")
		return
	}

	resultsJSON, _ := json.Marshal(aiResponse.Items)
	scan.Status = "Processed"
	scan.OcrResults = string(resultsJSON)

	if err := s.inventoryRepository.UpdateReceiptScan(ctx, scan); err != nil {
		log.Printf("Error updating receipt scan %s: %v", scan.ID, err)
	}
}

func (s *inventoryService) GetReceiptScan(ctx context.Context, id string, userID string) (domain.ReceiptScanResponse, error) {
	scan, err := s.getOwnedScan(ctx, id, userID)
	if err != nil {
		return domain.ReceiptScanResponse{}, err
	}

	res := domain.ReceiptScanResponse{
		ScanID:   scan.ID.String(),
		Status:   scan.Status,
		ImageURL: scan.ImageURL,
	}

	if scan.Status == "Processed" && scan.OcrResults != "" {
		var items []domain.ScannedItemRequest
		if err := json.Unmarshal([]byte(scan.OcrResults), &items); err == nil {
			res.Items = items
		}
	}

	return res, nil
}

func (s *inventoryService) UploadReceiptImage(ctx context.Context, id string, image *multipart.FileHeader, userID string) error {
	scan, err := s.getOwnedScan(ctx, id, userID)
	if err != nil {
		return err
	}

	fileName := fmt.Sprintf("receipt-%s", scan.ID.String())
	objectKey, err := s.s3.UploadFile(fileName, image, "receipts", storage.AllowImage...)
	if err != nil {
		return err
	}

	scan.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.inventoryRepository.UpdateReceiptScan(ctx, scan)
}

func (s *inventoryService) SaveScannedItems(ctx context.Context, scanID string, req domain.SaveScannedItemsRequest, userID string) error {
	scan, err := s.getOwnedScan(ctx, scanID, userID)
	if err != nil {
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	scanIDStr := scan.ID.String()
	for _, reqItem := range req.Items {
		quantity := reqItem.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		category := reqItem.Category
		if category == "" {
			category = domain.DefaultCategory
		}

		var expiryDate *time.Time
		if reqItem.ExpiryDate != "" {
			parsed, err := time.Parse("2006-01-02", reqItem.ExpiryDate)
			if err != nil {
				return domain.ErrInvalidExpiryDate
			}
			expiryDate = &parsed
		}

		item := &entities.PantryItem{
			ID:            uuid.New(),
			UserID:        userUUID,
			Name:          reqItem.Name,
			Quantity:      quantity,
			Category:      category,
			ExpiryDate:    expiryDate,
			AddedManually: false,
			ReceiptScanID: &scanIDStr,
		}

		if err := s.inventoryRepository.AddPantryItem(ctx, item); err != nil {
			return err
		}
	}

	scan.Status = "Completed"
	return s.inventoryRepository.UpdateReceiptScan(ctx, scan)
}

func (s *inventoryService) getOwnedScan(ctx context.Context, id string, userID string) (*entities.ReceiptScan, error) {
	scan, err := s.inventoryRepository.GetReceiptScanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidReceiptScan
		}
		return nil, err
	}

	if scan.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return scan, nil
}
