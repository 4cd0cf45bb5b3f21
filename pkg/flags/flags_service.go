package flags

import (
	"context"
	"errors"

	"SnackStock-Backend/domain"
	"SnackStock-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FlagsService interface {
		GetFlag(ctx context.Context, key string, userID string) (domain.FlagResponse, error)
		SetFlag(ctx context.Context, key string, req domain.SetFlagRequest, userID string) error
		RemoveFlag(ctx context.Context, key string, userID string) error
	}

	flagsService struct {
		flagsRepository FlagsRepository
	}
)

func NewFlagsService(flagsRepository FlagsRepository) FlagsService {
	return &flagsService{flagsRepository: flagsRepository}
}

// GetFlag reports an unset flag as Set=false rather than an error, so
// "has this been seen" checks stay a single cheap call.
func (s *flagsService) GetFlag(ctx context.Context, key string, userID string) (domain.FlagResponse, error) {
	if userID == "" {
		return domain.FlagResponse{Key: key}, nil
	}

	flag, err := s.flagsRepository.GetFlag(ctx, userID, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FlagResponse{Key: key}, nil
		}
		return domain.FlagResponse{}, err
	}

	return domain.FlagResponse{
		Key:   flag.Key,
		Value: flag.Value,
		Set:   true,
	}, nil
}

func (s *flagsService) SetFlag(ctx context.Context, key string, req domain.SetFlagRequest, userID string) error {
	if userID == "" {
		return domain.ErrUserNotAllowed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.flagsRepository.UpsertFlag(ctx, &entities.UserFlag{
		ID:     uuid.New(),
		UserID: userUUID,
		Key:    key,
		Value:  req.Value,
	})
}

func (s *flagsService) RemoveFlag(ctx context.Context, key string, userID string) error {
	if userID == "" {
		return domain.ErrUserNotAllowed
	}
	return s.flagsRepository.RemoveFlag(ctx, userID, key)
}
