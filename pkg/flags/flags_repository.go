package flags

import (
	"context"

	"SnackStock-Backend/entities"

	"gorm.io/gorm"
)

type (
	FlagsRepository interface {
		GetFlag(ctx context.Context, userID, key string) (*entities.UserFlag, error)
		UpsertFlag(ctx context.Context, flag *entities.UserFlag) error
		RemoveFlag(ctx context.Context, userID, key string) error
	}

	flagsRepository struct {
		db *gorm.DB
	}
)

func NewFlagsRepository(db *gorm.DB) FlagsRepository {
	return &flagsRepository{db: db}
}

func (r *flagsRepository) GetFlag(ctx context.Context, userID, key string) (*entities.UserFlag, error) {
	var flag entities.UserFlag
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		First(&flag).Error; err != nil {
		return nil, err
	}
	return &flag, nil
}

func (r *flagsRepository) UpsertFlag(ctx context.Context, flag *entities.UserFlag) error {
	var existing entities.UserFlag
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", flag.UserID, flag.Key).
		First(&existing).Error
	if err == nil {
		existing.Value = flag.Value
		return r.db.WithContext(ctx).Save(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(flag).Error
}

func (r *flagsRepository) RemoveFlag(ctx context.Context, userID, key string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		Delete(&entities.UserFlag{}).Error
}
