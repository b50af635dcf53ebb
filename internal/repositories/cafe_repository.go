package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cafeapi/internal/models/db_models"
	"cafeapi/pkg/utils"
)

type CafeRepositoryInterface interface {
	ListCafes(ctx context.Context) ([]db_models.Cafe, error)
	GetRandomCafe(ctx context.Context) (*db_models.Cafe, error)
	FindByLocation(ctx context.Context, location string) (*db_models.Cafe, error)
	CreateCafe(ctx context.Context, cafe *db_models.Cafe) error
	UpdateCoffeePrice(ctx context.Context, id uint, price *string) error
	DeleteCafe(ctx context.Context, id uint) error
	Ping(ctx context.Context) error
}

type CafeRepository struct {
	db *gorm.DB
}

func NewCafeRepository(db *gorm.DB) *CafeRepository {
	return &CafeRepository{db: db}
}

func (r *CafeRepository) ListCafes(ctx context.Context) ([]db_models.Cafe, error) {
	var cafes []db_models.Cafe
	if err := r.db.WithContext(ctx).Order("id").Find(&cafes).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return cafes, nil
}

// GetRandomCafe picks one row uniformly at random. RANDOM() is understood by
// both sqlite and postgres.
func (r *CafeRepository) GetRandomCafe(ctx context.Context) (*db_models.Cafe, error) {
	var cafe db_models.Cafe
	err := r.db.WithContext(ctx).Order("RANDOM()").Take(&cafe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrEmptyCollection
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &cafe, nil
}

func (r *CafeRepository) FindByLocation(ctx context.Context, location string) (*db_models.Cafe, error) {
	var cafe db_models.Cafe
	err := r.db.WithContext(ctx).Where("location = ?", location).Order("id").First(&cafe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrLocationNotFound
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &cafe, nil
}

func (r *CafeRepository) CreateCafe(ctx context.Context, cafe *db_models.Cafe) error {
	err := r.db.WithContext(ctx).Create(cafe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("cafe %q: %w", cafe.Name, utils.ErrDuplicateCafe)
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

// UpdateCoffeePrice overwrites the price of one cafe. A nil price clears it.
func (r *CafeRepository) UpdateCoffeePrice(ctx context.Context, id uint, price *string) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Cafe{}).
		Where("id = ?", id).
		Update("coffee_price", price)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("cafe %d: %w", id, utils.ErrCafeNotFound)
	}
	return nil
}

func (r *CafeRepository) DeleteCafe(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.Cafe{})
	if result.Error != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("cafe %d: %w", id, utils.ErrCafeNotFound)
	}
	return nil
}

func (r *CafeRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
