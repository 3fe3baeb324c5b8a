package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pawnledger/internal/domain/rateconfig"
)

type RateConfigRepository struct{ db *gorm.DB }

func NewRateConfigRepository(db *gorm.DB) *RateConfigRepository {
	return &RateConfigRepository{db: db}
}

func (r *RateConfigRepository) GetJewelType(ctx context.Context, id uint64) (*rateconfig.JewelType, error) {
	var out rateconfig.JewelType
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (r *RateConfigRepository) ListInterestRates(ctx context.Context) ([]rateconfig.InterestRate, error) {
	var out []rateconfig.InterestRate
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *RateConfigRepository) ListValidityOptions(ctx context.Context) ([]rateconfig.ValidityOption, error) {
	var out []rateconfig.ValidityOption
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *RateConfigRepository) LatestMetalRate(ctx context.Context, metal rateconfig.MetalCategory) (*rateconfig.MetalRate, error) {
	var out rateconfig.MetalRate
	err := r.db.WithContext(ctx).
		Where("metal = ?", metal).
		Order("quoted_on DESC, id DESC").
		First(&out).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (r *RateConfigRepository) GetMoneySource(ctx context.Context, id uint64) (*rateconfig.MoneySource, error) {
	var out rateconfig.MoneySource
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (r *RateConfigRepository) SaveMoneySource(ctx context.Context, s *rateconfig.MoneySource) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rateconfig.ErrNotFound
	}
	return err
}
