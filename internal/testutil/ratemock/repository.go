package ratemock

import (
	"context"
	"errors"

	"pawnledger/internal/domain/rateconfig"
)

var _ rateconfig.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("ratemock: method not implemented")

// Repo is a function-backed mock satisfying rateconfig.Repository.
type Repo struct {
	GetJewelTypeFn        func(ctx context.Context, id uint64) (*rateconfig.JewelType, error)
	ListInterestRatesFn   func(ctx context.Context) ([]rateconfig.InterestRate, error)
	ListValidityOptionsFn func(ctx context.Context) ([]rateconfig.ValidityOption, error)
	LatestMetalRateFn     func(ctx context.Context, metal rateconfig.MetalCategory) (*rateconfig.MetalRate, error)
	GetMoneySourceFn      func(ctx context.Context, id uint64) (*rateconfig.MoneySource, error)
	SaveMoneySourceFn     func(ctx context.Context, s *rateconfig.MoneySource) error
}

func (m *Repo) GetJewelType(ctx context.Context, id uint64) (*rateconfig.JewelType, error) {
	if m.GetJewelTypeFn != nil {
		return m.GetJewelTypeFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListInterestRates(ctx context.Context) ([]rateconfig.InterestRate, error) {
	if m.ListInterestRatesFn != nil {
		return m.ListInterestRatesFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListValidityOptions(ctx context.Context) ([]rateconfig.ValidityOption, error) {
	if m.ListValidityOptionsFn != nil {
		return m.ListValidityOptionsFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) LatestMetalRate(ctx context.Context, metal rateconfig.MetalCategory) (*rateconfig.MetalRate, error) {
	if m.LatestMetalRateFn != nil {
		return m.LatestMetalRateFn(ctx, metal)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetMoneySource(ctx context.Context, id uint64) (*rateconfig.MoneySource, error) {
	if m.GetMoneySourceFn != nil {
		return m.GetMoneySourceFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) SaveMoneySource(ctx context.Context, s *rateconfig.MoneySource) error {
	if m.SaveMoneySourceFn != nil {
		return m.SaveMoneySourceFn(ctx, s)
	}
	return nil
}
