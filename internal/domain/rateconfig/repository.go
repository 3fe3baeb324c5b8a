package rateconfig

import "context"

type Repository interface {
	GetJewelType(ctx context.Context, id uint64) (*JewelType, error)

	ListInterestRates(ctx context.Context) ([]InterestRate, error)
	ListValidityOptions(ctx context.Context) ([]ValidityOption, error)

	// LatestMetalRate returns the most recent quote for the metal.
	LatestMetalRate(ctx context.Context, metal MetalCategory) (*MetalRate, error)

	GetMoneySource(ctx context.Context, id uint64) (*MoneySource, error)
	SaveMoneySource(ctx context.Context, s *MoneySource) error
}
