package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pawnledger/internal/domain/rateconfig"
)

type jewelTypeSQLite struct {
	ID               uint64    `gorm:"primaryKey;column:id"`
	Name             string    `gorm:"column:name"`
	Metal            string    `gorm:"type:text;column:metal"` // ← no enum
	ProcessingFeePct float64   `gorm:"column:processing_fee_pct"`
	ProcessingFeeMax float64   `gorm:"column:processing_fee_max"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (jewelTypeSQLite) TableName() string { return "jewel_types" }

type metalRateSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	Metal       string    `gorm:"type:text;column:metal"`
	RatePerGram float64   `gorm:"column:rate_per_gram"`
	QuotedOn    time.Time `gorm:"column:quoted_on"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (metalRateSQLite) TableName() string { return "metal_rates" }

func openRateTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&jewelTypeSQLite{},
		&metalRateSQLite{},
		&rateconfig.InterestRate{},
		&rateconfig.ValidityOption{},
		&rateconfig.MoneySource{},
	)
	if err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLatestMetalRate_PicksNewestQuote(t *testing.T) {
	db := openRateTestDB(t)
	repo := NewRateConfigRepository(db)
	ctx := context.Background()

	rows := []metalRateSQLite{
		{Metal: "gold", RatePerGram: 6200, QuotedOn: day(2024, 3, 1)},
		{Metal: "gold", RatePerGram: 6500, QuotedOn: day(2024, 3, 14)},
		{Metal: "silver", RatePerGram: 80, QuotedOn: day(2024, 3, 15)},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := repo.LatestMetalRate(ctx, rateconfig.MetalGold)
	if err != nil {
		t.Fatalf("LatestMetalRate: %v", err)
	}
	if got.RatePerGram != 6500 {
		t.Fatalf("rate=%v want 6500", got.RatePerGram)
	}
}

func TestLatestMetalRate_NotFound(t *testing.T) {
	repo := NewRateConfigRepository(openRateTestDB(t))
	_, err := repo.LatestMetalRate(context.Background(), rateconfig.MetalSilver)
	if !errors.Is(err, rateconfig.ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}

func TestMoneySource_SaveRoundTrip(t *testing.T) {
	repo := NewRateConfigRepository(openRateTestDB(t))
	ctx := context.Background()

	src := &rateconfig.MoneySource{Name: "cash drawer", Balance: 100000, AllowInbound: true, AllowOutbound: true}
	if err := repo.SaveMoneySource(ctx, src); err != nil {
		t.Fatalf("SaveMoneySource: %v", err)
	}

	src.Balance -= 5000
	if err := repo.SaveMoneySource(ctx, src); err != nil {
		t.Fatalf("SaveMoneySource update: %v", err)
	}

	got, err := repo.GetMoneySource(ctx, src.ID)
	if err != nil {
		t.Fatalf("GetMoneySource: %v", err)
	}
	if got.Balance != 95000 {
		t.Fatalf("balance=%v want 95000", got.Balance)
	}
}

func TestListInterestRates_Ordered(t *testing.T) {
	db := openRateTestDB(t)
	repo := NewRateConfigRepository(db)
	ctx := context.Background()

	ten := uint64(10)
	rows := []rateconfig.InterestRate{
		{RatePct: 1.5, EstimationPct: 80},
		{RatePct: 2, EstimationPct: 75, JewelTypeID: &ten},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := repo.ListInterestRates(ctx)
	if err != nil {
		t.Fatalf("ListInterestRates: %v", err)
	}
	if len(got) != 2 || got[0].RatePct != 1.5 {
		t.Fatalf("got %+v", got)
	}
}
