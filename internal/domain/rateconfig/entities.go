// Package rateconfig holds the configuration tables the pledge flows
// read: jewel types, interest tiers, validity options, daily metal
// rates and the money-source ledger.
package rateconfig

import (
	"errors"
	"time"
)

var (
	ErrNotFound             = errors.New("rate configuration not found")
	ErrMissingPaymentSource = errors.New("payment source is required")
	ErrSourceDisallowed     = errors.New("money source does not allow this movement")
)

type MetalCategory string

const (
	MetalGold   MetalCategory = "gold"
	MetalSilver MetalCategory = "silver"
)

type JewelType struct {
	ID    uint64        `gorm:"primaryKey;column:id" json:"id"`
	Name  string        `gorm:"size:64" json:"name"`
	Metal MetalCategory `gorm:"type:enum('gold','silver');default:'gold'" json:"metal"`

	ProcessingFeePct float64 `gorm:"type:decimal(6,3)" json:"processing_fee_pct"`
	ProcessingFeeMax float64 `gorm:"type:decimal(18,2)" json:"processing_fee_max"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (JewelType) TableName() string { return "jewel_types" }

// InterestRate is one selectable tier. A nil JewelTypeID makes the tier
// globally applicable; otherwise it is scoped to one jewel type.
type InterestRate struct {
	ID            uint64  `gorm:"primaryKey;column:id" json:"id"`
	RatePct       float64 `gorm:"type:decimal(6,3)" json:"rate_pct"`
	EstimationPct float64 `gorm:"type:decimal(6,2)" json:"estimation_pct"`
	JewelTypeID   *uint64 `gorm:"column:jewel_type_id;index" json:"jewel_type_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (InterestRate) TableName() string { return "interest_rates" }

type ValidityOption struct {
	ID          uint64  `gorm:"primaryKey;column:id" json:"id"`
	Months      int     `json:"months"`
	JewelTypeID *uint64 `gorm:"column:jewel_type_id;index" json:"jewel_type_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ValidityOption) TableName() string { return "validity_options" }

type MetalRate struct {
	ID          uint64        `gorm:"primaryKey;column:id" json:"id"`
	Metal       MetalCategory `gorm:"type:enum('gold','silver')" json:"metal"`
	RatePerGram float64       `gorm:"type:decimal(12,2)" json:"rate_per_gram"`
	QuotedOn    time.Time     `gorm:"type:date;index" json:"quoted_on"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MetalRate) TableName() string { return "metal_rates" }

// MoneySource is one row of the payment-method ledger (cash drawer, bank
// account, UPI wallet). Inbound/outbound flags gate which movements a
// source may participate in.
type MoneySource struct {
	ID            uint64  `gorm:"primaryKey;column:id" json:"id"`
	Name          string  `gorm:"size:64" json:"name"`
	Balance       float64 `gorm:"type:decimal(18,2)" json:"balance"`
	AllowInbound  bool    `json:"allow_inbound"`
	AllowOutbound bool    `json:"allow_outbound"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MoneySource) TableName() string { return "money_sources" }
