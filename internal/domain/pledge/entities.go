package pledge

import (
	"time"

	"gorm.io/gorm"

	"pawnledger/internal/financials"
)

type State string

const (
	StatePendingApproval State = "pending_approval"
	StateActive          State = "active"
	StateRejected        State = "rejected"
	StateClosed          State = "closed"
)

type Pledge struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	PledgeID   string `gorm:"size:32;uniqueIndex:ux_pledges_pledge_id_active" json:"pledge_id"`
	CustomerID string `gorm:"size:32;index:idx_pledges_customer" json:"customer_id"`
	BranchID   string `gorm:"size:32;index:idx_pledges_branch" json:"branch_id"`
	State      State  `gorm:"type:enum('pending_approval','active','rejected','closed');default:'pending_approval'" json:"state"`

	// Aggregates maintained on every money movement; dashboards read
	// these instead of summing child rows.
	TotalExtraTaken   float64 `gorm:"type:decimal(18,2)" json:"total_extra_taken"`
	TotalPaid         float64 `gorm:"type:decimal(18,2)" json:"total_paid"`
	TotalInterestPaid float64 `gorm:"type:decimal(18,2)" json:"total_interest_paid"`

	Loan     *Loan            `gorm:"foreignKey:PledgeID;references:ID" json:"loan,omitempty"`
	Jewels   []Jewel          `gorm:"foreignKey:PledgeID;references:ID" json:"jewels,omitempty"`
	Extras   []Extra          `gorm:"foreignKey:PledgeID;references:ID" json:"extras,omitempty"`
	Payments []PartialPayment `gorm:"foreignKey:PledgeID;references:ID" json:"payments,omitempty"`
	Closure  *Closure         `gorm:"foreignKey:PledgeID;references:ID" json:"closure,omitempty"`

	StateUpdatedAt time.Time      `gorm:"autoCreateTime" json:"state_updated_at"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Pledge) TableName() string { return "pledges" }

// Loan is the monetary contract attached to a pledge. Valuation inputs
// are snapshotted at issuance so later rate changes cannot rewrite an
// issued contract.
type Loan struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID   string `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	PledgeID uint64 `gorm:"column:pledge_id;index" json:"-"`

	Principal      float64   `gorm:"type:decimal(18,2)" json:"principal"`
	MonthlyRatePct float64   `gorm:"type:decimal(6,3)" json:"monthly_rate_pct"`
	ValidityMonths int       `json:"validity_months"`
	StartDate      time.Time `gorm:"type:date" json:"start_date"`
	InterestTaken  bool      `json:"interest_taken"`

	ProcessingFee    float64 `gorm:"type:decimal(18,2)" json:"processing_fee"`
	EstimatedAmount  float64 `gorm:"type:decimal(18,2)" json:"estimated_amount"`
	DisbursedAmount  float64 `gorm:"type:decimal(18,2)" json:"disbursed_amount"`
	MetalRatePerGram float64 `gorm:"type:decimal(12,2)" json:"metal_rate_per_gram"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

type Jewel struct {
	ID          uint64  `gorm:"primaryKey;column:id" json:"-"`
	PledgeID    uint64  `gorm:"column:pledge_id;index" json:"-"`
	JewelTypeID uint64  `gorm:"column:jewel_type_id" json:"jewel_type_id"`
	Quality     string  `gorm:"size:32" json:"quality"`
	Weight      float64 `gorm:"type:decimal(10,3)" json:"weight"`
	StoneWeight float64 `gorm:"type:decimal(10,3)" json:"stone_weight"`
	NetWeight   float64 `gorm:"type:decimal(10,3)" json:"net_weight"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Jewel) TableName() string { return "jewels" }

// Recalculate restores the net-weight invariant. Call after any change
// to Weight or StoneWeight.
func (j *Jewel) Recalculate() {
	j.NetWeight = financials.NetWeight(j.Weight, j.StoneWeight)
}

// BeforeSave keeps the stored net weight consistent even when a caller
// forgets Recalculate.
func (j *Jewel) BeforeSave(*gorm.DB) error {
	j.Recalculate()
	return nil
}

// Extra is an additional disbursement against an already-active pledge.
// It raises exposure without restarting the loan clock.
type Extra struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	ExtraID       string    `gorm:"size:32;uniqueIndex:ux_extras_extra_id" json:"extra_id"`
	PledgeID      uint64    `gorm:"column:pledge_id;index" json:"-"`
	Amount        float64   `gorm:"type:decimal(18,2)" json:"amount"`
	TakenOn       time.Time `gorm:"type:date" json:"taken_on"`
	MoneySourceID uint64    `gorm:"column:money_source_id" json:"money_source_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Extra) TableName() string { return "extras" }

type PartialPayment struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	PaymentID     string    `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	PledgeID      uint64    `gorm:"column:pledge_id;index" json:"-"`
	PaidOn        time.Time `gorm:"type:date" json:"paid_on"`
	PrincipalPaid float64   `gorm:"type:decimal(18,2)" json:"principal_paid"`
	InterestPaid  float64   `gorm:"type:decimal(18,2)" json:"interest_paid"`
	MoneySourceID uint64    `gorm:"column:money_source_id" json:"money_source_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PartialPayment) TableName() string { return "partial_payments" }

// Closure is written exactly once, when the pledge leaves the active
// state. The unique index on pledge_id is the storage-level backstop for
// the at-most-one-closure invariant.
type Closure struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	ClosureID string `gorm:"size:32;uniqueIndex:ux_closures_closure_id" json:"closure_id"`
	PledgeID uint64 `gorm:"column:pledge_id;uniqueIndex:ux_closures_pledge" json:"-"`

	ClosedOn    time.Time `gorm:"type:date" json:"closed_on"`
	Method      string    `gorm:"size:16" json:"method"`
	BilledLabel string    `gorm:"size:64" json:"billed_duration"`

	TotalInterest       float64 `gorm:"type:decimal(18,2)" json:"total_interest"`
	InterestReduction   float64 `gorm:"type:decimal(18,2)" json:"interest_reduction"`
	AdditionalReduction float64 `gorm:"type:decimal(18,2)" json:"additional_reduction"`
	ReductionShortfall  float64 `gorm:"type:decimal(18,2)" json:"reduction_shortfall"`
	TotalPayable        float64 `gorm:"type:decimal(18,2)" json:"total_payable"`
	AmountPaid          float64 `gorm:"type:decimal(18,2)" json:"amount_paid"`
	BalanceAmount       float64 `gorm:"type:decimal(18,2)" json:"balance_amount"`
	MetalRatePerGram    float64 `gorm:"type:decimal(12,2)" json:"metal_rate_per_gram"`
	MoneySourceID       uint64  `gorm:"column:money_source_id" json:"money_source_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Closure) TableName() string { return "closures" }
