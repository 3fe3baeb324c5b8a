package pledge

import (
	"time"

	domain "pawnledger/internal/domain/pledge"
)

type JewelInput struct {
	JewelTypeID uint64  `json:"jewel_type_id"`
	Quality     string  `json:"quality"`
	Weight      float64 `json:"weight"`
	StoneWeight float64 `json:"stone_weight"`
}

type CreateInput struct {
	CustomerID string `json:"customer_id"`
	BranchID   string `json:"branch_id"`

	Amount               float64   `json:"amount"`
	StartDate            time.Time `json:"start_date"` // zero value means today
	InterestRateID       uint64    `json:"interest_rate_id"`
	ValidityOptionID     uint64    `json:"validity_option_id"`
	InterestTaken        bool      `json:"interest_taken"`
	IncludeProcessingFee bool      `json:"include_processing_fee"`

	Jewels []JewelInput `json:"jewels"`
}

type ExtraInput struct {
	PledgeID      string
	Amount        float64
	TakenOn       time.Time
	MoneySourceID uint64
}

type PaymentInput struct {
	PledgeID      string
	PaidOn        time.Time
	PrincipalPaid float64
	InterestPaid  float64
	MoneySourceID uint64
}

// FinancialsDTO is the live-figures preview for the creation form,
// including the option ids actually selected after scoping.
type FinancialsDTO struct {
	ProcessingFee            float64 `json:"processing_fee"`
	EstimatedAmount          float64 `json:"estimated_amount"`
	Disbursable              float64 `json:"disbursable"`
	TotalNetWeight           float64 `json:"total_net_weight"`
	SelectedInterestRateID   uint64  `json:"selected_interest_rate_id"`
	SelectedValidityOptionID uint64  `json:"selected_validity_option_id"`
	MonthlyRatePct           float64 `json:"monthly_rate_pct"`
	ValidityMonths           int     `json:"validity_months"`
	MetalRatePerGram         float64 `json:"metal_rate_per_gram"`
}

type LoanDTO struct {
	LoanID           string    `json:"loan_id"`
	Principal        float64   `json:"principal"`
	MonthlyRatePct   float64   `json:"monthly_rate_pct"`
	ValidityMonths   int       `json:"validity_months"`
	StartDate        time.Time `json:"start_date"`
	InterestTaken    bool      `json:"interest_taken"`
	ProcessingFee    float64   `json:"processing_fee"`
	EstimatedAmount  float64   `json:"estimated_amount"`
	DisbursedAmount  float64   `json:"disbursed_amount"`
	MetalRatePerGram float64   `json:"metal_rate_per_gram"`
}

type PledgeDTO struct {
	PledgeID          string                  `json:"pledge_id"`
	CustomerID        string                  `json:"customer_id"`
	BranchID          string                  `json:"branch_id"`
	State             string                  `json:"state"`
	TotalExtraTaken   float64                 `json:"total_extra_taken"`
	TotalPaid         float64                 `json:"total_paid"`
	TotalInterestPaid float64                 `json:"total_interest_paid"`
	Loan              *LoanDTO                `json:"loan,omitempty"`
	Jewels            []domain.Jewel          `json:"jewels,omitempty"`
	Extras            []domain.Extra          `json:"extras,omitempty"`
	Payments          []domain.PartialPayment `json:"payments,omitempty"`
	Closure           *domain.Closure         `json:"closure,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
}

func toDTO(p *domain.Pledge) *PledgeDTO {
	dto := &PledgeDTO{
		PledgeID:          p.PledgeID,
		CustomerID:        p.CustomerID,
		BranchID:          p.BranchID,
		State:             string(p.State),
		TotalExtraTaken:   p.TotalExtraTaken,
		TotalPaid:         p.TotalPaid,
		TotalInterestPaid: p.TotalInterestPaid,
		Jewels:            p.Jewels,
		Extras:            p.Extras,
		Payments:          p.Payments,
		Closure:           p.Closure,
		CreatedAt:         p.CreatedAt,
	}
	if p.Loan != nil {
		dto.Loan = &LoanDTO{
			LoanID:           p.Loan.LoanID,
			Principal:        p.Loan.Principal,
			MonthlyRatePct:   p.Loan.MonthlyRatePct,
			ValidityMonths:   p.Loan.ValidityMonths,
			StartDate:        p.Loan.StartDate,
			InterestTaken:    p.Loan.InterestTaken,
			ProcessingFee:    p.Loan.ProcessingFee,
			EstimatedAmount:  p.Loan.EstimatedAmount,
			DisbursedAmount:  p.Loan.DisbursedAmount,
			MetalRatePerGram: p.Loan.MetalRatePerGram,
		}
	}
	return dto
}
