// Package closure settles loans: it previews what a borrower owes under
// a chosen interest method and performs the one-shot active → closed
// transition.
package closure

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	domain "pawnledger/internal/domain/pledge"
	"pawnledger/internal/domain/rateconfig"
	"pawnledger/internal/domain/uow"
	"pawnledger/internal/interest"
	"pawnledger/pkg/id"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	log  *zap.Logger
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{repo: repo, uow: tx, log: log}
}

type PreviewInput struct {
	LoanID          string
	Method          interest.Method
	AsOf            time.Time
	ManualReduction float64
}

// Preview quotes a closure without mutating anything. Identical inputs
// return identical quotes, so the UI can call this on every keystroke.
func (u *Usecase) Preview(ctx context.Context, in PreviewInput) (*interest.Quote, error) {
	p, err := u.repo.GetByLoanID(ctx, in.LoanID)
	if err != nil {
		return nil, err
	}
	if p.Loan == nil {
		return nil, domain.ErrNotFound
	}
	q, err := interest.QuoteClosure(quoteInput(p.Loan, in.Method, in.AsOf, in.ManualReduction))
	if err != nil {
		return nil, err
	}
	return &q, nil
}

type CloseInput struct {
	LoanID          string
	Method          interest.Method
	AsOf            time.Time
	ManualReduction float64

	MoneySourceID uint64
	AmountPaidNow float64
	// BalanceAmount is the outstanding balance the operator declares at
	// closure. It is recorded verbatim; partial settlement is allowed.
	BalanceAmount float64
}

type ClosureDTO struct {
	ClosureID     string         `json:"closure_id"`
	PledgeID      string         `json:"pledge_id"`
	LoanID        string         `json:"loan_id"`
	Quote         interest.Quote `json:"quote"`
	AmountPaid    float64        `json:"amount_paid"`
	BalanceAmount float64        `json:"balance_amount"`
	ClosedOn      time.Time      `json:"closed_on"`
}

// Close performs the active → closed transition exactly once. The
// pledge row is locked for the duration of the transaction, so of two
// concurrent closes one commits and the other sees ErrAlreadyClosed.
func (u *Usecase) Close(ctx context.Context, in CloseInput) (*ClosureDTO, error) {
	if in.MoneySourceID == 0 {
		return nil, rateconfig.ErrMissingPaymentSource
	}
	if in.AmountPaidNow < 0 || in.BalanceAmount < 0 {
		return nil, ErrInvalidInput
	}

	var dto *ClosureDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, p *domain.Pledge) error {
		switch p.State {
		case domain.StateActive:
		case domain.StateClosed:
			return domain.ErrAlreadyClosed
		default:
			return domain.ErrInvalidTransition
		}
		if p.Loan == nil {
			return domain.ErrNotFound
		}

		q, err := interest.QuoteClosure(quoteInput(p.Loan, in.Method, in.AsOf, in.ManualReduction))
		if err != nil {
			return err
		}

		src, err := r.Rates.GetMoneySource(ctx, in.MoneySourceID)
		if err != nil {
			return rateconfig.ErrMissingPaymentSource
		}
		if !src.AllowInbound {
			return rateconfig.ErrSourceDisallowed
		}
		src.Balance += in.AmountPaidNow
		if err := r.Rates.SaveMoneySource(ctx, src); err != nil {
			return err
		}

		c := &domain.Closure{
			ClosureID:           id.NewID32(),
			PledgeID:            p.ID,
			ClosedOn:            dateOrNow(in.AsOf),
			Method:              string(q.Method),
			BilledLabel:         q.BilledLabel,
			TotalInterest:       q.TotalInterest,
			InterestReduction:   q.InterestReduction,
			AdditionalReduction: q.AdditionalReduction,
			ReductionShortfall:  q.ReductionShortfall,
			TotalPayable:        q.TotalPayable,
			AmountPaid:          in.AmountPaidNow,
			BalanceAmount:       in.BalanceAmount,
			MetalRatePerGram:    u.metalRateSnapshot(ctx, r, p),
			MoneySourceID:       in.MoneySourceID,
		}
		if err := r.Pledges.CreateClosure(ctx, c); err != nil {
			return err
		}

		p.State = domain.StateClosed
		p.StateUpdatedAt = time.Now().UTC()
		p.TotalPaid += in.AmountPaidNow
		if err := r.Pledges.Save(ctx, p); err != nil {
			return err
		}

		dto = &ClosureDTO{
			ClosureID:     c.ClosureID,
			PledgeID:      p.PledgeID,
			LoanID:        p.Loan.LoanID,
			Quote:         q,
			AmountPaid:    c.AmountPaid,
			BalanceAmount: c.BalanceAmount,
			ClosedOn:      c.ClosedOn,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("pledge closed",
		zap.String("loan_id", in.LoanID),
		zap.String("method", string(in.Method)),
		zap.Float64("payable", dto.Quote.TotalPayable),
		zap.Float64("paid", dto.AmountPaid))
	return dto, nil
}

// metalRateSnapshot fetches today's rate for the first jewel's metal,
// defaulting to gold. A missing quote records as zero rather than
// blocking the closure.
func (u *Usecase) metalRateSnapshot(ctx context.Context, r uow.Repos, p *domain.Pledge) float64 {
	metal := rateconfig.MetalGold
	if len(p.Jewels) > 0 {
		if jt, err := r.Rates.GetJewelType(ctx, p.Jewels[0].JewelTypeID); err == nil {
			metal = jt.Metal
		}
	}
	mr, err := r.Rates.LatestMetalRate(ctx, metal)
	if err != nil {
		return 0
	}
	return mr.RatePerGram
}

func quoteInput(l *domain.Loan, m interest.Method, asOf time.Time, manual float64) interest.QuoteInput {
	return interest.QuoteInput{
		Method:          m,
		Principal:       l.Principal,
		MonthlyRatePct:  l.MonthlyRatePct,
		StartDate:       l.StartDate,
		AsOfDate:        asOf,
		ValidityMonths:  l.ValidityMonths,
		InterestTaken:   l.InterestTaken,
		ManualReduction: manual,
	}
}

func dateOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
