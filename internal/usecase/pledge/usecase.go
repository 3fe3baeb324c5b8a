package pledge

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	domain "pawnledger/internal/domain/pledge"
	"pawnledger/internal/domain/rateconfig"
	"pawnledger/internal/domain/uow"
	"pawnledger/internal/financials"
	"pawnledger/pkg/id"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	repo  domain.Repository
	rates rateconfig.Repository
	uow   uow.UnitOfWork
	log   *zap.Logger
}

func NewUsecase(repo domain.Repository, rates rateconfig.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{repo: repo, rates: rates, uow: tx, log: log}
}

// resolution holds the configuration picked for a set of loan inputs,
// after option scoping and auto-selection.
type resolution struct {
	jewelType *rateconfig.JewelType
	rate      *rateconfig.InterestRate
	validity  *rateconfig.ValidityOption
	metalRate float64
	figures   financials.Figures
}

// resolve scopes the rate and validity options to the first jewel's
// type, auto-selecting when the requested option is out of scope, and
// derives the live figures from the result.
func (u *Usecase) resolve(ctx context.Context, in CreateInput) (*resolution, error) {
	if in.Amount <= 0 || len(in.Jewels) == 0 {
		return nil, ErrInvalidInput
	}

	jt, err := u.rates.GetJewelType(ctx, in.Jewels[0].JewelTypeID)
	if err != nil {
		return nil, err
	}

	allRates, err := u.rates.ListInterestRates(ctx)
	if err != nil {
		return nil, err
	}
	rate := rateconfig.PickRate(rateconfig.ScopedRates(allRates, jt.ID), in.InterestRateID)
	if rate == nil {
		return nil, rateconfig.ErrNotFound
	}

	allValidities, err := u.rates.ListValidityOptions(ctx)
	if err != nil {
		return nil, err
	}
	validity := rateconfig.PickValidity(rateconfig.ScopedValidities(allValidities, jt.ID), in.ValidityOptionID)
	if validity == nil {
		return nil, rateconfig.ErrNotFound
	}

	var metalRate float64
	if mr, err := u.rates.LatestMetalRate(ctx, jt.Metal); err == nil {
		metalRate = mr.RatePerGram
	} else if !errors.Is(err, rateconfig.ErrNotFound) {
		return nil, err
	}

	weights := make([]financials.JewelInput, 0, len(in.Jewels))
	for _, j := range in.Jewels {
		weights = append(weights, financials.JewelInput{Weight: j.Weight, StoneWeight: j.StoneWeight})
	}

	figures := financials.Derive(financials.Inputs{
		Amount:               in.Amount,
		Jewels:               weights,
		IncludeProcessingFee: in.IncludeProcessingFee,
		InterestTaken:        in.InterestTaken,
		MonthlyRatePct:       rate.RatePct,
		EstimationPct:        rate.EstimationPct,
		FeePct:               jt.ProcessingFeePct,
		FeeCap:               jt.ProcessingFeeMax,
		MetalRatePerGram:     metalRate,
	})

	return &resolution{jewelType: jt, rate: rate, validity: validity, metalRate: metalRate, figures: figures}, nil
}

// PreviewFinancials recomputes the live figures for the loan-creation
// form. It mirrors what Create would snapshot, without persisting
// anything, so the UI can call it after every input change.
func (u *Usecase) PreviewFinancials(ctx context.Context, in CreateInput) (*FinancialsDTO, error) {
	// A form with no amount or no jewels yet has nothing to derive;
	// that is a transient UI state, not a fault.
	if in.Amount <= 0 || len(in.Jewels) == 0 {
		return &FinancialsDTO{}, nil
	}
	res, err := u.resolve(ctx, in)
	if err != nil {
		return nil, err
	}
	return &FinancialsDTO{
		ProcessingFee:            res.figures.ProcessingFee,
		EstimatedAmount:          res.figures.EstimatedAmount,
		Disbursable:              res.figures.Disbursable,
		TotalNetWeight:           res.figures.TotalNetWeight,
		SelectedInterestRateID:   res.rate.ID,
		SelectedValidityOptionID: res.validity.ID,
		MonthlyRatePct:           res.rate.RatePct,
		ValidityMonths:           res.validity.Months,
		MetalRatePerGram:         res.metalRate,
	}, nil
}

// Create issues a new pledge with its loan and jewel line items. The
// derived figures (fee, estimate, disbursable) are snapshotted onto the
// loan. When the requested amount exceeds the estimated valuation the
// pledge starts in pending_approval and waits for an explicit Approve.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*PledgeDTO, error) {
	if len(in.CustomerID) != 32 {
		return nil, ErrInvalidInput
	}
	res, err := u.resolve(ctx, in)
	if err != nil {
		return nil, err
	}
	rate, validity, figures := res.rate, res.validity, res.figures
	metalRate := res.metalRate

	jewels := make([]domain.Jewel, 0, len(in.Jewels))
	for _, j := range in.Jewels {
		jw := domain.Jewel{
			JewelTypeID: j.JewelTypeID,
			Quality:     j.Quality,
			Weight:      j.Weight,
			StoneWeight: j.StoneWeight,
		}
		jw.Recalculate()
		jewels = append(jewels, jw)
	}

	state := domain.StateActive
	if in.Amount > figures.EstimatedAmount {
		state = domain.StatePendingApproval
	}

	start := in.StartDate
	if start.IsZero() {
		start = time.Now().UTC()
	}

	p := &domain.Pledge{
		PledgeID:   id.NewID32(),
		CustomerID: in.CustomerID,
		BranchID:   in.BranchID,
		State:      state,
		Loan: &domain.Loan{
			LoanID:           id.NewID32(),
			Principal:        in.Amount,
			MonthlyRatePct:   rate.RatePct,
			ValidityMonths:   validity.Months,
			StartDate:        start,
			InterestTaken:    in.InterestTaken,
			ProcessingFee:    figures.ProcessingFee,
			EstimatedAmount:  figures.EstimatedAmount,
			DisbursedAmount:  figures.Disbursable,
			MetalRatePerGram: metalRate,
		},
		Jewels:         jewels,
		StateUpdatedAt: time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	u.log.Info("pledge created",
		zap.String("pledge_id", p.PledgeID),
		zap.String("state", string(p.State)),
		zap.Float64("principal", in.Amount))
	return toDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, pledgeID string) (*PledgeDTO, error) {
	p, err := u.repo.GetByPledgeID(ctx, pledgeID)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

// Approve delivers the external admin decision for an over-estimate
// pledge: pending_approval → active.
func (u *Usecase) Approve(ctx context.Context, pledgeID string) (*PledgeDTO, error) {
	return u.decide(ctx, pledgeID, domain.StateActive)
}

// Reject is the other outcome of the approval flow: pending_approval →
// rejected, a terminal state.
func (u *Usecase) Reject(ctx context.Context, pledgeID string) (*PledgeDTO, error) {
	return u.decide(ctx, pledgeID, domain.StateRejected)
}

func (u *Usecase) decide(ctx context.Context, pledgeID string, next domain.State) (*PledgeDTO, error) {
	var dto *PledgeDTO
	err := u.uow.WithinPledgeTx(ctx, pledgeID, func(r uow.Repos, p *domain.Pledge) error {
		if p.State != domain.StatePendingApproval {
			return domain.ErrInvalidTransition
		}
		p.State = next
		p.StateUpdatedAt = time.Now().UTC()
		if err := r.Pledges.Save(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("approval decision applied",
		zap.String("pledge_id", pledgeID), zap.String("state", dto.State))
	return dto, nil
}

// AddExtra disburses an additional amount against an active pledge. The
// money source pays it out, so the source must allow outbound movement.
func (u *Usecase) AddExtra(ctx context.Context, in ExtraInput) (*PledgeDTO, error) {
	if in.Amount <= 0 {
		return nil, ErrInvalidInput
	}
	if in.MoneySourceID == 0 {
		return nil, rateconfig.ErrMissingPaymentSource
	}
	var dto *PledgeDTO
	err := u.uow.WithinPledgeTx(ctx, in.PledgeID, func(r uow.Repos, p *domain.Pledge) error {
		if err := mustBeActive(p); err != nil {
			return err
		}
		src, err := r.Rates.GetMoneySource(ctx, in.MoneySourceID)
		if err != nil {
			return rateconfig.ErrMissingPaymentSource
		}
		if !src.AllowOutbound {
			return rateconfig.ErrSourceDisallowed
		}
		src.Balance -= in.Amount
		if err := r.Rates.SaveMoneySource(ctx, src); err != nil {
			return err
		}

		e := &domain.Extra{
			ExtraID:       id.NewID32(),
			PledgeID:      p.ID,
			Amount:        in.Amount,
			TakenOn:       dateOrNow(in.TakenOn),
			MoneySourceID: in.MoneySourceID,
		}
		if err := r.Pledges.AddExtra(ctx, e); err != nil {
			return err
		}

		p.TotalExtraTaken += in.Amount
		if err := r.Pledges.Save(ctx, p); err != nil {
			return err
		}
		p.Extras = append(p.Extras, *e)
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("extra disbursed",
		zap.String("pledge_id", in.PledgeID), zap.Float64("amount", in.Amount))
	return dto, nil
}

// AddPayment records a partial payment split into principal and
// interest portions. It never closes the pledge by itself.
func (u *Usecase) AddPayment(ctx context.Context, in PaymentInput) (*PledgeDTO, error) {
	if in.PrincipalPaid < 0 || in.InterestPaid < 0 || in.PrincipalPaid+in.InterestPaid <= 0 {
		return nil, ErrInvalidInput
	}
	if in.MoneySourceID == 0 {
		return nil, rateconfig.ErrMissingPaymentSource
	}
	var dto *PledgeDTO
	err := u.uow.WithinPledgeTx(ctx, in.PledgeID, func(r uow.Repos, p *domain.Pledge) error {
		if err := mustBeActive(p); err != nil {
			return err
		}
		src, err := r.Rates.GetMoneySource(ctx, in.MoneySourceID)
		if err != nil {
			return rateconfig.ErrMissingPaymentSource
		}
		if !src.AllowInbound {
			return rateconfig.ErrSourceDisallowed
		}
		total := in.PrincipalPaid + in.InterestPaid
		src.Balance += total
		if err := r.Rates.SaveMoneySource(ctx, src); err != nil {
			return err
		}

		pp := &domain.PartialPayment{
			PaymentID:     id.NewID32(),
			PledgeID:      p.ID,
			PaidOn:        dateOrNow(in.PaidOn),
			PrincipalPaid: in.PrincipalPaid,
			InterestPaid:  in.InterestPaid,
			MoneySourceID: in.MoneySourceID,
		}
		if err := r.Pledges.AddPayment(ctx, pp); err != nil {
			return err
		}

		p.TotalPaid += total
		p.TotalInterestPaid += in.InterestPaid
		if err := r.Pledges.Save(ctx, p); err != nil {
			return err
		}
		p.Payments = append(p.Payments, *pp)
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("partial payment recorded",
		zap.String("pledge_id", in.PledgeID),
		zap.Float64("principal", in.PrincipalPaid),
		zap.Float64("interest", in.InterestPaid))
	return dto, nil
}

func mustBeActive(p *domain.Pledge) error {
	switch p.State {
	case domain.StateActive:
		return nil
	case domain.StateClosed:
		return domain.ErrAlreadyClosed
	default:
		return domain.ErrNotActive
	}
}

func dateOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
