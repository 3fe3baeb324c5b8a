package pledgemock

import (
	"context"
	"errors"

	domain "pawnledger/internal/domain/pledge"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("pledgemock: method not implemented")

// Repo is a function-backed mock satisfying domain.Repository. Fill in
// the fields a test needs; unfilled lookups fail loudly.
type Repo struct {
	CreateFn                 func(ctx context.Context, p *domain.Pledge) error
	SaveFn                   func(ctx context.Context, p *domain.Pledge) error
	GetByPledgeIDFn          func(ctx context.Context, pledgeID string) (*domain.Pledge, error)
	GetByLoanIDFn            func(ctx context.Context, loanID string) (*domain.Pledge, error)
	GetByPledgeIDForUpdateFn func(ctx context.Context, pledgeID string) (*domain.Pledge, error)
	GetByLoanIDForUpdateFn   func(ctx context.Context, loanID string) (*domain.Pledge, error)
	AddExtraFn               func(ctx context.Context, e *domain.Extra) error
	AddPaymentFn             func(ctx context.Context, pp *domain.PartialPayment) error
	CreateClosureFn          func(ctx context.Context, c *domain.Closure) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Pledge) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Pledge) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPledgeID(ctx context.Context, pledgeID string) (*domain.Pledge, error) {
	if m.GetByPledgeIDFn != nil {
		return m.GetByPledgeIDFn(ctx, pledgeID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Pledge, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByPledgeIDForUpdate(ctx context.Context, pledgeID string) (*domain.Pledge, error) {
	if m.GetByPledgeIDForUpdateFn != nil {
		return m.GetByPledgeIDForUpdateFn(ctx, pledgeID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Pledge, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) AddExtra(ctx context.Context, e *domain.Extra) error {
	if m.AddExtraFn != nil {
		return m.AddExtraFn(ctx, e)
	}
	return nil
}

func (m *Repo) AddPayment(ctx context.Context, pp *domain.PartialPayment) error {
	if m.AddPaymentFn != nil {
		return m.AddPaymentFn(ctx, pp)
	}
	return nil
}

func (m *Repo) CreateClosure(ctx context.Context, c *domain.Closure) error {
	if m.CreateClosureFn != nil {
		return m.CreateClosureFn(ctx, c)
	}
	return nil
}
