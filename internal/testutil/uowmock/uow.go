package uowmock

import (
	"context"
	"errors"

	"pawnledger/internal/domain/pledge"
	"pawnledger/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock satisfying uow.UnitOfWork. Passthrough
// builds a mock that skips transactions entirely and hands the callback
// the given repos plus the pledge from a lookup function.
type UoW struct {
	WithinTxFn       func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinPledgeTxFn func(ctx context.Context, pledgeID string, fn func(r uow.Repos, p *pledge.Pledge) error) error
	WithinLoanTxFn   func(ctx context.Context, loanID string, fn func(r uow.Repos, p *pledge.Pledge) error) error
}

// Passthrough wires all three methods to run the callback directly
// against the supplied repos, resolving pledges via lookup.
func Passthrough(r uow.Repos, lookup func(id string) (*pledge.Pledge, error)) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinPledgeTxFn: func(ctx context.Context, pledgeID string, fn func(r uow.Repos, p *pledge.Pledge) error) error {
			p, err := lookup(pledgeID)
			if err != nil {
				return err
			}
			return fn(r, p)
		},
		WithinLoanTxFn: func(ctx context.Context, loanID string, fn func(r uow.Repos, p *pledge.Pledge) error) error {
			p, err := lookup(loanID)
			if err != nil {
				return err
			}
			return fn(r, p)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinPledgeTx(ctx context.Context, pledgeID string, fn func(r uow.Repos, p *pledge.Pledge) error) error {
	if m.WithinPledgeTxFn != nil {
		return m.WithinPledgeTxFn(ctx, pledgeID, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, p *pledge.Pledge) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	return errUnimplemented
}
