package uow

import (
	"context"

	"pawnledger/internal/domain/pledge"
	"pawnledger/internal/domain/rateconfig"
)

type Repos struct {
	Pledges pledge.Repository
	Rates   rateconfig.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the pledge row first, then pass it in
	WithinPledgeTx(ctx context.Context, pledgeID string, fn func(r Repos, p *pledge.Pledge) error) error
	// same, addressed by the loan's public id
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, p *pledge.Pledge) error) error
}
