package pledge

import "context"

type Repository interface {
	Create(ctx context.Context, p *Pledge) error
	Save(ctx context.Context, p *Pledge) error

	// GetByPledgeID / GetByLoanID load the pledge with its loan, jewels,
	// extras, payments and closure.
	GetByPledgeID(ctx context.Context, pledgeID string) (*Pledge, error)
	GetByLoanID(ctx context.Context, loanID string) (*Pledge, error)

	// ForUpdate variants lock the pledge row for the duration of the
	// surrounding transaction.
	GetByPledgeIDForUpdate(ctx context.Context, pledgeID string) (*Pledge, error)
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Pledge, error)

	AddExtra(ctx context.Context, e *Extra) error
	AddPayment(ctx context.Context, pp *PartialPayment) error
	CreateClosure(ctx context.Context, c *Closure) error
}
