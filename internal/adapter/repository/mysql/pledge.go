package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	pledgeDomain "pawnledger/internal/domain/pledge"
)

type PledgeRepository struct{ db *gorm.DB }

func NewPledgeRepository(db *gorm.DB) *PledgeRepository { return &PledgeRepository{db: db} }

func (r *PledgeRepository) Create(ctx context.Context, p *pledgeDomain.Pledge) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PledgeRepository) Save(ctx context.Context, p *pledgeDomain.Pledge) error {
	// Omit associations: children are written through their own methods.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *PledgeRepository) GetByPledgeID(ctx context.Context, pledgeID string) (*pledgeDomain.Pledge, error) {
	return r.get(ctx, r.preloaded(ctx).Where("pledge_id = ?", pledgeID))
}

func (r *PledgeRepository) GetByLoanID(ctx context.Context, loanID string) (*pledgeDomain.Pledge, error) {
	return r.get(ctx, r.preloaded(ctx).
		Joins("JOIN loans ON loans.pledge_id = pledges.id").
		Where("loans.loan_id = ?", loanID))
}

func (r *PledgeRepository) GetByPledgeIDForUpdate(ctx context.Context, pledgeID string) (*pledgeDomain.Pledge, error) {
	return r.get(ctx, r.preloaded(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("pledge_id = ?", pledgeID))
}

func (r *PledgeRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*pledgeDomain.Pledge, error) {
	return r.get(ctx, r.preloaded(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Joins("JOIN loans ON loans.pledge_id = pledges.id").
		Where("loans.loan_id = ?", loanID))
}

func (r *PledgeRepository) AddExtra(ctx context.Context, e *pledgeDomain.Extra) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *PledgeRepository) AddPayment(ctx context.Context, pp *pledgeDomain.PartialPayment) error {
	return r.db.WithContext(ctx).Create(pp).Error
}

func (r *PledgeRepository) CreateClosure(ctx context.Context, c *pledgeDomain.Closure) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *PledgeRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Loan").
		Preload("Jewels").
		Preload("Extras").
		Preload("Payments").
		Preload("Closure")
}

func (r *PledgeRepository) get(ctx context.Context, q *gorm.DB) (*pledgeDomain.Pledge, error) {
	var out pledgeDomain.Pledge
	if err := q.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pledgeDomain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}
