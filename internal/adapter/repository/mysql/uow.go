package mysql

import (
	"context"

	"gorm.io/gorm"

	"pawnledger/internal/domain/pledge"
	"pawnledger/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinPledgeTx(ctx context.Context, pledgeID string, fn func(r uow.Repos, p *pledge.Pledge) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		// lock the pledge row up-front so concurrent transitions serialize
		p, err := r.Pledges.GetByPledgeIDForUpdate(ctx, pledgeID)
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, p *pledge.Pledge) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		p, err := r.Pledges.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Pledges: &PledgeRepository{db: tx},
		Rates:   &RateConfigRepository{db: tx},
	}
}
