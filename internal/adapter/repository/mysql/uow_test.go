package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "pawnledger/internal/domain/pledge"
	"pawnledger/internal/domain/uow"
	"pawnledger/pkg/id"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	repo := NewPledgeRepository(db)

	p := makePledge()
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Pledges.Create(ctx, p); err != nil {
			return err
		}
		if p.ID == 0 {
			t.Fatal("pledge auto ID not set")
		}
		return r.Pledges.AddExtra(ctx, &domain.Extra{
			ExtraID: id.NewID32(), PledgeID: p.ID, Amount: 5000, TakenOn: time.Now().UTC(),
		})
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	got, err := repo.GetByPledgeID(ctx, p.PledgeID)
	if err != nil {
		t.Fatalf("pledge not visible after commit: %v", err)
	}
	if len(got.Extras) != 1 {
		t.Fatalf("extras=%d want 1 after commit", len(got.Extras))
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	repo := NewPledgeRepository(db)

	sentinel := errors.New("boom")
	p := makePledge()

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Pledges.Create(ctx, p); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := repo.GetByPledgeID(ctx, p.PledgeID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected pledge absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinPledgeTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	repo := NewPledgeRepository(db)

	seed := makePledge()
	seed.State = domain.StatePendingApproval
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("seed pledge: %v", err)
	}

	err := guow.WithinPledgeTx(ctx, seed.PledgeID, func(r uow.Repos, p *domain.Pledge) error {
		if p == nil || p.PledgeID != seed.PledgeID || p.State != domain.StatePendingApproval {
			t.Fatalf("unexpected pledge passed to fn: %+v", p)
		}
		p.State = domain.StateActive
		p.StateUpdatedAt = time.Now().UTC()
		return r.Pledges.Save(ctx, p)
	})
	if err != nil {
		t.Fatalf("WithinPledgeTx commit err: %v", err)
	}

	got, err := repo.GetByPledgeID(ctx, seed.PledgeID)
	if err != nil {
		t.Fatalf("GetByPledgeID post-commit: %v", err)
	}
	if got.State != domain.StateActive {
		t.Fatalf("state not updated, got=%s", got.State)
	}
}

func TestGormUoW_WithinLoanTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	repo := NewPledgeRepository(db)

	seed := makePledge()
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("seed pledge: %v", err)
	}

	sentinel := errors.New("stop")

	_ = guow.WithinLoanTx(ctx, seed.Loan.LoanID, func(r uow.Repos, p *domain.Pledge) error {
		if err := r.Pledges.CreateClosure(ctx, &domain.Closure{
			ClosureID: id.NewID32(), PledgeID: p.ID, ClosedOn: time.Now().UTC(),
			Method: "method1", TotalPayable: 104500,
		}); err != nil {
			return err
		}
		p.State = domain.StateClosed
		if err := r.Pledges.Save(ctx, p); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	got, err := repo.GetByPledgeID(ctx, seed.PledgeID)
	if err != nil {
		t.Fatalf("post-rollback GetByPledgeID: %v", err)
	}
	if got.State != domain.StateActive {
		t.Fatalf("expected active after rollback, got %s", got.State)
	}
	if got.Closure != nil {
		t.Fatalf("closure must be absent after rollback, got %+v", got.Closure)
	}
}

func TestGormUoW_WithinLoanTx_NotFound(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinLoanTx(context.Background(), id.NewID32(), func(r uow.Repos, p *domain.Pledge) error {
		t.Fatal("callback must not run when the loan is missing")
		return nil
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}
