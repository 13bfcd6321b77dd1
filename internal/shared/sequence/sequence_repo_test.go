package sequence_test

import (
	"context"
	"errors"
	"testing"

	"go-orgsuite/internal/shared/sequence"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type fakeResyncer struct {
	calls int
	err   error
}

func (f *fakeResyncer) Resync(ctx context.Context, table, column string) error {
	f.calls++
	return f.err
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "targets_pkey"}
}

func TestInsertWithRepair_SuccessFirstTry(t *testing.T) {
	repo := &fakeResyncer{}
	attempts := 0

	err := sequence.InsertWithRepair(context.Background(), repo, "targets", "id", func() error {
		attempts++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 0, repo.calls)
}

func TestInsertWithRepair_HealsOnceOnCollision(t *testing.T) {
	repo := &fakeResyncer{}
	attempts := 0

	err := sequence.InsertWithRepair(context.Background(), repo, "targets", "id", func() error {
		attempts++
		if attempts == 1 {
			return uniqueViolation()
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 1, repo.calls)
}

func TestInsertWithRepair_SecondCollisionPropagates(t *testing.T) {
	repo := &fakeResyncer{}
	attempts := 0
	second := &pgconn.PgError{Code: "23505", ConstraintName: "targets_pkey", Detail: "second"}

	err := sequence.InsertWithRepair(context.Background(), repo, "targets", "id", func() error {
		attempts++
		if attempts == 1 {
			return uniqueViolation()
		}
		return second
	})

	// Error percobaan kedua yang keluar, dan tidak ada retry ketiga
	assert.ErrorIs(t, err, second)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 1, repo.calls)
}

func TestInsertWithRepair_RepairFailurePropagates(t *testing.T) {
	boom := errors.New("setval failed")
	repo := &fakeResyncer{err: boom}
	attempts := 0

	err := sequence.InsertWithRepair(context.Background(), repo, "targets", "id", func() error {
		attempts++
		return uniqueViolation()
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
}

func TestInsertWithRepair_NonUniqueErrorNotRetried(t *testing.T) {
	repo := &fakeResyncer{}
	boom := errors.New("connection reset")
	attempts := 0

	err := sequence.InsertWithRepair(context.Background(), repo, "targets", "id", func() error {
		attempts++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 0, repo.calls)
}
