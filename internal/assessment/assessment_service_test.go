package assessment_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"go-orgsuite/internal/assessment"
	assessmenterrors "go-orgsuite/internal/assessment/errors"
	"go-orgsuite/internal/tenant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newServiceWithMock(t *testing.T) (assessment.Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := assessment.NewRepository(db)
	return assessment.NewService(db, repo), mock
}

func validRequest() assessment.CreateAssessmentRequest {
	return assessment.CreateAssessmentRequest{
		EmployeeID:  uuid.New().String(),
		Title:       "Penilaian Q1",
		PeriodStart: "2026-01-01",
		PeriodEnd:   "2026-03-31",
		Items: []assessment.CreateAssessmentItem{
			{Name: "Disiplin", Weight: 0.4, Score: 80},
			{Name: "Inisiatif", Weight: 0.6, Score: 75},
		},
	}
}

func TestAssessmentService_Create(t *testing.T) {
	orgID := uuid.New().String()
	sc := tenant.Scope{ActiveOrgID: orgID}

	insertHeader := regexp.QuoteMeta("INSERT INTO assessments")
	insertItem := regexp.QuoteMeta("INSERT INTO assessment_items")

	t.Run("header and items committed together", func(t *testing.T) {
		svc, mock := newServiceWithMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(insertHeader).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertItem).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertItem).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		resp, err := svc.Create(context.Background(), sc, validRequest())

		assert.NoError(t, err)
		assert.Len(t, resp.Items, 2)
		assert.Equal(t, orgID, resp.OrgID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("item failure rolls back header", func(t *testing.T) {
		svc, mock := newServiceWithMock(t)
		dbErr := errors.New("constraint violated")

		mock.ExpectBegin()
		mock.ExpectExec(insertHeader).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertItem).WillReturnError(dbErr)
		mock.ExpectRollback()

		_, err := svc.Create(context.Background(), sc, validRequest())

		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty items rejected before touching db", func(t *testing.T) {
		svc, mock := newServiceWithMock(t)

		req := validRequest()
		req.Items = nil
		_, err := svc.Create(context.Background(), sc, req)

		assert.ErrorIs(t, err, assessmenterrors.ErrNoItems)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inverted period rejected", func(t *testing.T) {
		svc, _ := newServiceWithMock(t)

		req := validRequest()
		req.PeriodStart = "2026-06-01"
		req.PeriodEnd = "2026-01-01"
		_, err := svc.Create(context.Background(), sc, req)

		assert.ErrorIs(t, err, assessmenterrors.ErrInvalidPeriod)
	})
}

func TestAssessmentService_Delete(t *testing.T) {
	orgID := uuid.New().String()
	sc := tenant.Scope{ActiveOrgID: orgID}

	t.Run("row outside scope reported as not found", func(t *testing.T) {
		svc, mock := newServiceWithMock(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM assessments WHERE id = $1 AND org_id = $2")).
			WithArgs(sqlmock.AnyArg(), orgID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := svc.Delete(context.Background(), sc, uuid.New().String())

		assert.ErrorIs(t, err, assessmenterrors.ErrAssessmentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
