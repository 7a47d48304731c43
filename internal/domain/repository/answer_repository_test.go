package repository

import (
	"context"
	"testing"
	"time"

	"qna_forum/internal/common"
	"qna_forum/internal/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnswerRepoMock(t *testing.T) (AnswerRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPgAnswerRepository(db), mock
}

func TestAnswerCreate(t *testing.T) {
	repo, mock := newAnswerRepoMock(t)

	answer := &model.Answer{
		ID:         uuid.NewString(),
		QuestionID: uuid.NewString(),
		UserID:     uuid.NewString(),
		Content:    "an answer",
	}

	mock.ExpectExec("INSERT INTO answers").
		WithArgs(answer.ID, answer.QuestionID, answer.UserID, answer.Content).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), answer)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnswerCreateMissingQuestion(t *testing.T) {
	repo, mock := newAnswerRepoMock(t)

	// The FK constraint is the existence check; its violation must read as
	// not-found, not as an internal failure.
	mock.ExpectExec("INSERT INTO answers").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "answers_question_id_fkey"})

	err := repo.Create(context.Background(), &model.Answer{ID: uuid.NewString()})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAnswerListByQuestion(t *testing.T) {
	repo, mock := newAnswerRepoMock(t)

	newer := time.Now()
	older := newer.Add(-time.Minute)
	rows := sqlmock.NewRows([]string{"answer_id", "content", "user_id", "username", "created_at"}).
		AddRow("a-2", "newer answer", "u-2", "bob", newer).
		AddRow("a-1", "older answer", "u-1", "alice", older)

	mock.ExpectQuery("SELECT (.+) FROM answers a JOIN users u").
		WithArgs("q-1").
		WillReturnRows(rows)

	answers, err := repo.ListByQuestion(context.Background(), "q-1")
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "newer answer", answers[0].Content)
	assert.Equal(t, "bob", answers[0].Username)
}

func TestAnswerListByQuestionEmpty(t *testing.T) {
	repo, mock := newAnswerRepoMock(t)

	mock.ExpectQuery("SELECT (.+) FROM answers a JOIN users u").
		WithArgs("q-1").
		WillReturnRows(sqlmock.NewRows([]string{"answer_id", "content", "user_id", "username", "created_at"}))

	answers, err := repo.ListByQuestion(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Empty(t, answers)
	assert.NotNil(t, answers)
}
