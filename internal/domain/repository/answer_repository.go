package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"qna_forum/internal/common"
	"qna_forum/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer *model.Answer) error
	ListByQuestion(ctx context.Context, questionID string) ([]model.Answer, error)
}

type pgAnswerRepository struct {
	db *sql.DB
}

func NewPgAnswerRepository(db *sql.DB) AnswerRepository {
	return &pgAnswerRepository{db: db}
}

func (r *pgAnswerRepository) Create(ctx context.Context, answer *model.Answer) error {
	query := `INSERT INTO answers (answer_id, question_id, user_id, content)
	          VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query,
		answer.ID, answer.QuestionID, answer.UserID, answer.Content)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // FK violation: question is gone
			return fmt.Errorf("question not found: %w", common.ErrNotFound)
		}
		return fmt.Errorf("pgAnswerRepository.Create: %w", err)
	}
	return nil
}

// ListByQuestion returns a question's answers with author usernames, newest first.
func (r *pgAnswerRepository) ListByQuestion(ctx context.Context, questionID string) ([]model.Answer, error) {
	query := `SELECT a.answer_id, a.content, a.user_id, u.username, a.created_at
	          FROM answers a
	          JOIN users u ON u.user_id = a.user_id
	          WHERE a.question_id = $1
	          ORDER BY a.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("pgAnswerRepository.ListByQuestion: %w", err)
	}
	defer rows.Close()

	answers := []model.Answer{}
	for rows.Next() {
		var a model.Answer
		if err := rows.Scan(&a.ID, &a.Content, &a.UserID, &a.Username, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgAnswerRepository.ListByQuestion scan: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgAnswerRepository.ListByQuestion rows: %w", err)
	}
	return answers, nil
}
