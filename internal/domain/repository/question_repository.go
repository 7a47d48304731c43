package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"qna_forum/internal/common"
	"qna_forum/internal/domain/model"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	List(ctx context.Context) ([]model.Question, error)
	FindByID(ctx context.Context, id string) (*model.Question, error)
	SearchByTitle(ctx context.Context, fragment string) ([]model.Question, error)
}

type pgQuestionRepository struct {
	db *sql.DB
}

func NewPgQuestionRepository(db *sql.DB) QuestionRepository {
	return &pgQuestionRepository{db: db}
}

func (r *pgQuestionRepository) Create(ctx context.Context, question *model.Question) error {
	query := `INSERT INTO questions (question_id, title, description, user_id)
	          VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query,
		question.ID, question.Title, question.Description, question.UserID)
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.Create: %w", err)
	}
	return nil
}

// List returns every question with its author's username, newest first.
func (r *pgQuestionRepository) List(ctx context.Context) ([]model.Question, error) {
	query := `SELECT q.question_id, q.title, q.description, q.created_at, u.username
	          FROM questions q
	          JOIN users u ON q.user_id = u.user_id
	          ORDER BY q.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.List: %w", err)
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.CreatedAt, &q.Username); err != nil {
			return nil, fmt.Errorf("pgQuestionRepository.List scan: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.List rows: %w", err)
	}
	return questions, nil
}

func (r *pgQuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	query := `SELECT question_id, title, description, user_id, created_at
	          FROM questions WHERE question_id = $1`
	question := &model.Question{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&question.ID, &question.Title, &question.Description, &question.UserID, &question.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("question not found: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("pgQuestionRepository.FindByID: %w", err)
	}
	return question, nil
}

// SearchByTitle does a case-insensitive substring match.
func (r *pgQuestionRepository) SearchByTitle(ctx context.Context, fragment string) ([]model.Question, error) {
	query := `SELECT question_id, title, description, user_id, created_at
	          FROM questions WHERE title ILIKE $1
	          ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, "%"+fragment+"%")
	if err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.SearchByTitle: %w", err)
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.UserID, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgQuestionRepository.SearchByTitle scan: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.SearchByTitle rows: %w", err)
	}
	return questions, nil
}
