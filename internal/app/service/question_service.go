package service

import (
	"context"

	"qna_forum/internal/common"
	"qna_forum/internal/domain/model"
	"qna_forum/internal/domain/repository"

	"github.com/google/uuid"
)

type QuestionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

type AskQuestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// List returns all questions, newest first. An empty forum is an empty list,
// not an error.
func (s *QuestionService) List(ctx context.Context) ([]model.Question, error) {
	return s.questionRepo.List(ctx)
}

// Ask stores a new question for the authenticated user and returns its id.
// Identifiers are generated here rather than by the store so they are known
// before the insert commits.
func (s *QuestionService) Ask(ctx context.Context, userID string, req AskQuestionRequest) (string, error) {
	if req.Title == "" || req.Description == "" {
		return "", common.Errorf("title and description are required: %w", common.ErrValidation)
	}

	question := &model.Question{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		UserID:      userID,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return "", err
	}
	return question.ID, nil
}

func (s *QuestionService) Get(ctx context.Context, questionID string) (*model.Question, error) {
	return s.questionRepo.FindByID(ctx, questionID)
}
