package service

import (
	"context"

	"qna_forum/internal/common"
	"qna_forum/internal/domain/model"
	"qna_forum/internal/domain/repository"

	"github.com/google/uuid"
)

type AnswerService struct {
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
}

func NewAnswerService(answerRepo repository.AnswerRepository, questionRepo repository.QuestionRepository) *AnswerService {
	return &AnswerService{answerRepo: answerRepo, questionRepo: questionRepo}
}

type AnswerListing struct {
	QuestionTitle string         `json:"questionTitle"`
	Answers       []model.Answer `json:"answers"`
}

// ListForQuestion returns the question's title with its answers, newest first.
// An unknown question id is not-found; a question without answers is an empty
// list.
func (s *AnswerService) ListForQuestion(ctx context.Context, questionID string) (*AnswerListing, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	answers, err := s.answerRepo.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	return &AnswerListing{QuestionTitle: question.Title, Answers: answers}, nil
}

// Post stores an answer for the authenticated user. The insert leans on the
// foreign key: answering a question that no longer exists comes back as
// not-found from the repo, never as a silent success.
func (s *AnswerService) Post(ctx context.Context, userID, questionID, content string) (string, error) {
	if questionID == "" || content == "" {
		return "", common.Errorf("please provide answer content and question ID: %w", common.ErrValidation)
	}

	answer := &model.Answer{
		ID:         uuid.NewString(),
		QuestionID: questionID,
		UserID:     userID,
		Content:    content,
	}
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return "", err
	}
	return answer.ID, nil
}
