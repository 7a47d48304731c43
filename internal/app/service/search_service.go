package service

import (
	"context"

	"qna_forum/internal/common"
	"qna_forum/internal/domain/model"
	"qna_forum/internal/domain/repository"
)

type SearchService struct {
	questionRepo repository.QuestionRepository
}

func NewSearchService(questionRepo repository.QuestionRepository) *SearchService {
	return &SearchService{questionRepo: questionRepo}
}

// SearchQuestions matches the fragment against question titles,
// case-insensitively. Zero matches is an empty list.
func (s *SearchService) SearchQuestions(ctx context.Context, titleFragment string) ([]model.Question, error) {
	if titleFragment == "" {
		return nil, common.Errorf("title is required: %w", common.ErrValidation)
	}
	return s.questionRepo.SearchByTitle(ctx, titleFragment)
}
