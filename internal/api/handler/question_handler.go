package handler

import (
	"encoding/json"
	"net/http"

	"qna_forum/internal/api/middleware"
	"qna_forum/internal/app/service"
	"qna_forum/internal/common"
	"qna_forum/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type QuestionHandler struct {
	questionService *service.QuestionService
	answerService   *service.AnswerService
}

func NewQuestionHandler(qs *service.QuestionService, as *service.AnswerService) *QuestionHandler {
	return &QuestionHandler{questionService: qs, answerService: as}
}

func (h *QuestionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listQuestions)
	r.Get("/{question_id}", h.getQuestion)
	r.Get("/{question_id}/answers", h.listAnswers)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator)
		protected.Post("/", h.askQuestion)
		protected.Post("/{question_id}/answers", h.postAnswer)
	})
}

func (h *QuestionHandler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionService.List(r.Context())
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	type QuestionsResponse struct {
		Questions []model.Question `json:"questions"`
	}
	common.RespondWithJSON(w, http.StatusOK, QuestionsResponse{Questions: questions})
}

func (h *QuestionHandler) askQuestion(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.AskQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	questionID, err := h.questionService.Ask(r.Context(), identity.UserID, req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"message":    "Question posted successfully.",
		"questionId": questionID,
	})
}

func (h *QuestionHandler) getQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "question_id")

	question, err := h.questionService.Get(r.Context(), questionID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	type QuestionResponse struct {
		Question *model.Question `json:"question"`
	}
	common.RespondWithJSON(w, http.StatusOK, QuestionResponse{Question: question})
}

func (h *QuestionHandler) listAnswers(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "question_id")

	listing, err := h.answerService.ListForQuestion(r.Context(), questionID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, listing)
}

func (h *QuestionHandler) postAnswer(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	questionID := chi.URLParam(r, "question_id")

	var req struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	answerID, err := h.answerService.Post(r.Context(), identity.UserID, questionID, req.Answer)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"message":  "Answer posted successfully.",
		"answerId": answerID,
	})
}
