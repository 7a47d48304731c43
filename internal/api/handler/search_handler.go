package handler

import (
	"encoding/json"
	"net/http"

	"qna_forum/internal/app/service"
	"qna_forum/internal/common"
	"qna_forum/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

func (h *SearchHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.searchQuestions) // POST /api/v1/search
}

func (h *SearchHandler) searchQuestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	questions, err := h.searchService.SearchQuestions(r.Context(), req.Title)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	type SearchResponse struct {
		Message string           `json:"message"`
		Data    []model.Question `json:"data"`
	}
	common.RespondWithJSON(w, http.StatusOK, SearchResponse{
		Message: "Related questions fetched successfully.",
		Data:    questions,
	})
}
