package answer

import (
	"net/http"

	"github.com/saulo-duarte/quiz-survey-api/internal/config"
	util "github.com/saulo-duarte/quiz-survey-api/internal/utils"
)

type Handler struct {
	service AnswerService
}

func NewHandler(s AnswerService) *Handler {
	return &Handler{service: s}
}

// CreateAnswer godoc
// @Summary  Record an answer
// @Tags     answers
// @Accept   json
// @Produce  json
// @Param    answer body CreateAnswerDTO true "Answer"
// @Success  200 {object} Answer
// @Failure  400 {object} config.ErrorResponse
// @Failure  404 {object} config.ErrorResponse
// @Failure  500 {object} config.ErrorResponse
// @Router   /answers/ [post]
func (h *Handler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateAnswerDTO
	if err := config.Decode(r, &dto); err != nil {
		log.WithError(err).Warn("Invalid request body for answer creation")
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	a, err := h.service.CreateAnswer(r.Context(), dto)
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, a)
}

// GetAnswer godoc
// @Summary  Get an answer
// @Tags     answers
// @Produce  json
// @Param    id path int true "Answer ID"
// @Success  200 {object} Answer
// @Failure  404 {object} config.ErrorResponse
// @Router   /answers/{id} [get]
func (h *Handler) GetAnswer(w http.ResponseWriter, r *http.Request) {
	answerID, err := util.ParseID(r, "id")
	if err != nil {
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	a, err := h.service.GetAnswer(r.Context(), answerID)
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, a)
}
