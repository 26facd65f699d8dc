package question

import (
	"net/http"

	"github.com/saulo-duarte/quiz-survey-api/internal/config"
	util "github.com/saulo-duarte/quiz-survey-api/internal/utils"
)

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

// CreateQuestion godoc
// @Summary  Create a question
// @Tags     questions
// @Accept   json
// @Produce  json
// @Param    question body CreateQuestionDTO true "Question"
// @Success  200 {object} Question
// @Failure  404 {object} config.ErrorResponse
// @Failure  500 {object} config.ErrorResponse
// @Router   /questions/ [post]
func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateQuestionDTO
	if err := config.Decode(r, &dto); err != nil {
		log.WithError(err).Warn("Invalid request body for question creation")
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	q, err := h.service.CreateQuestion(r.Context(), dto)
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

// GetQuestion godoc
// @Summary  Get a question
// @Tags     questions
// @Produce  json
// @Param    id path int true "Question ID"
// @Success  200 {object} Question
// @Failure  404 {object} config.ErrorResponse
// @Router   /questions/{id} [get]
func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := util.ParseID(r, "id")
	if err != nil {
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	q, err := h.service.GetQuestion(r.Context(), questionID)
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}
