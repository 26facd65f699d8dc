package quiz

import (
	"net/http"

	"github.com/saulo-duarte/quiz-survey-api/internal/config"
	util "github.com/saulo-duarte/quiz-survey-api/internal/utils"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

// CreateQuiz godoc
// @Summary  Create a quiz
// @Tags     quizzes
// @Accept   json
// @Produce  json
// @Param    quiz body CreateQuizDTO true "Quiz"
// @Success  200 {object} Quiz
// @Failure  500 {object} config.ErrorResponse
// @Router   /quizzes/ [post]
func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateQuizDTO
	if err := config.Decode(r, &dto); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz creation")
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	quiz, err := h.service.CreateQuiz(r.Context(), dto)
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}

// ListQuizzes godoc
// @Summary  List quizzes
// @Tags     quizzes
// @Produce  json
// @Param    skip  query int false "Rows to skip" default(0)
// @Param    limit query int false "Maximum rows" default(100)
// @Success  200 {array} Quiz
// @Router   /quizzes/ [get]
func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	page, err := util.ParsePage(r)
	if err != nil {
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	quizzes, err := h.service.ListQuizzes(r.Context(), page)
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary  Get a quiz
// @Tags     quizzes
// @Produce  json
// @Param    id path int true "Quiz ID"
// @Success  200 {object} Quiz
// @Failure  404 {object} config.ErrorResponse
// @Router   /quizzes/{id} [get]
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, err := util.ParseID(r, "id")
	if err != nil {
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	quiz, err := h.service.GetQuiz(r.Context(), quizID)
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}
