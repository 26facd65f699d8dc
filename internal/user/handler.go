package user

import (
	"net/http"

	"github.com/saulo-duarte/quiz-survey-api/internal/config"
	util "github.com/saulo-duarte/quiz-survey-api/internal/utils"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

// CreateUser godoc
// @Summary  Register a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    user body CreateUserDTO true "User"
// @Success  200 {object} User
// @Failure  400 {object} config.ErrorResponse
// @Failure  500 {object} config.ErrorResponse
// @Router   /users/ [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateUserDTO
	if err := config.Decode(r, &dto); err != nil {
		log.WithError(err).Warn("Invalid request body for user creation")
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	u, err := h.service.CreateUser(r.Context(), dto)
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, u)
}

// ListUsers godoc
// @Summary  List users
// @Tags     users
// @Produce  json
// @Param    skip  query int false "Rows to skip" default(0)
// @Param    limit query int false "Maximum rows" default(100)
// @Success  200 {array} User
// @Router   /users/ [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := util.ParsePage(r)
	if err != nil {
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	users, err := h.service.ListUsers(r.Context(), page)
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, users)
}

// GetUser godoc
// @Summary  Get a user
// @Tags     users
// @Produce  json
// @Param    id path int true "User ID"
// @Success  200 {object} User
// @Failure  404 {object} config.ErrorResponse
// @Router   /users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := util.ParseID(r, "id")
	if err != nil {
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	u, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, u)
}
