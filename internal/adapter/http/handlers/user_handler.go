package handlers

import (
	"errors"
	"net/http"

	request "travel_budget/internal/adapter/http/dto/request"
	response "travel_budget/internal/adapter/http/dto/response"
	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase"
	"travel_budget/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// Me godoc
// @Summary      Profile of the authenticated user
// @Tags         users
// @Produce      json
// @Param        X-User-ID  header    string  true  "Authenticated user id"
// @Success      200        {object}  response.UserResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

// ListUsers godoc
// @Summary      List user profiles
// @Tags         users
// @Produce      json
// @Param        X-User-ID  header    string  true  "Authenticated user id (admin)"
// @Success      200        {array}   response.UserResponse
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

// RegisterUser godoc
// @Summary      Provision a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                       true  "Authenticated user id (admin)"
// @Param        user       body      request.RegisterUserRequest  true  "Profile"
// @Success      201        {object}  response.UserResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Router       /users [post]
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var payload request.RegisterUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidUserPayload)
		return
	}

	u, err := h.usecase.Register(c.Request.Context(), usecase.RegisterUserCommand{
		ID:       payload.ID,
		Email:    payload.Email,
		FullName: payload.FullName,
		Role:     entities.UserRole(payload.Role),
	})
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(u))
}

// ChangeRole godoc
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                     true  "Authenticated user id (admin)"
// @Param        id         path      string                     true  "User id"
// @Param        body       body      request.ChangeRoleRequest  true  "Role"
// @Success      200        {object}  response.UserResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Router       /users/{id}/role [patch]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	var payload request.ChangeRoleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidUserPayload)
		return
	}

	u, err := h.usecase.ChangeRole(c.Request.Context(), c.Param("id"), entities.UserRole(payload.Role))
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidUserEmail), errors.Is(err, usecase.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		return pkg.NewDomainErrorSimple("USER_ALREADY_EXISTS", "User already exists", http.StatusConflict)
	default:
		return internalError(err)
	}
}
