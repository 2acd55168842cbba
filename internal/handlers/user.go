// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/elnet/electronics-network/internal/services"
	"github.com/elnet/electronics-network/internal/utils"
)

const resourceUser = "user"

type UserHandler struct {
	userService *services.UserService
	paginator   utils.Paginator
}

func NewUserHandler(userService *services.UserService, paginator utils.Paginator) *UserHandler {
	return &UserHandler{
		userService: userService,
		paginator:   paginator,
	}
}

// GET /v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(caller, caller.UserID)
	if err != nil {
		respondError(c, err, resourceUser)
		return
	}

	utils.SuccessResponse(c, user)
}

// GET /v1/users
func (h *UserHandler) List(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	params := h.paginator.Params(c)
	users, total, err := h.userService.ListUsers(caller, params)
	if err != nil {
		respondError(c, err, resourceUser)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(users, total, params))
}

// POST /v1/users
func (h *UserHandler) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req services.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(caller, &req)
	if err != nil {
		respondError(c, err, resourceUser)
		return
	}

	utils.CreatedResponse(c, user)
}

// GET /v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(caller, id)
	if err != nil {
		respondError(c, err, resourceUser)
		return
	}

	utils.SuccessResponse(c, user)
}

// PUT /v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(caller, id, &req)
	if err != nil {
		respondError(c, err, resourceUser)
		return
	}

	utils.SuccessResponse(c, user)
}
