package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
)

// UserController handles user-related endpoints
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// ListUsers handles GET /users. Authentication is optional and the response
// depends on it: an authenticated caller gets only their own reduced record,
// an anonymous caller gets the whole collection in the same reduced shape.
// The asymmetry is intentional.
func (c *UserController) ListUsers(ctx *gin.Context) {
	if user, ok := middleware.CurrentUser(ctx); ok {
		ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
		return
	}

	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, dto.NewUserResponse(user))
	}

	ctx.JSON(http.StatusOK, resp)
}

// CreateUser handles POST /users. On success the response carries a Location
// header and an empty body; every validation failure, including duplicate
// email surfaced by the store, comes back as a 400 message list.
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]string{err.Error()}))
		return
	}

	if _, err := c.userService.CreateUser(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", "/")
	ctx.Status(http.StatusCreated)
}

// GetUserByID handles GET /users/:id, returning the full stored record
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]string{"User ID must be a valid number."}))
		return
	}

	user, err := c.userService.GetUserByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserDetailResponse(user))
}
