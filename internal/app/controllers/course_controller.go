package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// CourseController handles course-related endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// ListCourses handles GET /courses. Every course embeds its resolved owner
// in the reduced shape, so passwords and timestamps never appear.
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.CourseWithOwnerResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, dto.NewCourseWithOwnerResponse(course))
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetCourseByID handles GET /courses/:id with the owner embedded
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := c.courseID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseWithOwnerResponse(course))
}

// CreateCourse handles POST /courses. Requires authentication; the new
// course is owned by the authenticated principal regardless of any userId in
// the payload.
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.AccessDenied)
		return
	}

	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]string{err.Error()}))
		return
	}

	course, err := c.courseService.CreateCourse(ctx, req, user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/courses/%d", course.ID))
	ctx.Status(http.StatusCreated)
}

// UpdateCourse handles PUT /courses/:id. A missing course is reported as 400
// rather than 404; the original API behaved this way and the inconsistency is
// preserved. Ownership failures return 403 and leave the stored record
// untouched; storage-layer validation failures return the flattened message
// list.
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.AccessDenied)
		return
	}

	id, ok := c.courseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]string{err.Error()}))
		return
	}

	err := c.courseService.UpdateCourse(ctx, id, req, user.ID)
	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Msg: "Course not found!"})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		ctx.JSON(http.StatusForbidden, dto.MessageResponse{Msg: "You do not own this course!"})
	case err != nil:
		middleware.HandleAPIError(ctx, err)
	default:
		ctx.Status(http.StatusNoContent)
	}
}

// DeleteCourse handles DELETE /courses/:id, owner only
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.AccessDenied)
		return
	}

	id, ok := c.courseID(ctx)
	if !ok {
		return
	}

	err := c.courseService.DeleteCourse(ctx, id, user.ID)
	switch {
	case errors.Is(err, apperrors.ErrPermissionDenied):
		ctx.JSON(http.StatusForbidden, dto.MessageResponse{Msg: "You can't delete a course you don't own!"})
	case err != nil:
		middleware.HandleAPIError(ctx, err)
	default:
		ctx.Status(http.StatusNoContent)
	}
}

// courseID parses the :id path parameter, writing the error response itself
func (c *CourseController) courseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]string{"Course ID must be a valid number."}))
		return 0, false
	}
	return id, true
}
