package services

import (
	"context"

	appauth "github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest, ownerID int64) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest, callerID int64) error
	DeleteCourse(ctx context.Context, id, callerID int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo repositories.CourseStore
	authz      *appauth.AuthorizationService
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseStore, authz *appauth.AuthorizationService) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		authz:      authz,
	}
}

// GetAllCourses retrieves all courses with owners populated
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// GetCourseByID retrieves a course by ID with its owner populated
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// CreateCourse validates a course payload and persists it. The owner is
// always the authenticated principal; any userId in the payload is ignored.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req dto.CreateCourseRequest, ownerID int64) (*models.Course, error) {
	messages := validation.ValidateNewCourse(req.Title, req.Description)
	if len(messages) > 0 {
		return nil, &apperrors.ValidationError{Messages: messages}
	}

	course := &models.Course{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
		UserID:          ownerID,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// UpdateCourse overwrites the mutable fields of a course. The supplied fields
// replace the stored values unconditionally before the ownership check; if
// the caller is not the owner the overwritten record is discarded unsaved.
// The owning user id is never touched.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest, callerID int64) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	course.Title = req.Title
	course.Description = req.Description
	course.EstimatedTime = req.EstimatedTime
	course.MaterialsNeeded = req.MaterialsNeeded

	if err := s.authz.ValidateCourseOwnership(ctx, id, callerID); err != nil {
		return err
	}

	return s.courseRepo.Update(ctx, course)
}

// DeleteCourse removes a course after the ownership check
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id, callerID int64) error {
	if err := s.authz.ValidateCourseOwnership(ctx, id, callerID); err != nil {
		return err
	}

	return s.courseRepo.Delete(ctx, id)
}
